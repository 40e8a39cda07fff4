// Package verifier implements the server role of the Chaum-Pedersen
// protocol: the concurrent user/challenge registries and the three wire
// operations (Register, CreateAuthenticationChallenge,
// VerifyAuthentication).
package verifier

import (
	"math/big"
	"sync"
)

// UserRecord holds one registered prover's public commitments.
type UserRecord struct {
	Name string
	Y1   *big.Int
	Y2   *big.Int
}

// Registry is the concurrency-safe users map: name -> UserRecord. It is
// the only owner of this state; callers never see the map itself, only
// these methods. When an operation needs both the users map and the
// pending-challenge map, the users lock must be acquired first -
// Registry never calls into ChallengeStore while holding its own lock,
// so that ordering is enforced by construction rather than convention.
type Registry struct {
	mu    sync.RWMutex
	users map[string]*UserRecord
}

// NewRegistry returns an empty user registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]*UserRecord)}
}

// Upsert inserts or replaces the record for name. Re-registration of the
// same name replaces the prior record atomically (last writer wins),
// which is the specified recovery path for a forgotten witness.
func (r *Registry) Upsert(name string, y1, y2 *big.Int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[name] = &UserRecord{Name: name, Y1: y1, Y2: y2}
}

// Get returns the record for name and whether it exists. Callers are
// responsible for any name normalization (e.g. whitespace trimming)
// before calling Get, since normalization rules are a protocol-level
// concern, not a storage-level one.
func (r *Registry) Get(name string) (*UserRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.users[name]
	return rec, ok
}

// Count returns the number of registered users. Intended for tests and
// diagnostics.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
