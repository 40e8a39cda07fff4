package verifier

import (
	"math/big"
	"sync"
	"time"

	"github.com/fzdarsky/zkpauth/pkg/zkp"
)

// PendingChallenge holds the state of one in-flight authentication turn.
type PendingChallenge struct {
	AuthID string
	Name   string
	R1     *big.Int
	R2     *big.Int
	C      *big.Int
}

type challengeEntry struct {
	challenge *PendingChallenge
	expiresAt time.Time // zero value means "never expires"
}

// ChallengeStore is the concurrency-safe auth_id -> PendingChallenge map.
// A challenge is consumed (removed) on first retrieval regardless of what
// the caller does with it afterward, making every challenge single-use.
//
// When ttl is zero (the default), entries never expire on their own -
// matching the core's stated default of no TTL policy.
// A deployer that wants bounded growth can set a positive ttl, in which
// case a background goroutine sweeps expired entries, mirroring the
// reference session store's cleanup loop.
type ChallengeStore struct {
	mu      sync.Mutex
	pending map[string]*challengeEntry
	ttl     time.Duration
	stopCh  chan struct{}
}

// NewChallengeStore creates a challenge store with the given TTL. A ttl
// of zero disables expiry entirely and no cleanup goroutine is started.
func NewChallengeStore(ttl time.Duration) *ChallengeStore {
	s := &ChallengeStore{
		pending: make(map[string]*challengeEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}
	if ttl > 0 {
		go s.cleanupLoop()
	}
	return s
}

// Store mints a fresh auth_id via the package CSPRNG, resampling on the
// rare collision with an existing key, inserts the challenge under it,
// and returns the auth_id.
func (s *ChallengeStore) Store(name string, r1, r2, c *big.Int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var authID string
	for {
		id, err := zkp.RandAlphanumeric(12)
		if err != nil {
			return "", err
		}
		if _, exists := s.pending[id]; !exists {
			authID = id
			break
		}
	}

	entry := &challengeEntry{
		challenge: &PendingChallenge{AuthID: authID, Name: name, R1: r1, R2: r2, C: c},
	}
	if s.ttl > 0 {
		entry.expiresAt = time.Now().Add(s.ttl)
	}
	s.pending[authID] = entry
	return authID, nil
}

// Pop removes and returns the challenge stored under authID, if any and
// not expired. The removal happens whether or not the caller goes on to
// accept the challenge, so a failed verification still consumes it.
func (s *ChallengeStore) Pop(authID string) (*PendingChallenge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[authID]
	if !ok {
		return nil, false
	}
	delete(s.pending, authID)

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.challenge, true
}

// Count returns the number of pending challenges. Intended for tests and
// diagnostics.
func (s *ChallengeStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop halts the background cleanup goroutine, if one was started. Safe
// to call on a store with ttl == 0, in which case it is a no-op beyond
// closing the (otherwise unused) stop channel.
func (s *ChallengeStore) Stop() {
	select {
	case <-s.stopCh:
		// already stopped
	default:
		close(s.stopCh)
	}
}

func (s *ChallengeStore) cleanupLoop() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *ChallengeStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, entry := range s.pending {
		if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
			delete(s.pending, id)
		}
	}
}
