package verifier

import (
	"io"
	"strings"
	"time"

	"github.com/fzdarsky/zkpauth/internal/logging"
	"github.com/fzdarsky/zkpauth/pkg/protocol"
	"github.com/fzdarsky/zkpauth/pkg/zkp"
)

// Config selects the group profile and optional hardening knobs for a
// Service.
type Config struct {
	Group            *zkp.GroupParams
	ChallengeTTL     time.Duration
	RateLimitEnabled bool
}

// Service implements the three wire operations that make up the
// verifier's half of the protocol: Register, CreateAuthenticationChallenge,
// and VerifyAuthentication. It owns the two concurrent maps described in
// the data model (users and pending challenges) plus the optional rate
// limiter, and holds no other mutable state.
type Service struct {
	registry   *Registry
	challenges *ChallengeStore
	limiter    *RateLimiter
	group      *zkp.GroupParams
	rateLimit  bool
	logger     *logging.Logger
}

// NewService constructs a Service from cfg. If cfg.Group is nil,
// DefaultGroup is used. The rate limiter is always constructed (its
// cleanup goroutine is cheap to run) but only consulted when
// cfg.RateLimitEnabled is true.
func NewService(cfg Config, logger *logging.Logger) *Service {
	group := cfg.Group
	if group == nil {
		group = zkp.DefaultGroup()
	}
	if logger == nil {
		logger = logging.New(logging.LevelError, logging.FormatJSON)
		logger.SetOutput(io.Discard, io.Discard)
	}
	return &Service{
		registry:   NewRegistry(),
		challenges: NewChallengeStore(cfg.ChallengeTTL),
		limiter:    NewRateLimiter(),
		group:      group,
		rateLimit:  cfg.RateLimitEnabled,
		logger:     logger,
	}
}

// Close stops the service's background goroutines (challenge-store
// cleanup and rate-limiter cleanup).
func (s *Service) Close() {
	s.challenges.Stop()
	s.limiter.Stop()
}

// DrainStatus reports the size of the in-memory registry and the pending
// challenge store, satisfying lifecycle.DrainReporter so a shutdown
// manager can log what it is about to discard.
func (s *Service) DrainStatus() (registeredUsers, pendingChallenges int) {
	return s.registry.Count(), s.challenges.Count()
}

// Register stores the caller's public commitments under name, replacing
// any prior record atomically (last writer wins).
func (s *Service) Register(req *protocol.RegisterRequest) (*protocol.RegisterResponse, error) {
	name := strings.TrimSpace(req.User)
	if name == "" {
		return nil, protocol.NewInvalidArgumentError("user must not be empty")
	}

	y1 := zkp.DecodeBigEndian(req.Y1)
	y2 := zkp.DecodeBigEndian(req.Y2)
	if y1.Cmp(s.group.P) >= 0 || y2.Cmp(s.group.P) >= 0 {
		return nil, protocol.NewInvalidArgumentError("commitment out of range")
	}

	s.registry.Upsert(name, y1, y2)

	if s.logger != nil {
		s.logger.Info("user registered", logging.Fields{"user": name}.
			WithFingerprint("y1", y1).
			WithFingerprint("y2", y2))
	}

	return &protocol.RegisterResponse{}, nil
}

// CreateAuthenticationChallenge issues a fresh challenge c for a
// registered user and stashes (r1, r2, c) under a newly minted auth_id.
func (s *Service) CreateAuthenticationChallenge(
	req *protocol.CreateAuthenticationChallengeRequest,
) (*protocol.CreateAuthenticationChallengeResponse, error) {
	name := strings.TrimSpace(req.User)

	if s.rateLimit {
		locked, retryAfter := s.limiter.CheckLimit(name)
		if locked {
			return nil, protocol.NewErrorWithDetails(
				protocol.ErrCodePermissionDenied,
				"too many failed attempts",
				retryAfter.String(),
			)
		}
	}

	if _, ok := s.registry.Get(name); !ok {
		return nil, protocol.NewNotFoundError("user not registered")
	}

	r1 := zkp.DecodeBigEndian(req.R1)
	r2 := zkp.DecodeBigEndian(req.R2)
	if r1.Cmp(s.group.P) >= 0 || r2.Cmp(s.group.P) >= 0 {
		return nil, protocol.NewInvalidArgumentError("announcement out of range")
	}

	c, err := zkp.RandBelow(s.group.Q)
	if err != nil {
		return nil, protocol.NewInternalError("failed to sample challenge")
	}

	authID, err := s.challenges.Store(name, r1, r2, c)
	if err != nil {
		return nil, protocol.NewInternalError("failed to mint auth_id")
	}

	if s.logger != nil {
		s.logger.Info("authentication challenge issued", map[string]any{
			"user":    name,
			"auth_id": authID,
		})
	}

	return &protocol.CreateAuthenticationChallengeResponse{
		AuthID: authID,
		C:      zkp.EncodeBigEndian(c),
	}, nil
}

// VerifyAuthentication pops the pending challenge identified by auth_id,
// runs the joint Chaum-Pedersen check against the user's stored
// commitments, and returns a fresh session_id on success.
//
// The pop happens unconditionally: a failed or forged proof still
// consumes the challenge, per the single-use invariant.
func (s *Service) VerifyAuthentication(
	req *protocol.VerifyAuthenticationRequest,
) (*protocol.VerifyAuthenticationResponse, error) {
	challenge, ok := s.challenges.Pop(req.AuthID)
	if !ok {
		return nil, protocol.NewNotFoundError("unknown or already-used auth_id")
	}

	user, ok := s.registry.Get(challenge.Name)
	if !ok {
		return nil, protocol.NewNotFoundError("user no longer registered")
	}

	sVal := zkp.DecodeBigEndian(req.S)
	if sVal.Cmp(s.group.Q) >= 0 {
		return nil, protocol.NewInvalidArgumentError("response out of range")
	}

	ok = zkp.Verify(s.group, user.Y1, user.Y2, challenge.R1, challenge.R2, challenge.C, sVal)
	if !ok {
		if s.rateLimit {
			s.limiter.RecordFailure(challenge.Name)
		}
		if s.logger != nil {
			s.logger.Warn("verification failed", logging.Fields{
				"user":    challenge.Name,
				"auth_id": req.AuthID,
			}.WithFingerprint("s", sVal))
		}
		return nil, protocol.NewPermissionDeniedError("verification failed")
	}

	if s.rateLimit {
		s.limiter.RecordSuccess(challenge.Name)
	}

	sessionID, err := zkp.RandAlphanumeric(12)
	if err != nil {
		return nil, protocol.NewInternalError("failed to mint session_id")
	}

	if s.logger != nil {
		s.logger.Info("authentication succeeded", map[string]any{
			"user":       challenge.Name,
			"auth_id":    req.AuthID,
			"session_id": sessionID,
		})
	}

	return &protocol.VerifyAuthenticationResponse{SessionID: sessionID}, nil
}
