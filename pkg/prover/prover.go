// Package prover implements the client role of the Chaum-Pedersen
// protocol: deriving public commitments from a secret and carrying out
// the register/authenticate turns against a VerifierService.
//
//go:generate go tool mockgen -destination=mock_verifier.go -package=prover github.com/fzdarsky/zkpauth/pkg/prover VerifierService
package prover

import (
	"fmt"

	"github.com/fzdarsky/zkpauth/pkg/protocol"
	"github.com/fzdarsky/zkpauth/pkg/zkp"
)

// VerifierService defines the three wire operations a Prover calls
// against the verifier. This interface is defined at the consumer for
// testing purposes: production code wires it to *verifier.Service
// (adapted through a thin transport client), tests inject a mock.
//
//nolint:revive // Name is intentionally VerifierService for clarity in client context
type VerifierService interface {
	Register(req *protocol.RegisterRequest) (*protocol.RegisterResponse, error)
	CreateAuthenticationChallenge(
		req *protocol.CreateAuthenticationChallengeRequest,
	) (*protocol.CreateAuthenticationChallengeResponse, error)
	VerifyAuthentication(
		req *protocol.VerifyAuthenticationRequest,
	) (*protocol.VerifyAuthenticationResponse, error)
}

// Prover drives the client role of the protocol. It holds no persistent
// state between calls other than the group parameters it was configured
// with; the witness x lives only on the stack of Authenticate/Register
// for the duration of one call.
type Prover struct {
	verifier VerifierService
	group    *zkp.GroupParams
}

// New creates a Prover that issues requests against verifier using the
// given group parameters. The caller must use the same group profile the
// verifier was configured with, or every authentication will fail.
func New(verifier VerifierService, group *zkp.GroupParams) *Prover {
	return &Prover{verifier: verifier, group: group}
}

// Register derives x from secret and registers the corresponding
// commitments (y1, y2) under name. The witness never leaves this
// function's stack.
func (p *Prover) Register(name string, secret []byte) error {
	x := zkp.DecodeBigEndian(secret)
	y1 := zkp.ModExp(p.group.A, x, p.group.P)
	y2 := zkp.ModExp(p.group.B, x, p.group.P)

	_, err := p.verifier.Register(&protocol.RegisterRequest{
		User: name,
		Y1:   zkp.EncodeBigEndian(y1),
		Y2:   zkp.EncodeBigEndian(y2),
	})
	if err != nil {
		return fmt.Errorf("prover: register failed: %w", err)
	}
	return nil
}

// Authenticate runs one full authentication turn: it derives x, draws a
// fresh nonce k, sends the announcement, computes the response to the
// verifier's challenge, and returns the session_id on success.
//
// k MUST be freshly sampled every call. Reusing k across two
// authentications under the same x leaks x to anyone who observes both
// transcripts, since the two responses differ only by a known multiple
// of x.
func (p *Prover) Authenticate(name string, secret []byte) (string, error) {
	x := zkp.DecodeBigEndian(secret)

	k, err := zkp.RandBelow(p.group.Q)
	if err != nil {
		return "", fmt.Errorf("prover: failed to sample nonce: %w", err)
	}

	r1 := zkp.ModExp(p.group.A, k, p.group.P)
	r2 := zkp.ModExp(p.group.B, k, p.group.P)

	challengeResp, err := p.verifier.CreateAuthenticationChallenge(&protocol.CreateAuthenticationChallengeRequest{
		User: name,
		R1:   zkp.EncodeBigEndian(r1),
		R2:   zkp.EncodeBigEndian(r2),
	})
	if err != nil {
		return "", fmt.Errorf("prover: challenge request failed: %w", err)
	}

	c := zkp.DecodeBigEndian(challengeResp.C)
	s := zkp.Response(k, c, x, p.group.Q)

	verifyResp, err := p.verifier.VerifyAuthentication(&protocol.VerifyAuthenticationRequest{
		AuthID: challengeResp.AuthID,
		S:      zkp.EncodeBigEndian(s),
	})
	if err != nil {
		return "", fmt.Errorf("prover: verification failed: %w", err)
	}

	return verifyResp.SessionID, nil
}
