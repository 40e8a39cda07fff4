package http_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	transporthttp "github.com/fzdarsky/zkpauth/internal/transport/http"
	"github.com/fzdarsky/zkpauth/internal/verifier"
	"github.com/fzdarsky/zkpauth/pkg/protocol"
	"github.com/fzdarsky/zkpauth/pkg/zkp"
)

var (
	big1  = big.NewInt(1)
	big2  = big.NewInt(2)
	big3  = big.NewInt(3)
	big4  = big.NewInt(4)
	big6  = big.NewInt(6)
	big7  = big.NewInt(7)
	big8  = big.NewInt(8)
	big9  = big.NewInt(9)
	big11 = big.NewInt(11)
	big23 = big.NewInt(23)
)

func smallGroup() *zkp.GroupParams {
	return &zkp.GroupParams{A: big4, B: big9, P: big23, Q: big11}
}

func TestHandler_RegisterThenChallengeThenVerify(t *testing.T) {
	svc := verifier.NewService(verifier.Config{Group: smallGroup()}, nil)
	t.Cleanup(svc.Close)

	h := transporthttp.NewHandler(svc, nil)
	mux := h.Mux()

	registerBody, _ := json.Marshal(protocol.RegisterRequest{
		User: "alice",
		Y1:   zkp.EncodeBigEndian(big2),
		Y2:   zkp.EncodeBigEndian(big3),
	})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/register", bytes.NewReader(registerBody))
	mux.ServeHTTP(rr, req)
	require.Equal(t, 200, rr.Code)

	challengeBody, _ := json.Marshal(protocol.CreateAuthenticationChallengeRequest{
		User: "alice",
		R1:   zkp.EncodeBigEndian(big8),
		R2:   zkp.EncodeBigEndian(big4),
	})
	rr = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/challenge", bytes.NewReader(challengeBody))
	mux.ServeHTTP(rr, req)
	require.Equal(t, 200, rr.Code)

	var challengeResp protocol.CreateAuthenticationChallengeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &challengeResp))
	assert.NotEmpty(t, challengeResp.AuthID)

	c := zkp.DecodeBigEndian(challengeResp.C)
	s := zkp.Response(big7, c, big6, big11)

	verifyBody, _ := json.Marshal(protocol.VerifyAuthenticationRequest{
		AuthID: challengeResp.AuthID,
		S:      zkp.EncodeBigEndian(s),
	})
	rr = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/verify", bytes.NewReader(verifyBody))
	mux.ServeHTTP(rr, req)
	require.Equal(t, 200, rr.Code)

	var verifyResp protocol.VerifyAuthenticationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &verifyResp))
	assert.NotEmpty(t, verifyResp.SessionID)
}

func TestHandler_UnregisteredUserReturnsNotFound(t *testing.T) {
	svc := verifier.NewService(verifier.Config{Group: smallGroup()}, nil)
	t.Cleanup(svc.Close)

	h := transporthttp.NewHandler(svc, nil)
	mux := h.Mux()

	body, _ := json.Marshal(protocol.CreateAuthenticationChallengeRequest{
		User: "bob",
		R1:   zkp.EncodeBigEndian(big1),
		R2:   zkp.EncodeBigEndian(big1),
	})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/challenge", bytes.NewReader(body))
	mux.ServeHTTP(rr, req)
	assert.Equal(t, 404, rr.Code)
}

func TestHandler_MalformedBodyReturnsBadRequest(t *testing.T) {
	svc := verifier.NewService(verifier.Config{Group: smallGroup()}, nil)
	t.Cleanup(svc.Close)

	h := transporthttp.NewHandler(svc, nil)
	mux := h.Mux()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/register", bytes.NewReader([]byte("not json")))
	mux.ServeHTTP(rr, req)
	assert.Equal(t, 400, rr.Code)
}
