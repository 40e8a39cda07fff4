package protocol_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fzdarsky/zkpauth/pkg/protocol"
)

func TestRegisterRequest_JSONRoundTrip(t *testing.T) {
	req := protocol.RegisterRequest{User: "alice", Y1: []byte{0x02}, Y2: []byte{0x03}}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded protocol.RegisterRequest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, req, decoded)
}

func TestCreateAuthenticationChallengeResponse_JSONRoundTrip(t *testing.T) {
	resp := protocol.CreateAuthenticationChallengeResponse{AuthID: "abc123xyz789", C: []byte{0x04}}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded protocol.CreateAuthenticationChallengeResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, resp, decoded)
}

func TestVerifyAuthenticationResponse_JSONRoundTrip(t *testing.T) {
	resp := protocol.VerifyAuthenticationResponse{SessionID: "sess12345678"}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded protocol.VerifyAuthenticationResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, resp, decoded)
}
