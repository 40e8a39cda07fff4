// Package http provides a JSON transport binding for the verifier's three
// wire operations, exposed over plain HTTP. The protocol itself is
// transport-agnostic (see pkg/protocol); this package is one concrete,
// optional envelope around it.
package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/fzdarsky/zkpauth/internal/logging"
	"github.com/fzdarsky/zkpauth/pkg/protocol"
)

// maxRequestBody bounds request body size to guard against unbounded reads.
const maxRequestBody = 1 << 20

// VerifierService is the subset of internal/verifier.Service this handler
// depends on. Declared here, at the consumer, so tests can inject a fake
// without pulling in the whole verifier package.
type VerifierService interface {
	Register(req *protocol.RegisterRequest) (*protocol.RegisterResponse, error)
	CreateAuthenticationChallenge(
		req *protocol.CreateAuthenticationChallengeRequest,
	) (*protocol.CreateAuthenticationChallengeResponse, error)
	VerifyAuthentication(
		req *protocol.VerifyAuthenticationRequest,
	) (*protocol.VerifyAuthenticationResponse, error)
}

// Handler adapts VerifierService's three operations to HTTP POST endpoints
// under a JSON envelope.
type Handler struct {
	service VerifierService
	logger  *logging.Logger
}

// NewHandler creates a Handler bound to service.
func NewHandler(service VerifierService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.New(logging.LevelError, logging.FormatJSON)
		logger.SetOutput(io.Discard, io.Discard)
	}
	return &Handler{service: service, logger: logger}
}

// Mux returns an http.ServeMux with all three endpoints registered:
// POST /register, POST /challenge, POST /verify.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/register", h.handleRegister)
	mux.HandleFunc("/challenge", h.handleChallenge)
	mux.HandleFunc("/verify", h.handleVerify)
	return mux
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req protocol.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleChallenge(w http.ResponseWriter, r *http.Request) {
	var req protocol.CreateAuthenticationChallengeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CreateAuthenticationChallenge(&req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req protocol.VerifyAuthenticationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.VerifyAuthentication(&req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	errResp, ok := err.(*protocol.ErrorResponse)
	if !ok {
		errResp = protocol.NewInternalError(err.Error())
	}

	if h.logger != nil {
		h.logger.Warn("request failed", map[string]any{
			"code":    string(errResp.Code),
			"message": errResp.Message,
		})
	}

	writeJSON(w, statusForCode(errResp.Code), errResp)
}

func statusForCode(code protocol.ErrorCode) int {
	switch code {
	case protocol.ErrCodeNotFound:
		return http.StatusNotFound
	case protocol.ErrCodeInvalidArgument:
		return http.StatusBadRequest
	case protocol.ErrCodePermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, protocol.NewInvalidArgumentError("malformed request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
