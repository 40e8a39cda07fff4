// Package protocol defines shared data structures and error codes for the
// zero-knowledge authentication core.
package protocol

import "fmt"

// ErrorCode represents one of the four wire-level error kinds the core
// surfaces to callers.
type ErrorCode string

// Error codes.
const (
	// ErrCodeNotFound indicates the referenced user or auth_id does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidArgument indicates a malformed byte encoding or an
	// out-of-range value (y >= p, r >= p, s >= q, empty user after trimming).
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodePermissionDenied indicates the Chaum-Pedersen verification
	// equation failed.
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	// ErrCodeInternal indicates an RNG failure or other internal fault.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// ErrorResponse represents a standardized API error response. It
// implements the error interface so it can be returned and wrapped like
// any other Go error.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *ErrorResponse) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new ErrorResponse.
func NewError(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{Code: code, Message: message}
}

// NewErrorWithDetails creates a new ErrorResponse with details.
func NewErrorWithDetails(code ErrorCode, message, details string) *ErrorResponse {
	return &ErrorResponse{Code: code, Message: message, Details: details}
}

// NewNotFoundError creates a NOT_FOUND error.
func NewNotFoundError(message string) *ErrorResponse {
	return NewError(ErrCodeNotFound, message)
}

// NewInvalidArgumentError creates an INVALID_ARGUMENT error.
func NewInvalidArgumentError(message string) *ErrorResponse {
	return NewError(ErrCodeInvalidArgument, message)
}

// NewPermissionDeniedError creates a PERMISSION_DENIED error.
func NewPermissionDeniedError(message string) *ErrorResponse {
	return NewError(ErrCodePermissionDenied, message)
}

// NewInternalError creates an INTERNAL error.
func NewInternalError(message string) *ErrorResponse {
	return NewError(ErrCodeInternal, message)
}

// IsCode reports whether err is an *ErrorResponse carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	er, ok := err.(*ErrorResponse)
	return ok && er.Code == code
}
