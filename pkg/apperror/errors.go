package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Message doubles as the activity log text for simulator errors.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error codes.
const (
	CodeProviderUnavailable = "WAL_001"
	CodeProviderRejected    = "WAL_002"
	CodeSessionRequired     = "SES_001"
	CodeUnauthorized        = "SES_002"
	CodeInvalidAmount       = "TX_001"
	CodeBusy                = "TX_002"
	CodeSimulationFailed    = "TX_003"
	CodeRateLimitExceeded   = "RATE_001"
	CodeValidation          = "REQ_001"
	CodeInternal            = "SYS_001"
)

// ---- Wallet provider (WAL) ----

func ErrProviderUnavailable() *AppError {
	return New(CodeProviderUnavailable, "Wallet provider not found", http.StatusServiceUnavailable)
}

func ErrProviderRejected(err error) *AppError {
	return Wrap(CodeProviderRejected, "Wallet connection rejected", http.StatusBadGateway, err)
}

// ---- Session (SES) ----

func ErrSessionRequired() *AppError {
	return New(CodeSessionRequired, "Connect wallet first", http.StatusUnauthorized)
}

func ErrUnauthorized() *AppError {
	return New(CodeUnauthorized, "Only the owner can withdraw", http.StatusForbidden)
}

// ---- Simulated transactions (TX) ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Enter valid ETH amount", http.StatusBadRequest)
}

func ErrBusy() *AppError {
	return New(CodeBusy, "Transaction already pending", http.StatusConflict)
}

func ErrSimulationFailed(label string, err error) *AppError {
	return Wrap(CodeSimulationFailed, fmt.Sprintf("%s failed", label), http.StatusInternalServerError, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Request & System ----

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
