package apperror

import (
	"fmt"
	"net/http"
)

// Class groups errors by how callers must react to them.
type Class string

const (
	// ClassProtocol: terminal for the tap, never mutates state, the only
	// class rate-limited as potential tampering.
	ClassProtocol Class = "PROTOCOL"
	// ClassPolicy: terminal for the withdraw attempt, human-readable reason.
	ClassPolicy Class = "POLICY"
	// ClassLifecycle: idempotency guards, not operator-attention failures.
	ClassLifecycle Class = "LIFECYCLE"
	// ClassCollaborator: external payment client failed; retrying is valid.
	ClassCollaborator Class = "COLLABORATOR"
	// ClassSystem: infrastructure faults.
	ClassSystem Class = "SYSTEM"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Class      Class  `json:"-"`
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

// New creates a new AppError.
func New(code string, class Class, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Class:      class,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, class Class, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Class:      class,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Tap protocol (SUN) ----

func ErrDecryptionFailed() *AppError {
	return New("SUN_001", ClassProtocol, "Tap envelope could not be decrypted", http.StatusBadRequest)
}

func ErrMacMismatch() *AppError {
	return New("SUN_002", ClassProtocol, "Tap authentication code mismatch", http.StatusBadRequest)
}

func ErrReplayOrStaleCounter() *AppError {
	return New("SUN_003", ClassProtocol, "Tap counter is stale or replayed", http.StatusConflict)
}

func ErrCardNotFound() *AppError {
	return New("SUN_004", ClassProtocol, "Card not found", http.StatusNotFound)
}

func ErrCardNotActive() *AppError {
	return New("SUN_005", ClassProtocol, "Card is not active", http.StatusForbidden)
}

// ---- Spending policy (LIMIT) ----

func ErrOverTxCap() *AppError {
	return New("LIMIT_001", ClassPolicy, "Amount exceeds the per-transaction limit", http.StatusUnprocessableEntity)
}

func ErrOverDailyCap() *AppError {
	return New("LIMIT_002", ClassPolicy, "Amount exceeds the remaining daily limit", http.StatusUnprocessableEntity)
}

func ErrInsufficientFunds() *AppError {
	return New("LIMIT_003", ClassPolicy, "Insufficient card balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("LIMIT_004", ClassPolicy, "Invalid amount", http.StatusBadRequest)
}

// ---- Lifecycle (LIFE) ----

func ErrExpired(entity string) *AppError {
	return New("LIFE_001", ClassLifecycle, fmt.Sprintf("%s has expired", entity), http.StatusGone)
}

func ErrAlreadyCompleted() *AppError {
	return New("LIFE_002", ClassLifecycle, "Registration already completed", http.StatusConflict)
}

func ErrAlreadyProcessed() *AppError {
	return New("LIFE_003", ClassLifecycle, "Top-up already processed", http.StatusConflict)
}

func ErrCancelled() *AppError {
	return New("LIFE_004", ClassLifecycle, "Registration was cancelled", http.StatusGone)
}

func ErrSessionNotFound() *AppError {
	return New("LIFE_005", ClassLifecycle, "Withdraw session not found or already used", http.StatusNotFound)
}

func ErrNotFound(entity string) *AppError {
	return New("LIFE_006", ClassLifecycle, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- External payment client (LN) ----

// ErrPaymentClient marks collaborator failures. The caller may retry the
// whole phase-2 exchange; card state reflects "no money moved".
func ErrPaymentClient(err error) *AppError {
	return Wrap("LN_001", ClassCollaborator, "Payment provider unavailable, try again", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", ClassProtocol, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_002", ClassProtocol, "Not the card owner", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", ClassProtocol, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_002", ClassSystem, "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", ClassSystem, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("LIMIT_004", ClassPolicy, message, http.StatusBadRequest)
}
