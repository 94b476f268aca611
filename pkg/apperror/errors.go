package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
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

// ---- Request Validation (REQ) ----

// Validation flags a malformed request before it reaches any service.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// ---- Ledger Validation (LED) ----

func ErrInvalidAmount() *AppError {
	return New("LED_001", "Amount must be a non-negative exact decimal", http.StatusBadRequest)
}

func ErrUnknownEventType() *AppError {
	return New("LED_002", "Unknown ledger event type", http.StatusBadRequest)
}

func ErrInvalidEvent(reason string) *AppError {
	return New("LED_003", fmt.Sprintf("Invalid ledger event: %s", reason), http.StatusBadRequest)
}

// ---- Tax Derivation (TAX) ----

func ErrWithholdingDerivation(err error) *AppError {
	return Wrap("TAX_001", "Failed to derive tax withholding", http.StatusInternalServerError, err)
}

// ---- Allocation (ALC) ----

func ErrInvalidBucketPercentages() *AppError {
	return New("ALC_001", "Bucket percentages must be non-negative and sum to at most 100", http.StatusBadRequest)
}

func ErrAllocationInProgress() *AppError {
	return New("ALC_002", "A pending deposit allocation is already in progress", http.StatusConflict)
}

// ---- Relay (RLY) ----

func ErrSigningFailed(err error) *AppError {
	return Wrap("RLY_001", "Transaction signing failed", http.StatusInternalServerError, err)
}

func ErrSubmissionRejected(err error) *AppError {
	return Wrap("RLY_002", "Relay submission rejected", http.StatusBadGateway, err)
}

func ErrNonceConflict() *AppError {
	return New("RLY_003", "Wallet nonce already consumed", http.StatusConflict)
}

func ErrSubmissionAmbiguous(err error) *AppError {
	return Wrap("RLY_004", "Relay submission outcome unknown", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired service token", http.StatusUnauthorized)
}

func ErrRateLimitExceeded() *AppError {
	return New("AUTH_002", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrNotFound(entity string) *AppError {
	return New("SYS_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrLedgerChainMismatch flags an on-chain effect with no matching ledger
// record. This is the one state the reconciliation loop cannot self-heal;
// it requires manual audit.
func ErrLedgerChainMismatch(err error) *AppError {
	return Wrap("SYS_002", "On-chain effect without matching ledger record", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_000 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_000", "Internal server error", http.StatusInternalServerError, err)
}
