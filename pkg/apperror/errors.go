package apperror

import (
	"errors"
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

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Envelope Codec (ENV) ----

// ErrDecode covers every decode failure: bad format tag, malformed
// base64, inflate failure, JSON failure. Decoding fails closed; there is
// no fallback format.
func ErrDecode(err error) *AppError {
	return Wrap("ENV_001", "Invalid or malformed code", http.StatusBadRequest, err)
}

func ErrEnvelopeTooLarge(size, limit int) *AppError {
	return New("ENV_002", fmt.Sprintf("Encoded envelope is %d bytes, exceeds QR capacity of %d", size, limit), http.StatusUnprocessableEntity)
}

// ---- Transport Crypto (SEC) ----

// ErrSignatureInvalid indicates an authenticity failure. Fatal for the
// scan attempt; callers must abort before decrypting.
func ErrSignatureInvalid() *AppError {
	return New("SEC_001", "Signature verification failed", http.StatusUnauthorized)
}

func ErrDecryptionFailed(err error) *AppError {
	return Wrap("SEC_002", "Payload decryption failed", http.StatusUnauthorized, err)
}

// ---- Payment Protocol (PAY) ----

func ErrExpired() *AppError {
	return New("PAY_001", "Payment code has expired, ask the seller to regenerate", http.StatusGone)
}

func ErrInsufficientFunds(amount, available int64) *AppError {
	return New("PAY_002",
		fmt.Sprintf("Insufficient balance: payment is %s, available %s", FormatAmount(amount), FormatAmount(available)),
		http.StatusPaymentRequired)
}

func ErrExceedsOfflineLimit(amount, limit int64) *AppError {
	return New("PAY_003",
		fmt.Sprintf("Payment of %s exceeds offline limit of %s", FormatAmount(amount), FormatAmount(limit)),
		http.StatusUnprocessableEntity)
}

func ErrInvalidAmount(reason string) *AppError {
	return New("PAY_004", "Invalid amount: "+reason, http.StatusBadRequest)
}

// ErrRemoteRejected is a ledger-side validation failure. Surfaced to the
// user, never silently queued and never retried automatically.
func ErrRemoteRejected(err error) *AppError {
	return Wrap("PAY_005", "Ledger rejected the transaction", http.StatusBadRequest, err)
}

func ErrSessionNotFound() *AppError {
	return New("PAY_006", "Payment session not found", http.StatusNotFound)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New("PAY_007", fmt.Sprintf("Illegal session transition %s -> %s", from, to), http.StatusConflict)
}

// ---- Connectivity & Queue (NET/QUE) ----

// ErrNetworkUnavailable is recoverable: settlement routes the
// transaction to the offline queue instead of failing it.
func ErrNetworkUnavailable(err error) *AppError {
	return Wrap("NET_001", "Network unavailable, transaction queued for sync", http.StatusServiceUnavailable, err)
}

// ErrQuarantinedEntry marks a queued item whose at-rest signature no
// longer verifies. Quarantined entries are never replayed.
func ErrQuarantinedEntry(localID string) *AppError {
	return New("QUE_001", fmt.Sprintf("Queued transaction %s failed integrity check and was quarantined", localID), http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

func ErrKeyStoreFailure(err error) *AppError {
	return Wrap("SYS_002", "Device key store failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_004-style validation error.
func Validation(message string) *AppError {
	return New("PAY_004", message, http.StatusBadRequest)
}

// FormatAmount renders cents as a two-decimal string for user-facing
// policy messages.
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
