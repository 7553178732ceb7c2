package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Funding errors.
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrNotEligible         = errors.New("not eligible")
	ErrAlreadyTerminal     = errors.New("request already terminal")
	ErrNotOldestPending    = errors.New("an older pending request exists")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrFingerprintConflict = errors.New("fingerprint conflict")
	ErrDivergence          = errors.New("fingerprint divergence")
)
