// Package common defines shared constants and sentinel errors used across
// keywarden components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound        = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Account errors. ErrUnknownAccount must never reach an external caller
	// on an authentication path; it is mapped to ErrIncorrectPassword there
	// so account existence cannot be probed.
	ErrUnknownAccount = errors.New("unknown account")
	ErrAccountExists  = errors.New("account already exists")
	ErrAccountLocked  = errors.New("account locked")
	ErrWeakPassword   = errors.New("password too weak")

	// ErrUnverifiedAccount gates key release until the email round trip
	// completes.
	ErrUnverifiedAccount = errors.New("account not verified")

	// Authentication errors.
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrUnknownSession    = errors.New("unknown srp session")

	// Token lifecycle errors.
	ErrInvalidToken    = errors.New("invalid token")
	ErrInvalidCode     = errors.New("invalid verification code")
	ErrTooManyAttempts = errors.New("too many attempts")

	// ErrIntegrityFailure covers every bundle open failure. It deliberately
	// does not say whether the MAC or the key was wrong.
	ErrIntegrityFailure = errors.New("integrity check failed")

	// ErrRequestBlocked is the abuse-detection veto.
	ErrRequestBlocked = errors.New("request blocked")
)
