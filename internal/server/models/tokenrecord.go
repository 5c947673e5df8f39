package models

import "time"

// TokenRecord is the persisted half of a token: the public id plus
// purpose-specific state. Sub-keys are never stored; they are recomputed
// from the wire form the client presents.
type TokenRecord struct {
	ID        string
	UID       string
	Kind      string
	CreatedAt time.Time

	// VerificationID is the pending session confirmation code. Nil means
	// the session is verified; non-nil means a matching code is awaited.
	VerificationID *string

	// PassCode, Tries and ExpiresAt govern password-forgot tokens.
	PassCode  string
	Tries     int
	ExpiresAt *time.Time
}

// Verified reports whether the record has passed (or never needed)
// confirmation.
func (r *TokenRecord) Verified() bool { return r.VerificationID == nil }

// Expired reports whether the record carries a TTL that has passed.
func (r *TokenRecord) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && now.After(*r.ExpiresAt)
}
