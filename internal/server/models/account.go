// Package models holds the persistence-level shapes shared by repositories
// and services.
package models

import "time"

// Account is one registered user. The server never stores anything the
// password can be recovered from: VerifyHash and Verifier are one-way, and
// WrapWrapKb is the class-B key wrapped twice (once by the client's
// unwrapBKey, once by a key derived from authPW).
type Account struct {
	UID             string
	Email           string
	EmailVerified   bool
	EmailCode       string
	AuthSalt        []byte
	VerifyHash      []byte
	Verifier        []byte
	VerifierVersion int
	KA              []byte
	WrapWrapKb      []byte
	LockedAt        *time.Time
	// Version is the optimistic-concurrency etag bumped by every
	// credential update.
	Version   int64
	CreatedAt time.Time
}
