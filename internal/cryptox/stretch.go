package cryptox

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// StretchVersion selects the server-side re-stretch algorithm. Versioning
// lets both algorithms coexist in storage during a migration: each account
// records the version its verifier was produced with.
type StretchVersion int

const (
	// StretchV1 is scrypt(N=64Ki, r=8, p=1).
	StretchV1 StretchVersion = 1
	// StretchV2 is argon2id(t=1, m=64MiB, p=4).
	StretchV2 StretchVersion = 2
)

// KeyLen is the size of every key and hash in the stretching pipeline.
const KeyLen = 32

const quickStretchRounds = 1000

var ErrUnknownStretchVersion = errors.New("cryptox: unknown stretch version")

// QuickStretch performs the client-side first stage: PBKDF2-SHA256 over the
// plaintext password with a per-email salt. Its output never leaves the
// client; authPW and unwrapBKey are expanded from it under distinct labels.
func QuickStretch(email string, password []byte) []byte {
	salt := []byte(Namespace + "quickStretch:" + email)
	return pbkdf2.Key(password, salt, quickStretchRounds, KeyLen, sha256.New)
}

// AuthPW derives the credential the client actually submits. The server only
// ever sees this value, never the password or the quick-stretched key.
func AuthPW(quickStretched []byte) ([]byte, error) {
	return Expand("authPW", quickStretched, KeyLen)
}

// UnwrapBKey derives the client-held key that unmasks wrapKb into kB.
// It shares a seed with AuthPW but a different label, so the server,
// knowing authPW, still learns nothing about kB.
func UnwrapBKey(quickStretched []byte) ([]byte, error) {
	return Expand("unwrapBkey", quickStretched, KeyLen)
}

// ServerStretch performs the server-side second stage over a submitted
// authPW and the account's authSalt, according to version.
func ServerStretch(version StretchVersion, authPW, authSalt []byte) ([]byte, error) {
	switch version {
	case StretchV1:
		stretched, err := scrypt.Key(authPW, authSalt, 64*1024, 8, 1, KeyLen)
		if err != nil {
			return nil, fmt.Errorf("scrypt: %w", err)
		}
		return stretched, nil
	case StretchV2:
		return argon2.IDKey(authPW, authSalt, 1, 64*1024, 4, KeyLen), nil
	default:
		return nil, ErrUnknownStretchVersion
	}
}

// VerifyHash expands the stored one-way verifier from a server stretch.
// Only this value is persisted; authPW itself never is.
func VerifyHash(stretched []byte) ([]byte, error) {
	return Expand("verifyHash", stretched, KeyLen)
}

// WrapWrapKey expands the at-rest masking key for wrapKb from a server
// stretch. wrapWrapKb = wrapKb XOR WrapWrapKey, so presenting the correct
// authPW is what makes wrapKb recoverable, and a password change re-wraps
// wrapKb without the server ever holding kB.
func WrapWrapKey(stretched []byte) ([]byte, error) {
	return Expand("wrap/wrapKb", stretched, KeyLen)
}

// DeriveVerifyHash is the common stretch-then-hash path used on both the
// account-creation and the login side.
func DeriveVerifyHash(version StretchVersion, authPW, authSalt []byte) ([]byte, error) {
	stretched, err := ServerStretch(version, authPW, authSalt)
	if err != nil {
		return nil, err
	}
	return VerifyHash(stretched)
}
