package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/cryptox"
)

// Policy is the server-advertised signup policy returned by Ping.
type Policy struct {
	MinPasswordScore int
	StretchVersion   cryptox.StretchVersion
}

// LoginResult carries the credentials minted by a password login.
type LoginResult struct {
	UID           string
	SessionToken  []byte
	KeyFetchToken []byte
	Verified      bool
}

// SrpChallenge is the server half of an SRP handshake.
type SrpChallenge struct {
	SessionID      string
	Salt           []byte
	B              []byte
	StretchVersion cryptox.StretchVersion
}

// SessionBundle is the sealed credential pair handed out when an auth token
// is traded for a session.
type SessionBundle struct {
	UID      string
	Sealed   []byte
	Verified bool
}

// PasswordChangeTokens are the two credentials minted when a password change
// starts.
type PasswordChangeTokens struct {
	KeyFetchToken       []byte
	PasswordChangeToken []byte
}

// ForgotInfo describes an issued password-forgot token.
type ForgotInfo struct {
	ForgotToken []byte
	Tries       int
	TTL         time.Duration
}

// Client is the transport-level API surface of the keywarden server.
type Client interface {
	Close() error
	Ping(ctx context.Context) (*Policy, error)
	CreateAccount(ctx context.Context, email string, authPW []byte, version cryptox.StretchVersion) (string, error)
	Login(ctx context.Context, email string, authPW []byte) (*LoginResult, error)
	BeginSrp(ctx context.Context, email string) (*SrpChallenge, error)
	CompleteSrp(ctx context.Context, sessionID string, aPub, proof []byte) (string, []byte, error)
	CreateSession(ctx context.Context, authToken []byte) (*SessionBundle, error)
	FetchKeys(ctx context.Context, keyFetchToken []byte) ([]byte, error)
	VerifyCode(ctx context.Context, uid string, code string) error
	ChangePasswordStart(ctx context.Context, email string, authPW []byte) (*PasswordChangeTokens, error)
	ChangePasswordFinish(ctx context.Context, changeToken, newAuthPW, newWrapKb []byte, version cryptox.StretchVersion) error
	ForgotPasswordSend(ctx context.Context, email string) (*ForgotInfo, error)
	ForgotPasswordVerify(ctx context.Context, forgotToken []byte, code string) ([]byte, error)
	ResetAccount(ctx context.Context, resetToken, newAuthPW []byte, version cryptox.StretchVersion) error
	DestroySession(ctx context.Context) error
	SetSessionToken(wireHex string)
}
