// Package services contains application services for the keywarden CLI.
// This file defines the authentication service: signup with local password
// strength checking, plain and zero-knowledge login, key retrieval and the
// password change/recovery flows. All stretching and unwrapping happens
// here; the plaintext password never reaches the transport layer.
package services

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/dmitrijs2005/keywarden/internal/client/client"
	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/cryptox"
	"github.com/dmitrijs2005/keywarden/internal/srp"
	"github.com/dmitrijs2005/keywarden/internal/token"
)

// Credentials is the outcome of a successful login: the bearer tokens the
// CLI holds for the rest of the session.
type Credentials struct {
	UID           string
	SessionToken  []byte
	KeyFetchToken []byte
	Verified      bool
}

// AccountKeys is the unwrapped key material recovered by FetchKeys.
// KA protects class-A data; KB is the password-wrapped class-B key and is
// lost when the account is reset through recovery.
type AccountKeys struct {
	KA []byte
	KB []byte
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account after checking local password strength
//     against the server-advertised policy.
//   - Login / SrpLogin: authenticate and install the session token on the
//     underlying client.
//   - FetchKeys: redeem a keyFetch token and unwrap the account keys.
//   - ChangePassword / SendRecoveryCode / ResetPassword: credential
//     lifecycle.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) (*Credentials, error)
	SrpLogin(ctx context.Context, email string, password []byte) (*Credentials, error)
	FetchKeys(ctx context.Context, email string, password []byte, keyFetchToken []byte) (*AccountKeys, error)
	VerifyCode(ctx context.Context, uid string, code string) error
	ChangePassword(ctx context.Context, email string, oldPassword, newPassword []byte) error
	SendRecoveryCode(ctx context.Context, email string) (*client.ForgotInfo, error)
	ResetPassword(ctx context.Context, forgotToken []byte, code string, email string, newPassword []byte) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client.
type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

// deriveAuthPW runs the client-side quick stretch and returns the
// authentication secret sent to (or proven to) the server.
func deriveAuthPW(email string, password []byte) ([]byte, []byte, error) {
	quick := cryptox.QuickStretch(email, password)
	authPW, err := cryptox.AuthPW(quick)
	if err != nil {
		return nil, nil, err
	}
	return authPW, quick, nil
}

// checkStrength scores the password locally and rejects anything below the
// server-advertised minimum. The email is fed in as user input so trivial
// derivations of it score poorly.
func checkStrength(policy *client.Policy, email string, password []byte) error {
	score := zxcvbn.PasswordStrength(string(password), []string{email}).Score
	if score < policy.MinPasswordScore {
		return fmt.Errorf("score %d below minimum %d: %w", score, policy.MinPasswordScore, common.ErrWeakPassword)
	}
	return nil
}

// Register creates a new account on the server. The password is checked
// against the advertised strength policy and stretched locally; only the
// derived authPW crosses the wire.
func (a *authService) Register(ctx context.Context, email string, password []byte) (string, error) {
	policy, err := a.client.Ping(ctx)
	if err != nil {
		return "", err
	}

	if err := checkStrength(policy, email, password); err != nil {
		return "", err
	}

	authPW, quick, err := deriveAuthPW(email, password)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(quick)
	defer common.WipeByteArray(authPW)

	return a.client.CreateAccount(ctx, email, authPW, policy.StretchVersion)
}

// Login authenticates by sending the derived authPW and installs the minted
// session token on the client.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*Credentials, error) {
	authPW, quick, err := deriveAuthPW(email, password)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(quick)
	defer common.WipeByteArray(authPW)

	result, err := a.client.Login(ctx, email, authPW)
	if err != nil {
		return nil, err
	}

	a.client.SetSessionToken(hex.EncodeToString(result.SessionToken))

	return &Credentials{
		UID:           result.UID,
		SessionToken:  result.SessionToken,
		KeyFetchToken: result.KeyFetchToken,
		Verified:      result.Verified,
	}, nil
}

// SrpLogin authenticates without ever revealing authPW to the server. The
// handshake yields a shared key; the server seals a single-use auth token to
// it, which is then traded for the session and keyFetch credentials.
func (a *authService) SrpLogin(ctx context.Context, email string, password []byte) (*Credentials, error) {
	challenge, err := a.client.BeginSrp(ctx, email)
	if err != nil {
		return nil, err
	}

	authPW, quick, err := deriveAuthPW(email, password)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(quick)
	defer common.WipeByteArray(authPW)

	session, err := srp.NewClientSession(srp.Group2048())
	if err != nil {
		return nil, err
	}

	proof, sharedKey, err := session.Complete(email, authPW, challenge.Salt, challenge.B)
	if err != nil {
		return nil, err
	}

	_, sealedToken, err := a.client.CompleteSrp(ctx, challenge.SessionID, session.A(), proof)
	if err != nil {
		return nil, err
	}

	authWire, err := cryptox.OpenWithKey(token.AuthFinishLabel, sharedKey, sealedToken)
	if err != nil {
		return nil, err
	}

	authToken, err := token.Reconstruct(token.KindAuth, authWire)
	if err != nil {
		return nil, err
	}

	bundle, err := a.client.CreateSession(ctx, authWire)
	if err != nil {
		return nil, err
	}

	keyFetchWire, sessionWire, err := authToken.UnbundleTokens(bundle.Sealed)
	if err != nil {
		return nil, err
	}

	a.client.SetSessionToken(hex.EncodeToString(sessionWire))

	return &Credentials{
		UID:           bundle.UID,
		SessionToken:  sessionWire,
		KeyFetchToken: keyFetchWire,
		Verified:      bundle.Verified,
	}, nil
}

// fetchWrapKb redeems the keyFetch token and unwraps the stored key
// material. The authSalt and stretch version are public and come from the
// handshake challenge; the abandoned handshake simply ages out server-side.
func (a *authService) fetchWrapKb(ctx context.Context, email string, password []byte, keyFetchToken []byte) (kA, wrapKb, quick []byte, err error) {
	sealed, err := a.client.FetchKeys(ctx, keyFetchToken)
	if err != nil {
		return nil, nil, nil, err
	}

	keyFetch, err := token.Reconstruct(token.KindKeyFetch, keyFetchToken)
	if err != nil {
		return nil, nil, nil, err
	}

	kA, wrapWrapKb, err := keyFetch.UnbundleAccountKeys(sealed)
	if err != nil {
		return nil, nil, nil, err
	}

	challenge, err := a.client.BeginSrp(ctx, email)
	if err != nil {
		return nil, nil, nil, err
	}

	authPW, quick, err := deriveAuthPW(email, password)
	if err != nil {
		return nil, nil, nil, err
	}
	defer common.WipeByteArray(authPW)

	stretched, err := cryptox.ServerStretch(challenge.StretchVersion, authPW, challenge.Salt)
	if err != nil {
		return nil, nil, nil, err
	}

	wrapKey, err := cryptox.WrapWrapKey(stretched)
	if err != nil {
		return nil, nil, nil, err
	}

	return kA, common.XorBytes(wrapWrapKb, wrapKey), quick, nil
}

// FetchKeys redeems a keyFetch token and finishes the unwrap chain locally,
// returning the class-A key and the fully unwrapped class-B key.
func (a *authService) FetchKeys(ctx context.Context, email string, password []byte, keyFetchToken []byte) (*AccountKeys, error) {
	kA, wrapKb, quick, err := a.fetchWrapKb(ctx, email, password, keyFetchToken)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(quick)

	unwrap, err := cryptox.UnwrapBKey(quick)
	if err != nil {
		return nil, err
	}

	return &AccountKeys{KA: kA, KB: common.XorBytes(wrapKb, unwrap)}, nil
}

// VerifyCode submits an emailed confirmation code.
func (a *authService) VerifyCode(ctx context.Context, uid string, code string) error {
	return a.client.VerifyCode(ctx, uid, code)
}

// ChangePassword rewraps the class-B key under the new password so no data
// is lost, then re-registers the credentials server-side. The change token
// is single-use; every other live credential is revoked by the server.
func (a *authService) ChangePassword(ctx context.Context, email string, oldPassword, newPassword []byte) error {
	policy, err := a.client.Ping(ctx)
	if err != nil {
		return err
	}

	if err := checkStrength(policy, email, newPassword); err != nil {
		return err
	}

	oldAuthPW, oldQuick, err := deriveAuthPW(email, oldPassword)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldQuick)
	defer common.WipeByteArray(oldAuthPW)

	tokens, err := a.client.ChangePasswordStart(ctx, email, oldAuthPW)
	if err != nil {
		return err
	}

	_, wrapKb, quick, err := a.fetchWrapKb(ctx, email, oldPassword, tokens.KeyFetchToken)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(quick)

	oldUnwrap, err := cryptox.UnwrapBKey(quick)
	if err != nil {
		return err
	}
	kB := common.XorBytes(wrapKb, oldUnwrap)

	newAuthPW, newQuick, err := deriveAuthPW(email, newPassword)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newQuick)
	defer common.WipeByteArray(newAuthPW)

	newUnwrap, err := cryptox.UnwrapBKey(newQuick)
	if err != nil {
		return err
	}

	return a.client.ChangePasswordFinish(ctx, tokens.PasswordChangeToken,
		newAuthPW, common.XorBytes(kB, newUnwrap), policy.StretchVersion)
}

// SendRecoveryCode starts the forgot-password flow.
func (a *authService) SendRecoveryCode(ctx context.Context, email string) (*client.ForgotInfo, error) {
	return a.client.ForgotPasswordSend(ctx, email)
}

// ResetPassword trades a recovery code for a reset token and sets new
// credentials. The server re-randomizes the wrapped class-B key, so data
// encrypted under the old KB is unrecoverable afterwards.
func (a *authService) ResetPassword(ctx context.Context, forgotToken []byte, code string, email string, newPassword []byte) error {
	policy, err := a.client.Ping(ctx)
	if err != nil {
		return err
	}

	if err := checkStrength(policy, email, newPassword); err != nil {
		return err
	}

	resetToken, err := a.client.ForgotPasswordVerify(ctx, forgotToken, code)
	if err != nil {
		return err
	}

	newAuthPW, newQuick, err := deriveAuthPW(email, newPassword)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newQuick)
	defer common.WipeByteArray(newAuthPW)

	return a.client.ResetAccount(ctx, resetToken, newAuthPW, policy.StretchVersion)
}

// Logout destroys the server-side session and clears the installed token.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.DestroySession(ctx); err != nil {
		return err
	}
	a.client.SetSessionToken("")
	return nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	_, err := a.client.Ping(ctx)
	return err
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
