package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/client/client"
	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/cryptox"
	"github.com/dmitrijs2005/keywarden/internal/srp"
	"github.com/dmitrijs2005/keywarden/internal/token"
)

// fakeClient emulates the server end of the protocol in-process so the
// service's crypto can be exercised against a faithful counterpart.
type fakeClient struct {
	policy client.Policy

	email      string
	authPW     []byte
	salt       []byte
	version    cryptox.StretchVersion
	verifier   []byte
	kA         []byte
	wrapKb     []byte
	wrapWrapKb []byte

	srpSessions map[string]*srp.ServerSession

	keyFetchWire []byte
	sessionWire  []byte

	installedToken string

	changeFinish struct {
		called    bool
		newAuthPW []byte
		newWrapKb []byte
		version   cryptox.StretchVersion
	}

	destroyCalled bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		policy:      client.Policy{MinPasswordScore: 2, StretchVersion: cryptox.StretchV2},
		srpSessions: map[string]*srp.ServerSession{},
	}
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Ping(ctx context.Context) (*client.Policy, error) {
	p := f.policy
	return &p, nil
}

func (f *fakeClient) CreateAccount(ctx context.Context, email string, authPW []byte, version cryptox.StretchVersion) (string, error) {
	f.email = email
	f.authPW = append([]byte(nil), authPW...)
	f.version = version
	f.salt = common.GenerateRandByteArray(32)
	f.verifier = srp.ComputeVerifier(srp.Group2048(), email, authPW, f.salt)
	f.kA = common.GenerateRandByteArray(32)
	f.wrapKb = common.GenerateRandByteArray(32)

	stretched, err := cryptox.ServerStretch(version, authPW, f.salt)
	if err != nil {
		return "", err
	}
	wrapKey, err := cryptox.WrapWrapKey(stretched)
	if err != nil {
		return "", err
	}
	f.wrapWrapKb = common.XorBytes(f.wrapKb, wrapKey)

	return "uid-1", nil
}

func (f *fakeClient) mintPair() (keyFetchWire, sessionWire []byte, err error) {
	_, keyFetchWire, err = token.Create(token.KindKeyFetch)
	if err != nil {
		return nil, nil, err
	}
	_, sessionWire, err = token.Create(token.KindSession)
	if err != nil {
		return nil, nil, err
	}
	f.keyFetchWire = keyFetchWire
	f.sessionWire = sessionWire
	return keyFetchWire, sessionWire, nil
}

func (f *fakeClient) Login(ctx context.Context, email string, authPW []byte) (*client.LoginResult, error) {
	if email != f.email || !bytes.Equal(authPW, f.authPW) {
		return nil, client.ErrUnauthorized
	}
	keyFetchWire, sessionWire, err := f.mintPair()
	if err != nil {
		return nil, err
	}
	return &client.LoginResult{UID: "uid-1", SessionToken: sessionWire, KeyFetchToken: keyFetchWire, Verified: true}, nil
}

func (f *fakeClient) BeginSrp(ctx context.Context, email string) (*client.SrpChallenge, error) {
	session, err := srp.NewServerSession(srp.Group2048(), f.verifier)
	if err != nil {
		return nil, err
	}
	id, err := common.MakeRandHexString(8)
	if err != nil {
		return nil, err
	}
	f.srpSessions[id] = session
	return &client.SrpChallenge{SessionID: id, Salt: f.salt, B: session.B(), StretchVersion: f.version}, nil
}

func (f *fakeClient) CompleteSrp(ctx context.Context, sessionID string, aPub, proof []byte) (string, []byte, error) {
	session, ok := f.srpSessions[sessionID]
	if !ok {
		return "", nil, client.ErrUnauthorized
	}
	delete(f.srpSessions, sessionID)

	sharedKey, err := session.Complete(aPub, proof)
	if err != nil {
		return "", nil, client.ErrUnauthorized
	}

	_, authWire, err := token.Create(token.KindAuth)
	if err != nil {
		return "", nil, err
	}
	sealed, err := cryptox.SealWithKey(token.AuthFinishLabel, sharedKey, authWire)
	if err != nil {
		return "", nil, err
	}
	return "uid-1", sealed, nil
}

func (f *fakeClient) CreateSession(ctx context.Context, authWire []byte) (*client.SessionBundle, error) {
	authToken, err := token.Reconstruct(token.KindAuth, authWire)
	if err != nil {
		return nil, err
	}
	keyFetchWire, sessionWire, err := f.mintPair()
	if err != nil {
		return nil, err
	}
	keyFetch, err := token.Reconstruct(token.KindKeyFetch, keyFetchWire)
	if err != nil {
		return nil, err
	}
	session, err := token.Reconstruct(token.KindSession, sessionWire)
	if err != nil {
		return nil, err
	}
	sealed, err := authToken.BundleTokens(keyFetch, session)
	if err != nil {
		return nil, err
	}
	return &client.SessionBundle{UID: "uid-1", Sealed: sealed, Verified: true}, nil
}

func (f *fakeClient) FetchKeys(ctx context.Context, keyFetchToken []byte) ([]byte, error) {
	if !bytes.Equal(keyFetchToken, f.keyFetchWire) {
		return nil, client.ErrUnauthorized
	}
	keyFetch, err := token.Reconstruct(token.KindKeyFetch, keyFetchToken)
	if err != nil {
		return nil, err
	}
	return keyFetch.BundleAccountKeys(f.kA, f.wrapWrapKb)
}

func (f *fakeClient) VerifyCode(ctx context.Context, uid string, code string) error { return nil }

func (f *fakeClient) ChangePasswordStart(ctx context.Context, email string, authPW []byte) (*client.PasswordChangeTokens, error) {
	if email != f.email || !bytes.Equal(authPW, f.authPW) {
		return nil, client.ErrUnauthorized
	}
	keyFetchWire, _, err := f.mintPair()
	if err != nil {
		return nil, err
	}
	_, changeWire, err := token.Create(token.KindPasswordChange)
	if err != nil {
		return nil, err
	}
	return &client.PasswordChangeTokens{KeyFetchToken: keyFetchWire, PasswordChangeToken: changeWire}, nil
}

func (f *fakeClient) ChangePasswordFinish(ctx context.Context, changeToken, newAuthPW, newWrapKb []byte, version cryptox.StretchVersion) error {
	f.changeFinish.called = true
	f.changeFinish.newAuthPW = append([]byte(nil), newAuthPW...)
	f.changeFinish.newWrapKb = append([]byte(nil), newWrapKb...)
	f.changeFinish.version = version
	return nil
}

func (f *fakeClient) ForgotPasswordSend(ctx context.Context, email string) (*client.ForgotInfo, error) {
	return &client.ForgotInfo{ForgotToken: common.GenerateRandByteArray(32), Tries: 3, TTL: 15 * time.Minute}, nil
}

func (f *fakeClient) ForgotPasswordVerify(ctx context.Context, forgotToken []byte, code string) ([]byte, error) {
	_, resetWire, err := token.Create(token.KindAccountReset)
	return resetWire, err
}

func (f *fakeClient) ResetAccount(ctx context.Context, resetToken, newAuthPW []byte, version cryptox.StretchVersion) error {
	return nil
}

func (f *fakeClient) DestroySession(ctx context.Context) error {
	f.destroyCalled = true
	return nil
}

func (f *fakeClient) SetSessionToken(wireHex string) { f.installedToken = wireHex }

const strongPassword = "blue-volcano-stapler-91"

func TestRegister_WeakPasswordRejected(t *testing.T) {
	f := newFakeClient()
	s := NewAuthService(f)

	_, err := s.Register(context.Background(), "u@example.org", []byte("password"))
	if !errors.Is(err, common.ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword, got %v", err)
	}
	if f.email != "" {
		t.Fatal("CreateAccount should not have been called")
	}
}

func TestRegister_SendsDerivedAuthPW(t *testing.T) {
	f := newFakeClient()
	s := NewAuthService(f)

	uid, err := s.Register(context.Background(), "u@example.org", []byte(strongPassword))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if uid != "uid-1" {
		t.Fatalf("unexpected uid: %q", uid)
	}

	quick := cryptox.QuickStretch("u@example.org", []byte(strongPassword))
	want, err := cryptox.AuthPW(quick)
	if err != nil {
		t.Fatalf("AuthPW error: %v", err)
	}
	if !bytes.Equal(f.authPW, want) {
		t.Fatal("server did not receive the derived authPW")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFakeClient()
	s := NewAuthService(f)

	if _, err := s.Register(context.Background(), "u@example.org", []byte(strongPassword)); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := s.Login(context.Background(), "u@example.org", []byte("wrong-but-long-password-7"))
	if !errors.Is(err, client.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestSrpLogin_EndToEndAndFetchKeys(t *testing.T) {
	f := newFakeClient()
	s := NewAuthService(f)

	if _, err := s.Register(context.Background(), "u@example.org", []byte(strongPassword)); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	creds, err := s.SrpLogin(context.Background(), "u@example.org", []byte(strongPassword))
	if err != nil {
		t.Fatalf("SrpLogin error: %v", err)
	}
	if len(creds.SessionToken) != token.DataLen || len(creds.KeyFetchToken) != token.DataLen {
		t.Fatalf("unexpected token lengths: %d/%d", len(creds.SessionToken), len(creds.KeyFetchToken))
	}
	if !bytes.Equal(creds.SessionToken, f.sessionWire) {
		t.Fatal("recovered session wire does not match the minted one")
	}
	if f.installedToken == "" {
		t.Fatal("session token was not installed on the client")
	}

	keys, err := s.FetchKeys(context.Background(), "u@example.org", []byte(strongPassword), creds.KeyFetchToken)
	if err != nil {
		t.Fatalf("FetchKeys error: %v", err)
	}
	if !bytes.Equal(keys.KA, f.kA) {
		t.Fatal("class-A key mismatch")
	}

	quick := cryptox.QuickStretch("u@example.org", []byte(strongPassword))
	unwrap, err := cryptox.UnwrapBKey(quick)
	if err != nil {
		t.Fatalf("UnwrapBKey error: %v", err)
	}
	if !bytes.Equal(keys.KB, common.XorBytes(f.wrapKb, unwrap)) {
		t.Fatal("class-B key mismatch")
	}
}

func TestSrpLogin_WrongPassword(t *testing.T) {
	f := newFakeClient()
	s := NewAuthService(f)

	if _, err := s.Register(context.Background(), "u@example.org", []byte(strongPassword)); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := s.SrpLogin(context.Background(), "u@example.org", []byte("wrong-but-long-password-7"))
	if err == nil {
		t.Fatal("expected SrpLogin to fail with a wrong password")
	}
}

func TestChangePassword_PreservesClassBKey(t *testing.T) {
	f := newFakeClient()
	s := NewAuthService(f)

	if _, err := s.Register(context.Background(), "u@example.org", []byte(strongPassword)); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	newPassword := []byte("green-comet-harmonica-42")
	if err := s.ChangePassword(context.Background(), "u@example.org", []byte(strongPassword), newPassword); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}
	if !f.changeFinish.called {
		t.Fatal("ChangePasswordFinish was not called")
	}

	oldQuick := cryptox.QuickStretch("u@example.org", []byte(strongPassword))
	oldUnwrap, err := cryptox.UnwrapBKey(oldQuick)
	if err != nil {
		t.Fatalf("UnwrapBKey error: %v", err)
	}
	kB := common.XorBytes(f.wrapKb, oldUnwrap)

	newQuick := cryptox.QuickStretch("u@example.org", newPassword)
	newUnwrap, err := cryptox.UnwrapBKey(newQuick)
	if err != nil {
		t.Fatalf("UnwrapBKey error: %v", err)
	}
	if !bytes.Equal(common.XorBytes(f.changeFinish.newWrapKb, newUnwrap), kB) {
		t.Fatal("class-B key was not preserved across the password change")
	}
	if f.changeFinish.version != cryptox.StretchV2 {
		t.Fatalf("unexpected stretch version: %d", f.changeFinish.version)
	}
}

func TestLogout_DestroysSessionAndClearsToken(t *testing.T) {
	f := newFakeClient()
	s := NewAuthService(f)

	f.installedToken = "deadbeef"
	if err := s.Logout(context.Background()); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if !f.destroyCalled {
		t.Fatal("DestroySession was not called")
	}
	if f.installedToken != "" {
		t.Fatal("session token was not cleared")
	}
}
