package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/keywarden/internal/client/client"
	"github.com/dmitrijs2005/keywarden/internal/client/services"
)

func stubInputs(t *testing.T, text string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer, _ string) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuth struct {
	// Register
	regUser string
	regPass []byte
	regErr  error

	// SrpLogin
	loginUser  string
	loginCreds *services.Credentials
	loginErr   error

	// VerifyCode
	verifyUID  string
	verifyCode string
	verifyErr  error

	// FetchKeys
	fetchKeys *services.AccountKeys
	fetchErr  error

	// Logout
	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) (string, error) {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return "uid-1", f.regErr
}
func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (*services.Credentials, error) {
	return f.loginCreds, f.loginErr
}
func (f *fakeAuth) SrpLogin(_ context.Context, user string, pass []byte) (*services.Credentials, error) {
	f.loginUser = user
	return f.loginCreds, f.loginErr
}
func (f *fakeAuth) FetchKeys(_ context.Context, user string, pass []byte, wire []byte) (*services.AccountKeys, error) {
	return f.fetchKeys, f.fetchErr
}
func (f *fakeAuth) VerifyCode(_ context.Context, uid string, code string) error {
	f.verifyUID, f.verifyCode = uid, code
	return f.verifyErr
}
func (f *fakeAuth) ChangePassword(context.Context, string, []byte, []byte) error { return nil }
func (f *fakeAuth) SendRecoveryCode(context.Context, string) (*client.ForgotInfo, error) {
	return &client.ForgotInfo{Tries: 3}, nil
}
func (f *fakeAuth) ResetPassword(context.Context, []byte, string, string, []byte) error { return nil }
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Ping(context.Context) error      { return nil }
func (f *fakeAuth) Close(ctx context.Context) error { return nil }

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f}

	restore := stubInputs(t, "alice@example.org", []byte("secret"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regUser != "alice@example.org" {
		t.Fatalf("Register user mismatch: %q", f.regUser)
	}
	if string(f.regPass) != "secret" {
		t.Fatalf("Register pass mismatch: %q", string(f.regPass))
	}
}

func TestLogin_KeepsCredentials(t *testing.T) {
	f := &fakeAuth{loginCreds: &services.Credentials{UID: "uid-1", Verified: true}}
	a := &App{authService: f}

	restore := stubInputs(t, "alice@example.org", []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !a.isLoggedIn() || a.userName != "alice@example.org" {
		t.Fatalf("login state not recorded: %+v", a)
	}
}

func TestLogin_FailureLeavesState(t *testing.T) {
	f := &fakeAuth{loginErr: errors.New("nope")}
	a := &App{authService: f}

	restore := stubInputs(t, "alice@example.org", []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if a.isLoggedIn() {
		t.Fatal("should not be logged in after a failed login")
	}
}

func TestVerify_MarksSessionVerified(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f, creds: &services.Credentials{UID: "uid-1"}}

	restore := stubInputs(t, "123abc", nil)
	defer restore()

	if err := a.Verify(context.Background()); err != nil {
		t.Fatalf("Verify err: %v", err)
	}
	if f.verifyUID != "uid-1" || f.verifyCode != "123abc" {
		t.Fatalf("unexpected verify call: %q %q", f.verifyUID, f.verifyCode)
	}
	if !a.creds.Verified {
		t.Fatal("creds not marked verified")
	}
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f, userName: "alice@example.org", creds: &services.Credentials{UID: "uid-1"}}
	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("Logout not propagated to the service")
	}
	if a.isLoggedIn() || a.userName != "" {
		t.Fatalf("state not cleared")
	}
}
