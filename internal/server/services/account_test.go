package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/cryptox"
	"github.com/dmitrijs2005/keywarden/internal/dbx"
	"github.com/dmitrijs2005/keywarden/internal/server/config"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
	accountsrepo "github.com/dmitrijs2005/keywarden/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/tokens"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func expectTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

// memRepoManager serves the in-memory repositories regardless of the handle
// passed in, so services can be exercised without a real database.
type memRepoManager struct {
	accounts accountsrepo.Repository
	tokens   tokens.Repository
}

func newMemRepoManager() *memRepoManager {
	return &memRepoManager{
		accounts: accountsrepo.NewInMemoryRepository(),
		tokens:   tokens.NewInMemoryRepository(),
	}
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository { return m.accounts }
func (m *memRepoManager) Tokens(db dbx.DBTX) tokens.Repository         { return m.tokens }

// captureMailer records the last codes handed to it.
type captureMailer struct {
	mu           sync.Mutex
	verifyCode   string
	recoveryCode string
}

func (m *captureMailer) SendVerifyCode(ctx context.Context, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verifyCode = code
	return nil
}

func (m *captureMailer) SendRecoveryCode(ctx context.Context, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recoveryCode = code
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ConfirmSessionsEnabled = false
	return cfg
}

func newAccountServiceForTest(t *testing.T, db *sql.DB, rm *memRepoManager, cfg *config.Config) (*AccountService, *captureMailer) {
	t.Helper()
	mailer := &captureMailer{}
	return NewAccountService(db, rm, cfg, mailer, nil), mailer
}

func randAuthPW() []byte { return common.GenerateRandByteArray(32) }

func TestCreateAccount_ThenLogin(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	expectTx(mock)

	rm := newMemRepoManager()
	s, _ := newAccountServiceForTest(t, db, rm, testConfig())

	authPW := randAuthPW()
	account, err := s.CreateAccount(context.Background(), "USER@Example.Com ", authPW, cryptox.StretchV1)
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if account.Email != "user@example.com" {
		t.Fatalf("email not normalized: %q", account.Email)
	}
	if account.EmailVerified {
		t.Fatalf("fresh account must start unverified")
	}

	result, err := s.Login(context.Background(), "user@example.com", authPW)
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if result.UID != account.UID {
		t.Fatalf("uid mismatch: %s vs %s", result.UID, account.UID)
	}
	if len(result.SessionToken) != 32 || len(result.KeyFetchToken) != 32 {
		t.Fatalf("unexpected wire lengths: %d %d", len(result.SessionToken), len(result.KeyFetchToken))
	}
	if !result.Verified {
		t.Fatalf("session must be verified when confirmation is disabled")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateAccount_Duplicate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newMemRepoManager()
	s, _ := newAccountServiceForTest(t, db, rm, testConfig())

	if _, err := s.CreateAccount(context.Background(), "a@b.c", randAuthPW(), cryptox.StretchV1); err != nil {
		t.Fatalf("first CreateAccount error: %v", err)
	}
	_, err := s.CreateAccount(context.Background(), "a@b.c", randAuthPW(), cryptox.StretchV1)
	if !errors.Is(err, common.ErrAccountExists) {
		t.Fatalf("want ErrAccountExists, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newMemRepoManager()
	s, _ := newAccountServiceForTest(t, db, rm, testConfig())

	if _, err := s.CreateAccount(context.Background(), "a@b.c", randAuthPW(), cryptox.StretchV1); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	_, err := s.Login(context.Background(), "a@b.c", randAuthPW())
	if !errors.Is(err, common.ErrIncorrectPassword) {
		t.Fatalf("want ErrIncorrectPassword, got %v", err)
	}
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newMemRepoManager()
	s, _ := newAccountServiceForTest(t, db, rm, testConfig())

	_, err := s.Login(context.Background(), "nobody@b.c", randAuthPW())
	if !errors.Is(err, common.ErrIncorrectPassword) {
		t.Fatalf("want ErrIncorrectPassword for unknown email, got %v", err)
	}
}

func TestLogin_LockedAccount(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newMemRepoManager()
	s, _ := newAccountServiceForTest(t, db, rm, testConfig())

	authPW := randAuthPW()
	account, err := s.CreateAccount(context.Background(), "a@b.c", authPW, cryptox.StretchV1)
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if err := rm.accounts.SetLocked(context.Background(), account.UID, true); err != nil {
		t.Fatalf("SetLocked error: %v", err)
	}

	_, err = s.Login(context.Background(), "a@b.c", authPW)
	if !errors.Is(err, common.ErrAccountLocked) {
		t.Fatalf("want ErrAccountLocked, got %v", err)
	}
}

func TestVerifyCode_EmailAndIdempotency(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newMemRepoManager()
	s, mailer := newAccountServiceForTest(t, db, rm, testConfig())

	account, err := s.CreateAccount(context.Background(), "a@b.c", randAuthPW(), cryptox.StretchV1)
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if mailer.verifyCode == "" {
		t.Fatalf("no verification code mailed")
	}

	if err := s.VerifyCode(context.Background(), account.UID, "ffffffffffffffffffffffffffffffff"); !errors.Is(err, common.ErrInvalidCode) {
		t.Fatalf("want ErrInvalidCode, got %v", err)
	}

	if err := s.VerifyCode(context.Background(), account.UID, mailer.verifyCode); err != nil {
		t.Fatalf("VerifyCode error: %v", err)
	}
	stored, err := rm.accounts.GetByUID(context.Background(), account.UID)
	if err != nil {
		t.Fatalf("GetByUID error: %v", err)
	}
	if !stored.EmailVerified {
		t.Fatalf("account not marked verified")
	}

	// resubmitting the same code stays a success
	if err := s.VerifyCode(context.Background(), account.UID, mailer.verifyCode); err != nil {
		t.Fatalf("repeat VerifyCode error: %v", err)
	}
}

func TestSessionConfirmation_SampledSessionNeedsCode(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	expectTx(mock)

	cfg := testConfig()
	cfg.ConfirmSessionsEnabled = true
	cfg.ConfirmSampleRate = 1.0

	rm := newMemRepoManager()
	s, mailer := newAccountServiceForTest(t, db, rm, cfg)

	authPW := randAuthPW()
	account, err := s.CreateAccount(context.Background(), "a@b.c", authPW, cryptox.StretchV1)
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}

	result, err := s.Login(context.Background(), "a@b.c", authPW)
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if result.Verified {
		t.Fatalf("sampled session must start unverified")
	}
	if mailer.verifyCode == "" {
		t.Fatalf("no confirmation code mailed")
	}

	if err := s.VerifyCode(context.Background(), account.UID, mailer.verifyCode); err != nil {
		t.Fatalf("VerifyCode error: %v", err)
	}
}

func TestChangePassword_Flow(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	expectTx(mock) // initial login
	expectTx(mock) // change start
	expectTx(mock) // login with new password

	rm := newMemRepoManager()
	s, _ := newAccountServiceForTest(t, db, rm, testConfig())

	oldPW := randAuthPW()
	if _, err := s.CreateAccount(context.Background(), "a@b.c", oldPW, cryptox.StretchV1); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}

	login, err := s.Login(context.Background(), "a@b.c", oldPW)
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	change, err := s.ChangePasswordStart(context.Background(), "a@b.c", oldPW)
	if err != nil {
		t.Fatalf("ChangePasswordStart error: %v", err)
	}

	newPW := randAuthPW()
	newWrapKb := common.GenerateRandByteArray(32)
	if err := s.ChangePasswordFinish(context.Background(), change.PasswordChangeToken, newPW, newWrapKb, cryptox.StretchV2); err != nil {
		t.Fatalf("ChangePasswordFinish error: %v", err)
	}

	// old credentials and old tokens are both dead
	if _, err := s.Login(context.Background(), "a@b.c", oldPW); !errors.Is(err, common.ErrIncorrectPassword) {
		t.Fatalf("old password must fail, got %v", err)
	}
	sessions := NewSessionService(db, rm, testConfig(), &captureMailer{})
	if _, err := sessions.FetchKeys(context.Background(), login.KeyFetchToken); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("old key-fetch token must be revoked, got %v", err)
	}

	// change token is single use
	if err := s.ChangePasswordFinish(context.Background(), change.PasswordChangeToken, newPW, newWrapKb, cryptox.StretchV2); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("reused change token must fail, got %v", err)
	}

	result, err := s.Login(context.Background(), "a@b.c", newPW)
	if err != nil {
		t.Fatalf("login with new password error: %v", err)
	}
	if result.UID == "" {
		t.Fatalf("empty uid after password change")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestForgotPassword_TriesAndReset(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	expectTx(mock) // forgot verify success
	expectTx(mock) // login after reset

	rm := newMemRepoManager()
	s, mailer := newAccountServiceForTest(t, db, rm, testConfig())

	if _, err := s.ForgotPasswordSend(context.Background(), "nobody@b.c"); !errors.Is(err, common.ErrUnknownAccount) {
		t.Fatalf("want ErrUnknownAccount, got %v", err)
	}

	oldPW := randAuthPW()
	account, err := s.CreateAccount(context.Background(), "a@b.c", oldPW, cryptox.StretchV1)
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	oldStored, err := rm.accounts.GetByUID(context.Background(), account.UID)
	if err != nil {
		t.Fatalf("GetByUID error: %v", err)
	}
	oldWrapWrapKb := append([]byte(nil), oldStored.WrapWrapKb...)

	forgot, err := s.ForgotPasswordSend(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("ForgotPasswordSend error: %v", err)
	}
	if forgot.Tries != 3 {
		t.Fatalf("want 3 tries, got %d", forgot.Tries)
	}
	if mailer.recoveryCode == "" {
		t.Fatalf("no recovery code mailed")
	}

	// wrong codes burn tries
	if _, err := s.ForgotPasswordVerify(context.Background(), forgot.Token, "00000000000000000000000000000000"); !errors.Is(err, common.ErrInvalidCode) {
		t.Fatalf("want ErrInvalidCode, got %v", err)
	}
	if _, err := s.ForgotPasswordVerify(context.Background(), forgot.Token, "00000000000000000000000000000000"); !errors.Is(err, common.ErrInvalidCode) {
		t.Fatalf("want ErrInvalidCode, got %v", err)
	}
	if _, err := s.ForgotPasswordVerify(context.Background(), forgot.Token, "00000000000000000000000000000000"); !errors.Is(err, common.ErrTooManyAttempts) {
		t.Fatalf("want ErrTooManyAttempts, got %v", err)
	}
	// exhausted token is destroyed
	if _, err := s.ForgotPasswordVerify(context.Background(), forgot.Token, mailer.recoveryCode); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken after exhaustion, got %v", err)
	}

	forgot, err = s.ForgotPasswordSend(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("second ForgotPasswordSend error: %v", err)
	}
	resetWire, err := s.ForgotPasswordVerify(context.Background(), forgot.Token, mailer.recoveryCode)
	if err != nil {
		t.Fatalf("ForgotPasswordVerify error: %v", err)
	}

	newPW := randAuthPW()
	if err := s.ResetAccount(context.Background(), resetWire, newPW, cryptox.StretchV2); err != nil {
		t.Fatalf("ResetAccount error: %v", err)
	}

	if _, err := s.Login(context.Background(), "a@b.c", oldPW); !errors.Is(err, common.ErrIncorrectPassword) {
		t.Fatalf("old password must fail after reset, got %v", err)
	}
	if _, err := s.Login(context.Background(), "a@b.c", newPW); err != nil {
		t.Fatalf("login with new password error: %v", err)
	}

	newStored, err := rm.accounts.GetByUID(context.Background(), account.UID)
	if err != nil {
		t.Fatalf("GetByUID error: %v", err)
	}
	if bytes.Equal(oldWrapWrapKb, newStored.WrapWrapKb) {
		t.Fatalf("wrapped class-B key must change on reset")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

// conflictingAccounts fails CAS a fixed number of times before delegating.
type conflictingAccounts struct {
	accountsrepo.Repository
	mu        sync.Mutex
	conflicts int
	calls     int
}

func (c *conflictingAccounts) UpdateVerifierCAS(ctx context.Context, uid string, version int64, upd accountsrepo.VerifierUpdate) error {
	c.mu.Lock()
	c.calls++
	fail := c.calls <= c.conflicts
	c.mu.Unlock()
	if fail {
		return common.ErrVersionConflict
	}
	return c.Repository.UpdateVerifierCAS(ctx, uid, version, upd)
}

func TestUpdateCredentials_RetriesOnConflict(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newMemRepoManager()
	conflicting := &conflictingAccounts{Repository: rm.accounts, conflicts: 2}
	rm.accounts = conflicting

	s, _ := newAccountServiceForTest(t, db, rm, testConfig())

	account, err := s.CreateAccount(context.Background(), "a@b.c", randAuthPW(), cryptox.StretchV1)
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}

	err = s.updateCredentials(context.Background(), account.UID, func(a *models.Account) (accountsrepo.VerifierUpdate, error) {
		return s.buildCredentials(a.Email, randAuthPW(), common.GenerateRandByteArray(32), cryptox.StretchV1)
	})
	if err != nil {
		t.Fatalf("updateCredentials error: %v", err)
	}
	if conflicting.calls != 3 {
		t.Fatalf("want 3 CAS attempts, got %d", conflicting.calls)
	}
}

func TestUpdateCredentials_GivesUpAfterBudget(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := newMemRepoManager()
	conflicting := &conflictingAccounts{Repository: rm.accounts, conflicts: 1000}
	rm.accounts = conflicting

	cfg := testConfig()
	cfg.CASMaxAttempts = 2
	s, _ := newAccountServiceForTest(t, db, rm, cfg)

	account, err := s.CreateAccount(context.Background(), "a@b.c", randAuthPW(), cryptox.StretchV1)
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}

	err = s.updateCredentials(context.Background(), account.UID, func(a *models.Account) (accountsrepo.VerifierUpdate, error) {
		return s.buildCredentials(a.Email, randAuthPW(), common.GenerateRandByteArray(32), cryptox.StretchV1)
	})
	if !errors.Is(err, common.ErrVersionConflict) {
		t.Fatalf("want ErrVersionConflict after exhausting retries, got %v", err)
	}
}
