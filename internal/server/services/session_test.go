package services

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/cryptox"
	"github.com/dmitrijs2005/keywarden/internal/token"
)

func TestFetchKeys_GatedOnVerificationAndSingleUse(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	expectTx(mock) // login

	rm := newMemRepoManager()
	cfg := testConfig()
	accountsSvc, mailer := newAccountServiceForTest(t, db, rm, cfg)
	sessionSvc := NewSessionService(db, rm, cfg, &captureMailer{})

	authPW := randAuthPW()
	account, err := accountsSvc.CreateAccount(context.Background(), "keys@b.c", authPW, cryptox.StretchV1)
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}

	login, err := accountsSvc.Login(context.Background(), "keys@b.c", authPW)
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	// keys stay withheld until the email round trip completes
	if _, err := sessionSvc.FetchKeys(context.Background(), login.KeyFetchToken); !errors.Is(err, common.ErrUnverifiedAccount) {
		t.Fatalf("want ErrUnverifiedAccount, got %v", err)
	}

	if err := accountsSvc.VerifyCode(context.Background(), account.UID, mailer.verifyCode); err != nil {
		t.Fatalf("VerifyCode error: %v", err)
	}

	sealed, err := sessionSvc.FetchKeys(context.Background(), login.KeyFetchToken)
	if err != nil {
		t.Fatalf("FetchKeys error: %v", err)
	}

	keyFetchToken, err := token.Reconstruct(token.KindKeyFetch, login.KeyFetchToken)
	if err != nil {
		t.Fatalf("Reconstruct error: %v", err)
	}
	kA, wrapWrapKb, err := keyFetchToken.UnbundleAccountKeys(sealed)
	if err != nil {
		t.Fatalf("UnbundleAccountKeys error: %v", err)
	}

	stored, err := rm.accounts.GetByUID(context.Background(), account.UID)
	if err != nil {
		t.Fatalf("GetByUID error: %v", err)
	}
	if !bytes.Equal(kA, stored.KA) {
		t.Fatalf("kA mismatch")
	}
	if !bytes.Equal(wrapWrapKb, stored.WrapWrapKb) {
		t.Fatalf("wrapWrapKb mismatch")
	}

	// the client recovers wrapKb by redoing the server stretch
	stretched, err := cryptox.ServerStretch(cryptox.StretchVersion(stored.VerifierVersion), authPW, stored.AuthSalt)
	if err != nil {
		t.Fatalf("ServerStretch error: %v", err)
	}
	wrapKey, err := cryptox.WrapWrapKey(stretched)
	if err != nil {
		t.Fatalf("WrapWrapKey error: %v", err)
	}
	if wrapKb := common.XorBytes(wrapWrapKb, wrapKey); len(wrapKb) != 32 {
		t.Fatalf("unexpected wrapKb length %d", len(wrapKb))
	}

	// the token was spent
	if _, err := sessionSvc.FetchKeys(context.Background(), login.KeyFetchToken); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken on reuse, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestFetchKeys_TamperedBundleRejectedByHolder(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	expectTx(mock)

	rm := newMemRepoManager()
	cfg := testConfig()
	accountsSvc, mailer := newAccountServiceForTest(t, db, rm, cfg)
	sessionSvc := NewSessionService(db, rm, cfg, &captureMailer{})

	authPW := randAuthPW()
	account, err := accountsSvc.CreateAccount(context.Background(), "keys@b.c", authPW, cryptox.StretchV1)
	if err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if err := accountsSvc.VerifyCode(context.Background(), account.UID, mailer.verifyCode); err != nil {
		t.Fatalf("VerifyCode error: %v", err)
	}

	login, err := accountsSvc.Login(context.Background(), "keys@b.c", authPW)
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	sealed, err := sessionSvc.FetchKeys(context.Background(), login.KeyFetchToken)
	if err != nil {
		t.Fatalf("FetchKeys error: %v", err)
	}

	sealed[0] ^= 0x01

	keyFetchToken, err := token.Reconstruct(token.KindKeyFetch, login.KeyFetchToken)
	if err != nil {
		t.Fatalf("Reconstruct error: %v", err)
	}
	if _, _, err := keyFetchToken.UnbundleAccountKeys(sealed); !errors.Is(err, common.ErrIntegrityFailure) {
		t.Fatalf("want ErrIntegrityFailure, got %v", err)
	}
}

func TestDestroySession_Idempotent(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	expectTx(mock)

	rm := newMemRepoManager()
	cfg := testConfig()
	accountsSvc, _ := newAccountServiceForTest(t, db, rm, cfg)
	sessionSvc := NewSessionService(db, rm, cfg, &captureMailer{})

	authPW := randAuthPW()
	if _, err := accountsSvc.CreateAccount(context.Background(), "bye@b.c", authPW, cryptox.StretchV1); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	login, err := accountsSvc.Login(context.Background(), "bye@b.c", authPW)
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	if _, err := sessionSvc.CheckSession(context.Background(), hex.EncodeToString(login.SessionToken)); err != nil {
		t.Fatalf("CheckSession error: %v", err)
	}

	if err := sessionSvc.DestroySession(context.Background(), login.SessionToken); err != nil {
		t.Fatalf("DestroySession error: %v", err)
	}
	if _, err := sessionSvc.CheckSession(context.Background(), hex.EncodeToString(login.SessionToken)); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken after destroy, got %v", err)
	}

	// retried teardown is harmless
	if err := sessionSvc.DestroySession(context.Background(), login.SessionToken); err != nil {
		t.Fatalf("repeat DestroySession error: %v", err)
	}
}

func TestCheckSession_BadWire(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	sessionSvc := NewSessionService(db, newMemRepoManager(), testConfig(), &captureMailer{})

	if _, err := sessionSvc.CheckSession(context.Background(), "zz-not-hex"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
	if _, err := sessionSvc.CheckSession(context.Background(), "00ff"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for short wire, got %v", err)
	}
}

func TestRequiresConfirmation_Sampling(t *testing.T) {
	cfg := testConfig()

	cfg.ConfirmSessionsEnabled = false
	cfg.ConfirmSampleRate = 1.0
	if requiresConfirmation(cfg, "uid-1") {
		t.Fatalf("disabled sampler must never select")
	}

	cfg.ConfirmSessionsEnabled = true
	if !requiresConfirmation(cfg, "uid-1") {
		t.Fatalf("rate 1.0 must always select")
	}

	cfg.ConfirmSampleRate = 0
	if requiresConfirmation(cfg, "uid-1") {
		t.Fatalf("rate 0 must never select")
	}

	// per-uid decisions are stable
	cfg.ConfirmSampleRate = 0.5
	first := requiresConfirmation(cfg, "uid-42")
	for i := 0; i < 10; i++ {
		if requiresConfirmation(cfg, "uid-42") != first {
			t.Fatalf("sampling must be deterministic per uid")
		}
	}
}
