// Package services contains server-side business logic: account lifecycle,
// password-derived authentication, the SRP handshake, and the bearer-token
// session layer built on top of them.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/cryptox"
	"github.com/dmitrijs2005/keywarden/internal/dbx"
	"github.com/dmitrijs2005/keywarden/internal/server/config"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/keywarden/internal/srp"
	"github.com/dmitrijs2005/keywarden/internal/token"
)

// AccountService handles registration, password login, email verification,
// password change, and the forgot/reset recovery chain.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cfg         *config.Config
	grp         *srp.Group
	mailer      Mailer
	blocker     Blocker
}

// NewAccountService constructs an AccountService using repositories and
// server config. A nil blocker admits everything.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, mailer Mailer, blocker Blocker) *AccountService {
	if blocker == nil {
		blocker = NoopBlocker{}
	}
	return &AccountService{
		db:          db,
		repomanager: m,
		cfg:         cfg,
		grp:         srp.Group2048(),
		mailer:      mailer,
		blocker:     blocker,
	}
}

// LoginResult carries the credentials minted by a successful password login.
// SessionToken and KeyFetchToken are wire forms; Verified reports whether
// the session still awaits an email confirmation code.
type LoginResult struct {
	UID           string
	SessionToken  []byte
	KeyFetchToken []byte
	Verified      bool
}

// PasswordChangeResult carries the two short-lived tokens a password change
// needs: KeyFetchToken to retrieve the current wrapped keys, and
// PasswordChangeToken to authorize the replacement credentials.
type PasswordChangeResult struct {
	KeyFetchToken       []byte
	PasswordChangeToken []byte
}

// ForgotResult describes a freshly issued password-forgot token: its wire
// form plus the retry budget and lifetime the mailed code is valid for.
type ForgotResult struct {
	Token []byte
	Tries int
	TTL   time.Duration
}

// CreateAccount registers a new account. The server receives only the
// client-derived authPW, never the password: everything stored (salt,
// verify hash, SRP verifier, doubly wrapped class-B key) is one-way derived
// from it. The class keys kA and kB are generated here and handed out only
// through the key-fetch path.
func (s *AccountService) CreateAccount(ctx context.Context, email string, authPW []byte, version cryptox.StretchVersion) (*models.Account, error) {
	email = normalizeEmail(email)

	if err := s.blocker.Check(ctx, email, "createAccount"); err != nil {
		return nil, err
	}

	authSalt := common.GenerateRandByteArray(32)

	stretched, err := cryptox.ServerStretch(version, authPW, authSalt)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(stretched)

	verifyHash, err := cryptox.VerifyHash(stretched)
	if err != nil {
		return nil, common.ErrInternal
	}
	wrapKey, err := cryptox.WrapWrapKey(stretched)
	if err != nil {
		return nil, common.ErrInternal
	}

	kA := common.GenerateRandByteArray(32)
	wrapKb := common.GenerateRandByteArray(32)

	code, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, common.ErrInternal
	}

	account := &models.Account{
		UID:             uuid.NewString(),
		Email:           email,
		EmailCode:       code,
		AuthSalt:        authSalt,
		VerifyHash:      verifyHash,
		Verifier:        srp.ComputeVerifier(s.grp, email, authPW, authSalt),
		VerifierVersion: int(version),
		KA:              kA,
		WrapWrapKb:      common.XorBytes(wrapKb, wrapKey),
	}

	repo := s.repomanager.Accounts(s.db)
	created, err := repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrAccountExists) {
			return nil, common.ErrAccountExists
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	if err := s.mailer.SendVerifyCode(ctx, email, code); err != nil {
		return nil, fmt.Errorf("error sending verification code: %w", err)
	}

	return created, nil
}

// Login authenticates by comparing the hash derived from the presented
// authPW against the stored verify hash, then mints a session token and a
// key-fetch token. An unknown email and a wrong password are reported
// identically.
func (s *AccountService) Login(ctx context.Context, email string, authPW []byte) (*LoginResult, error) {
	email = normalizeEmail(email)

	if err := s.blocker.Check(ctx, email, "login"); err != nil {
		return nil, err
	}

	account, err := s.authenticate(ctx, email, authPW)
	if err != nil {
		return nil, err
	}

	var result *LoginResult
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		result, err = s.mintLoginTokens(ctx, tx, account.UID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// VerifyCode consumes an emailed confirmation code. It first tries to match
// a pending session confirmation, then falls back to the account's email
// verification code. Re-submitting a code that already verified the account
// succeeds, so retried deliveries stay harmless.
func (s *AccountService) VerifyCode(ctx context.Context, uid string, code string) error {
	tokenRepo := s.repomanager.Tokens(s.db)

	record, err := tokenRepo.FindByVerificationCode(ctx, uid, code)
	if err == nil {
		return tokenRepo.SetVerified(ctx, record.Kind, record.ID)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return common.ErrInternal
	}

	accountRepo := s.repomanager.Accounts(s.db)
	account, err := accountRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUnknownAccount
		}
		return common.ErrInternal
	}

	if subtle.ConstantTimeCompare([]byte(account.EmailCode), []byte(code)) != 1 {
		return common.ErrInvalidCode
	}
	if account.EmailVerified {
		return nil
	}
	return accountRepo.SetEmailVerified(ctx, uid)
}

// ChangePasswordStart authenticates with the current password and issues
// the token pair driving a change: the key-fetch token recovers the wrapped
// class keys, the password-change token authorizes ChangePasswordFinish.
func (s *AccountService) ChangePasswordStart(ctx context.Context, email string, authPW []byte) (*PasswordChangeResult, error) {
	email = normalizeEmail(email)

	if err := s.blocker.Check(ctx, email, "passwordChange"); err != nil {
		return nil, err
	}

	account, err := s.authenticate(ctx, email, authPW)
	if err != nil {
		return nil, err
	}

	var result *PasswordChangeResult
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tokens(tx)

		_, keyFetchWire, err := mintToken(ctx, repo, token.KindKeyFetch, account.UID)
		if err != nil {
			return err
		}
		_, changeWire, err := mintToken(ctx, repo, token.KindPasswordChange, account.UID)
		if err != nil {
			return err
		}

		result = &PasswordChangeResult{KeyFetchToken: keyFetchWire, PasswordChangeToken: changeWire}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ChangePasswordFinish replaces the account's credentials with ones derived
// from newAuthPW and re-wraps the class-B key the client already unwrapped
// and re-wrapped under the new password. Every outstanding token is revoked:
// credentials derived under the old password must not outlive it.
func (s *AccountService) ChangePasswordFinish(ctx context.Context, changeTokenWire []byte, newAuthPW, newWrapKb []byte, version cryptox.StretchVersion) error {
	tokenRepo := s.repomanager.Tokens(s.db)

	t, record, err := lookupToken(ctx, tokenRepo, token.KindPasswordChange, changeTokenWire)
	if err != nil {
		return err
	}

	if err := tokenRepo.Delete(ctx, t.Kind.StoreName(), t.IDHex()); err != nil {
		return common.ErrInternal
	}

	err = s.updateCredentials(ctx, record.UID, func(account *models.Account) (accounts.VerifierUpdate, error) {
		return s.buildCredentials(account.Email, newAuthPW, newWrapKb, version)
	})
	if err != nil {
		return err
	}

	return tokenRepo.DeleteAllForAccount(ctx, record.UID)
}

// ForgotPasswordSend starts account recovery: it issues a password-forgot
// token, mails its pass code, and reports the retry budget and lifetime.
// Recovery is the one flow that admits account existence, since mail can
// only be sent to accounts that exist.
func (s *AccountService) ForgotPasswordSend(ctx context.Context, email string) (*ForgotResult, error) {
	email = normalizeEmail(email)

	if err := s.blocker.Check(ctx, email, "passwordForgot"); err != nil {
		return nil, err
	}

	accountRepo := s.repomanager.Accounts(s.db)
	account, err := accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnknownAccount
		}
		return nil, common.ErrInternal
	}

	passCode, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, common.ErrInternal
	}

	tokenRepo := s.repomanager.Tokens(s.db)

	t, wire, err := token.Create(token.KindPasswordForgot)
	if err != nil {
		return nil, common.ErrInternal
	}

	expires := time.Now().Add(s.cfg.ForgotTokenTTL)
	record := &models.TokenRecord{
		ID:        t.IDHex(),
		UID:       account.UID,
		Kind:      t.Kind.StoreName(),
		CreatedAt: time.Now(),
		PassCode:  passCode,
		Tries:     s.cfg.ForgotTokenTries,
		ExpiresAt: &expires,
	}
	if err := tokenRepo.Put(ctx, record); err != nil {
		return nil, fmt.Errorf("error storing forgot token: %w", err)
	}

	if err := s.mailer.SendRecoveryCode(ctx, email, passCode); err != nil {
		return nil, fmt.Errorf("error sending recovery code: %w", err)
	}

	return &ForgotResult{Token: wire, Tries: record.Tries, TTL: s.cfg.ForgotTokenTTL}, nil
}

// ForgotPasswordVerify trades a forgot token plus the mailed pass code for
// an account-reset token. Each wrong code burns one try; exhausting the
// budget or outliving the TTL destroys the token.
func (s *AccountService) ForgotPasswordVerify(ctx context.Context, forgotTokenWire []byte, code string) ([]byte, error) {
	tokenRepo := s.repomanager.Tokens(s.db)

	t, record, err := lookupToken(ctx, tokenRepo, token.KindPasswordForgot, forgotTokenWire)
	if err != nil {
		return nil, err
	}

	if record.Expired(time.Now()) {
		_ = tokenRepo.Delete(ctx, t.Kind.StoreName(), t.IDHex())
		return nil, common.ErrInvalidToken
	}

	if subtle.ConstantTimeCompare([]byte(record.PassCode), []byte(code)) != 1 {
		record.Tries--
		if record.Tries <= 0 {
			_ = tokenRepo.Delete(ctx, t.Kind.StoreName(), t.IDHex())
			return nil, common.ErrTooManyAttempts
		}
		if err := tokenRepo.UpdateTries(ctx, t.Kind.StoreName(), t.IDHex(), record.Tries); err != nil {
			return nil, common.ErrInternal
		}
		return nil, common.ErrInvalidCode
	}

	var resetWire []byte
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tokens(tx)
		if err := repo.Delete(ctx, t.Kind.StoreName(), t.IDHex()); err != nil {
			return err
		}
		_, resetWire, err = mintToken(ctx, repo, token.KindAccountReset, record.UID)
		return err
	})
	if err != nil {
		return nil, common.ErrInternal
	}
	return resetWire, nil
}

// ResetAccount consumes an account-reset token and installs credentials
// derived from newAuthPW. The class-B key is regenerated, so data encrypted
// under the old kB is unrecoverable; that is the cost of resetting a
// password the server never knew. All outstanding tokens are revoked and
// any lockout is cleared.
func (s *AccountService) ResetAccount(ctx context.Context, resetTokenWire []byte, newAuthPW []byte, version cryptox.StretchVersion) error {
	tokenRepo := s.repomanager.Tokens(s.db)

	t, record, err := lookupToken(ctx, tokenRepo, token.KindAccountReset, resetTokenWire)
	if err != nil {
		return err
	}

	if err := tokenRepo.Delete(ctx, t.Kind.StoreName(), t.IDHex()); err != nil {
		return common.ErrInternal
	}

	err = s.updateCredentials(ctx, record.UID, func(account *models.Account) (accounts.VerifierUpdate, error) {
		return s.buildCredentials(account.Email, newAuthPW, common.GenerateRandByteArray(32), version)
	})
	if err != nil {
		return err
	}

	accountRepo := s.repomanager.Accounts(s.db)
	if err := accountRepo.SetLocked(ctx, record.UID, false); err != nil {
		return common.ErrInternal
	}

	return tokenRepo.DeleteAllForAccount(ctx, record.UID)
}

// --- helpers below ---

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// authenticate resolves an account by email and checks authPW against the
// stored verify hash. Unknown accounts still pay for a stretch against a
// throwaway salt before failing, keeping the timing of both outcomes alike.
func (s *AccountService) authenticate(ctx context.Context, email string, authPW []byte) (*models.Account, error) {
	repo := s.repomanager.Accounts(s.db)

	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_, _ = cryptox.DeriveVerifyHash(cryptox.StretchV2, authPW, common.GenerateRandByteArray(32))
			return nil, common.ErrIncorrectPassword
		}
		return nil, common.ErrInternal
	}

	if account.LockedAt != nil {
		return nil, common.ErrAccountLocked
	}

	candidate, err := cryptox.DeriveVerifyHash(cryptox.StretchVersion(account.VerifierVersion), authPW, account.AuthSalt)
	if err != nil {
		return nil, common.ErrInternal
	}
	if subtle.ConstantTimeCompare(account.VerifyHash, candidate) != 1 {
		return nil, common.ErrIncorrectPassword
	}

	return account, nil
}

// mintLoginTokens issues the session/key-fetch pair for uid, marking the
// session unverified when the confirmation sampler selects this account.
func (s *AccountService) mintLoginTokens(ctx context.Context, tx dbx.DBTX, uid string) (*LoginResult, error) {
	pair, err := mintSessionPair(ctx, tx, s.repomanager, s.cfg, s.mailer, uid)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		UID:           uid,
		SessionToken:  pair.session.Data,
		KeyFetchToken: pair.keyFetch.Data,
		Verified:      pair.verified,
	}, nil
}

// buildCredentials derives the full replacement credential set for a new
// password: fresh salt, verify hash, SRP verifier, and the doubly wrapped
// class-B key.
func (s *AccountService) buildCredentials(email string, authPW, wrapKb []byte, version cryptox.StretchVersion) (accounts.VerifierUpdate, error) {
	authSalt := common.GenerateRandByteArray(32)

	stretched, err := cryptox.ServerStretch(version, authPW, authSalt)
	if err != nil {
		return accounts.VerifierUpdate{}, err
	}
	defer common.WipeByteArray(stretched)

	verifyHash, err := cryptox.VerifyHash(stretched)
	if err != nil {
		return accounts.VerifierUpdate{}, common.ErrInternal
	}
	wrapKey, err := cryptox.WrapWrapKey(stretched)
	if err != nil {
		return accounts.VerifierUpdate{}, common.ErrInternal
	}

	return accounts.VerifierUpdate{
		AuthSalt:        authSalt,
		VerifyHash:      verifyHash,
		Verifier:        srp.ComputeVerifier(s.grp, email, authPW, authSalt),
		VerifierVersion: int(version),
		WrapWrapKb:      common.XorBytes(wrapKb, wrapKey),
	}, nil
}

// updateCredentials applies a credential replacement under optimistic
// concurrency: read the account, build the update against what was read,
// and retry on a version conflict up to the configured bound. Two racing
// writers both land, one after the other; a writer that keeps losing
// surfaces the conflict.
func (s *AccountService) updateCredentials(ctx context.Context, uid string, build func(*models.Account) (accounts.VerifierUpdate, error)) error {
	repo := s.repomanager.Accounts(s.db)

	backoff := retry.WithMaxRetries(uint64(s.cfg.CASMaxAttempts), retry.NewConstant(10*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		account, err := repo.GetByUID(ctx, uid)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrUnknownAccount
			}
			return common.ErrInternal
		}

		upd, err := build(account)
		if err != nil {
			return err
		}

		err = repo.UpdateVerifierCAS(ctx, uid, account.Version, upd)
		if errors.Is(err, common.ErrVersionConflict) {
			return retry.RetryableError(err)
		}
		return err
	})
}
