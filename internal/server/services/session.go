package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/dbx"
	"github.com/dmitrijs2005/keywarden/internal/server/config"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/keywarden/internal/token"
)

// SessionService owns the bearer-token surface: trading an auth token for a
// session, releasing account keys, and session teardown.
type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cfg         *config.Config
	mailer      Mailer
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, mailer Mailer) *SessionService {
	return &SessionService{db: db, repomanager: m, cfg: cfg, mailer: mailer}
}

// SessionResult is the sealed outcome of trading an auth token: the
// key-fetch and session wire forms travel inside a bundle only the auth
// token holder can open. Verified reports whether the session still awaits
// an email confirmation.
type SessionResult struct {
	UID      string
	Sealed   []byte
	Verified bool
}

// CreateSession consumes an auth token and mints the key-fetch/session
// pair, sealed to the auth token's keys. The auth token is single use:
// it is destroyed before the new credentials exist, so a replayed wire
// form finds nothing.
func (s *SessionService) CreateSession(ctx context.Context, authWire []byte) (*SessionResult, error) {
	tokenRepo := s.repomanager.Tokens(s.db)

	authToken, record, err := lookupToken(ctx, tokenRepo, token.KindAuth, authWire)
	if err != nil {
		return nil, err
	}

	var result *SessionResult
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tokens(tx)
		if err := repo.Delete(ctx, authToken.Kind.StoreName(), authToken.IDHex()); err != nil {
			return err
		}

		pair, err := mintSessionPair(ctx, tx, s.repomanager, s.cfg, s.mailer, record.UID)
		if err != nil {
			return err
		}

		sealed, err := authToken.BundleTokens(pair.keyFetch, pair.session)
		if err != nil {
			return err
		}

		result = &SessionResult{UID: record.UID, Sealed: sealed, Verified: pair.verified}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FetchKeys consumes a key-fetch token and returns the class keys kA and
// wrapWrapKb sealed to the token's own keys. Keys are withheld until the
// account's email is verified, and the token is destroyed before the bundle
// is built: a token is spent even if the response is lost.
func (s *SessionService) FetchKeys(ctx context.Context, keyFetchWire []byte) ([]byte, error) {
	tokenRepo := s.repomanager.Tokens(s.db)

	t, record, err := lookupToken(ctx, tokenRepo, token.KindKeyFetch, keyFetchWire)
	if err != nil {
		return nil, err
	}

	account, err := s.repomanager.Accounts(s.db).GetByUID(ctx, record.UID)
	if err != nil {
		return nil, common.ErrInternal
	}
	if !account.EmailVerified {
		return nil, common.ErrUnverifiedAccount
	}

	if err := tokenRepo.Delete(ctx, t.Kind.StoreName(), t.IDHex()); err != nil {
		return nil, common.ErrInternal
	}

	sealed, err := t.BundleAccountKeys(account.KA, account.WrapWrapKb)
	if err != nil {
		return nil, common.ErrInternal
	}
	return sealed, nil
}

// CheckSession resolves a presented session wire form to its stored record.
// Request interceptors use it to authenticate calls carrying a session.
func (s *SessionService) CheckSession(ctx context.Context, wireHex string) (*models.TokenRecord, error) {
	t, err := token.ReconstructHex(token.KindSession, wireHex)
	if err != nil {
		return nil, err
	}

	record, err := s.repomanager.Tokens(s.db).Get(ctx, t.Kind.StoreName(), t.IDHex())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrInternal
	}
	return record, nil
}

// DestroySession revokes one session. Destroying an already absent session
// succeeds, so clients can retry teardown safely.
func (s *SessionService) DestroySession(ctx context.Context, sessionWire []byte) error {
	t, err := token.Reconstruct(token.KindSession, sessionWire)
	if err != nil {
		return err
	}
	return s.repomanager.Tokens(s.db).Delete(ctx, t.Kind.StoreName(), t.IDHex())
}
