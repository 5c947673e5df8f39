package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/cryptox"
	"github.com/dmitrijs2005/keywarden/internal/dbx"
	"github.com/dmitrijs2005/keywarden/internal/server/config"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/srpsessions"
	"github.com/dmitrijs2005/keywarden/internal/srp"
	"github.com/dmitrijs2005/keywarden/internal/token"
)

// AuthService runs the zero-knowledge SRP handshake. The password itself
// never crosses the wire in either direction; a successful exchange ends
// with an auth token sealed to the session's shared key.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cfg         *config.Config
	grp         *srp.Group
	sessions    srpsessions.Cache
	blocker     Blocker
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, sessions srpsessions.Cache, blocker Blocker) *AuthService {
	if blocker == nil {
		blocker = NoopBlocker{}
	}
	return &AuthService{
		db:          db,
		repomanager: m,
		cfg:         cfg,
		grp:         srp.Group2048(),
		sessions:    sessions,
		blocker:     blocker,
	}
}

// BeginResult is the server's opening move: the handshake id the client
// must echo back, the account's salt, the server public value B, and the
// stretch version the client needs to later unwrap its keys.
type BeginResult struct {
	SessionID       string
	Salt            []byte
	B               []byte
	VerifierVersion int
}

// CompleteResult carries the outcome of a finished handshake: the account
// uid and the auth token's wire form sealed to the shared key, so only the
// party that actually knew the password can open it.
type CompleteResult struct {
	UID         string
	SealedToken []byte
}

// Begin opens an SRP handshake for email. An unknown email still gets a
// well-formed response built from a throwaway verifier, so existence cannot
// be probed here; the handshake then fails at Complete exactly as a wrong
// password would.
func (s *AuthService) Begin(ctx context.Context, email string) (*BeginResult, error) {
	email = normalizeEmail(email)

	if err := s.blocker.Check(ctx, email, "srpBegin"); err != nil {
		return nil, err
	}

	var uid string
	var salt, verifier []byte
	verifierVersion := int(cryptox.StretchV2)

	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		uid = account.UID
		salt = account.AuthSalt
		verifier = account.Verifier
		verifierVersion = account.VerifierVersion
	case errors.Is(err, common.ErrNotFound):
		salt = common.GenerateRandByteArray(32)
		verifier = srp.ComputeVerifier(s.grp, email, common.GenerateRandByteArray(32), salt)
	default:
		return nil, common.ErrInternal
	}

	session, err := srp.NewServerSession(s.grp, verifier)
	if err != nil {
		return nil, common.ErrInternal
	}

	id := uuid.NewString()
	err = s.sessions.Put(ctx, &models.SRPSession{
		ID:        id,
		UID:       uid,
		Email:     email,
		Salt:      salt,
		Verifier:  verifier,
		Secret:    session.Secret(),
		CreatedAt: time.Now(),
	}, s.cfg.SRPSessionTTL)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &BeginResult{
		SessionID:       id,
		Salt:            salt,
		B:               session.B(),
		VerifierVersion: verifierVersion,
	}, nil
}

// Complete finishes a handshake. The cached session is consumed whichever
// way this ends: a failed proof cannot be retried against the same B, and
// two racing completions see exactly one winner. On success the minted auth
// token comes back sealed to the shared key.
func (s *AuthService) Complete(ctx context.Context, sessionID string, aPub, clientProof []byte) (*CompleteResult, error) {
	cached, err := s.sessions.TakeAndDelete(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnknownSession
		}
		return nil, common.ErrInternal
	}

	session, err := srp.RestoreServerSession(s.grp, cached.Verifier, cached.Secret)
	if err != nil {
		return nil, common.ErrInternal
	}

	sharedKey, err := session.Complete(aPub, clientProof)
	if err != nil {
		return nil, err
	}

	// A throwaway handshake for an unknown email proves nothing even when
	// the arithmetic checks out.
	if cached.UID == "" {
		return nil, common.ErrIncorrectPassword
	}

	account, err := s.repomanager.Accounts(s.db).GetByUID(ctx, cached.UID)
	if err != nil {
		return nil, common.ErrInternal
	}
	if account.LockedAt != nil {
		return nil, common.ErrAccountLocked
	}

	var authWire []byte
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, authWire, err = mintToken(ctx, s.repomanager.Tokens(tx), token.KindAuth, cached.UID)
		return err
	})
	if err != nil {
		return nil, common.ErrInternal
	}

	sealed, err := cryptox.SealWithKey(token.AuthFinishLabel, sharedKey, authWire)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &CompleteResult{UID: cached.UID, SealedToken: sealed}, nil
}
