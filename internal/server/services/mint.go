package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/dbx"
	"github.com/dmitrijs2005/keywarden/internal/server/config"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/keywarden/internal/token"
)

// mintToken creates a fresh token of the given kind for uid, persists its
// public record, and returns the token together with its wire form. The wire
// form leaves the process exactly once, in the response to the caller.
func mintToken(ctx context.Context, repo tokens.Repository, kind token.Kind, uid string) (*token.Token, []byte, error) {
	t, wire, err := token.Create(kind)
	if err != nil {
		return nil, nil, fmt.Errorf("error minting %s token: %w", kind.StoreName(), err)
	}

	record := &models.TokenRecord{
		ID:        t.IDHex(),
		UID:       uid,
		Kind:      kind.StoreName(),
		CreatedAt: time.Now(),
	}

	if err := repo.Put(ctx, record); err != nil {
		return nil, nil, fmt.Errorf("error storing %s token: %w", kind.StoreName(), err)
	}

	return t, wire, nil
}

// lookupToken reconstructs a presented wire form and resolves its stored
// record. An unknown id and a malformed wire form are indistinguishable to
// the caller: both come back as ErrInvalidToken.
func lookupToken(ctx context.Context, repo tokens.Repository, kind token.Kind, wire []byte) (*token.Token, *models.TokenRecord, error) {
	t, err := token.Reconstruct(kind, wire)
	if err != nil {
		return nil, nil, err
	}

	record, err := repo.Get(ctx, kind.StoreName(), t.IDHex())
	if err != nil {
		return nil, nil, common.ErrInvalidToken
	}

	return t, record, nil
}

// sessionPair is the credential pair every authentication path ends in: a
// key-fetch token for the class keys and a session token for everything
// else.
type sessionPair struct {
	keyFetch *token.Token
	session  *token.Token
	verified bool
}

// mintSessionPair issues a key-fetch/session token pair for uid. When the
// confirmation sampler selects the account, the session starts unverified
// and a confirmation code goes out to the account's email.
func mintSessionPair(ctx context.Context, tx dbx.DBTX, rm repomanager.RepositoryManager, cfg *config.Config, mailer Mailer, uid string) (*sessionPair, error) {
	repo := rm.Tokens(tx)

	keyFetch, _, err := mintToken(ctx, repo, token.KindKeyFetch, uid)
	if err != nil {
		return nil, err
	}

	session, _, err := token.Create(token.KindSession)
	if err != nil {
		return nil, common.ErrInternal
	}

	record := &models.TokenRecord{
		ID:        session.IDHex(),
		UID:       uid,
		Kind:      session.Kind.StoreName(),
		CreatedAt: time.Now(),
	}

	verified := true
	if requiresConfirmation(cfg, uid) {
		code, err := common.MakeRandHexString(16)
		if err != nil {
			return nil, common.ErrInternal
		}
		record.VerificationID = &code
		verified = false
	}

	if err := repo.Put(ctx, record); err != nil {
		return nil, fmt.Errorf("error storing session token: %w", err)
	}

	if record.VerificationID != nil {
		account, err := rm.Accounts(tx).GetByUID(ctx, uid)
		if err != nil {
			return nil, common.ErrInternal
		}
		if err := mailer.SendVerifyCode(ctx, account.Email, *record.VerificationID); err != nil {
			return nil, fmt.Errorf("error sending confirmation code: %w", err)
		}
	}

	return &sessionPair{keyFetch: keyFetch, session: session, verified: verified}, nil
}

// requiresConfirmation decides whether a freshly minted session must pass an
// email confirmation round trip before it counts as verified. The decision
// is a deterministic per-uid sample so one account always gets the same
// answer while the configured rate holds across the population.
func requiresConfirmation(cfg *config.Config, uid string) bool {
	if !cfg.ConfirmSessionsEnabled {
		return false
	}
	h := fnv.New32a()
	h.Write([]byte(uid))
	return h.Sum32()%100 < uint32(cfg.ConfirmSampleRate*100)
}
