// Package accounts provides the account store: lookup by email or uid,
// creation, verification flags, and CAS-guarded credential updates.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/keywarden/internal/server/models"
)

// VerifierUpdate is the credential set replaced atomically when a password
// changes or an account is reset.
type VerifierUpdate struct {
	AuthSalt        []byte
	VerifyHash      []byte
	Verifier        []byte
	VerifierVersion int
	WrapWrapKb      []byte
}

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByUID(ctx context.Context, uid string) (*models.Account, error)

	// UpdateVerifierCAS applies upd only if the stored version still equals
	// version, bumping it on success. A lost race yields
	// common.ErrVersionConflict; callers retry with a fresh read, bounded.
	UpdateVerifierCAS(ctx context.Context, uid string, version int64, upd VerifierUpdate) error

	SetEmailVerified(ctx context.Context, uid string) error
	SetLocked(ctx context.Context, uid string, locked bool) error
}
