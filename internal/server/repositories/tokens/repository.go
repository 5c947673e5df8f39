// Package tokens provides the token store: records are keyed by
// (kind, public id), sub-keys are never persisted, deletes are idempotent,
// and a whole account's tokens can be dropped in one cascade.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/keywarden/internal/server/models"
)

type Repository interface {
	Put(ctx context.Context, record *models.TokenRecord) error

	// Get returns the record or common.ErrNotFound.
	Get(ctx context.Context, kind, id string) (*models.TokenRecord, error)

	// Delete removes a record; deleting an absent record is a no-op.
	Delete(ctx context.Context, kind, id string) error

	// DeleteAllForAccount drops every token of every kind for uid. Used
	// when a password reset invalidates all derived credentials at once.
	DeleteAllForAccount(ctx context.Context, uid string) error

	// SetVerified clears the pending verification id on a session record.
	SetVerified(ctx context.Context, kind, id string) error

	// FindByVerificationCode locates uid's pending record matching code,
	// or common.ErrNotFound.
	FindByVerificationCode(ctx context.Context, uid, code string) (*models.TokenRecord, error)

	// UpdateTries stores a new retry budget on a forgot-password record.
	UpdateTries(ctx context.Context, kind, id string, tries int) error
}
