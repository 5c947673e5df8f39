package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/dbx"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Put(ctx context.Context, record *models.TokenRecord) error {
	query := `
		INSERT INTO tokens (id, uid, kind, verification_id, pass_code, tries, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query,
		record.ID, record.UID, record.Kind, record.VerificationID,
		record.PassCode, record.Tries, record.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, kind, id string) (*models.TokenRecord, error) {
	query := `
		SELECT id, uid, kind, created_at, verification_id, pass_code, tries, expires_at
		FROM tokens
		WHERE kind = $1 AND id = $2
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, kind, id))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.TokenRecord, error) {
	record := &models.TokenRecord{}
	err := row.Scan(
		&record.ID, &record.UID, &record.Kind, &record.CreatedAt,
		&record.VerificationID, &record.PassCode, &record.Tries, &record.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return record, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, kind, id string) error {
	query := `DELETE FROM tokens WHERE kind = $1 AND id = $2`
	if _, err := r.db.ExecContext(ctx, query, kind, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteAllForAccount(ctx context.Context, uid string) error {
	query := `DELETE FROM tokens WHERE uid = $1`
	if _, err := r.db.ExecContext(ctx, query, uid); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetVerified(ctx context.Context, kind, id string) error {
	query := `UPDATE tokens SET verification_id = NULL WHERE kind = $1 AND id = $2`
	if _, err := r.db.ExecContext(ctx, query, kind, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByVerificationCode(ctx context.Context, uid, code string) (*models.TokenRecord, error) {
	query := `
		SELECT id, uid, kind, created_at, verification_id, pass_code, tries, expires_at
		FROM tokens
		WHERE uid = $1 AND verification_id = $2
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, uid, code))
}

func (r *PostgresRepository) UpdateTries(ctx context.Context, kind, id string, tries int) error {
	query := `UPDATE tokens SET tries = $1 WHERE kind = $2 AND id = $3`
	if _, err := r.db.ExecContext(ctx, query, tries, kind, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
