package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/keywarden/internal/common"
	"github.com/dmitrijs2005/keywarden/internal/dbx"
	"github.com/dmitrijs2005/keywarden/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
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

const accountColumns = `uid, email, email_verified, email_code, auth_salt,
	verify_hash, verifier, verifier_version, ka, wrap_wrap_kb, locked_at,
	version, created_at`

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (uid, email, email_verified, email_code, auth_salt,
			verify_hash, verifier, verifier_version, ka, wrap_wrap_kb)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING version, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		account.UID, account.Email, account.EmailVerified, account.EmailCode,
		account.AuthSalt, account.VerifyHash, account.Verifier,
		account.VerifierVersion, account.KA, account.WrapWrapKb,
	).Scan(&account.Version, &account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrAccountExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByUID(ctx context.Context, uid string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE uid = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, uid))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(
		&account.UID, &account.Email, &account.EmailVerified, &account.EmailCode,
		&account.AuthSalt, &account.VerifyHash, &account.Verifier,
		&account.VerifierVersion, &account.KA, &account.WrapWrapKb,
		&account.LockedAt, &account.Version, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *PostgresRepository) UpdateVerifierCAS(ctx context.Context, uid string, version int64, upd VerifierUpdate) error {
	query := `
		UPDATE accounts
		SET auth_salt = $1, verify_hash = $2, verifier = $3,
			verifier_version = $4, wrap_wrap_kb = $5, version = version + 1
		WHERE uid = $6 AND version = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		upd.AuthSalt, upd.VerifyHash, upd.Verifier, upd.VerifierVersion,
		upd.WrapWrapKb, uid, version)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrVersionConflict
	}
	return nil
}

func (r *PostgresRepository) SetEmailVerified(ctx context.Context, uid string) error {
	query := `UPDATE accounts SET email_verified = TRUE WHERE uid = $1`
	if _, err := r.db.ExecContext(ctx, query, uid); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetLocked(ctx context.Context, uid string, locked bool) error {
	query := `
		UPDATE accounts
		SET locked_at = CASE WHEN $1 THEN now() ELSE NULL END
		WHERE uid = $2
	`
	if _, err := r.db.ExecContext(ctx, query, locked, uid); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
