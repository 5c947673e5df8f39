// Package repomanager wires concrete repository implementations to database
// handles, so services can run any repository against either a *sql.DB or an
// open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/keywarden/internal/dbx"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/tokens"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Tokens(db dbx.DBTX) tokens.Repository
}
