// Package repomanager vends repository implementations bound to a database
// handle, so services can run the same code against *sql.DB or a *sql.Tx.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cofund/internal/dbx"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/chain"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/contents"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/media"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/pending"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/stakes"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/users"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/wallet"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Wallet(db dbx.DBTX) wallet.Repository
	Media(db dbx.DBTX) media.Repository
	Contents(db dbx.DBTX) contents.Repository
	Stakes(db dbx.DBTX) stakes.Repository
	Pending(db dbx.DBTX) pending.Repository
	Chain(db dbx.DBTX) chain.Repository
}
