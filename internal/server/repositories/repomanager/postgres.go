package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cofund/internal/dbx"
	"github.com/dmitrijs2005/cofund/internal/server/migrations"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/chain"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/contents"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/media"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/pending"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/stakes"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/users"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/wallet"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and runs
// the embedded goose migrations.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Wallet(db dbx.DBTX) wallet.Repository {
	return wallet.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Media(db dbx.DBTX) media.Repository {
	return media.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Contents(db dbx.DBTX) contents.Repository {
	return contents.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Stakes(db dbx.DBTX) stakes.Repository {
	return stakes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Pending(db dbx.DBTX) pending.Repository {
	return pending.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Chain(db dbx.DBTX) chain.Repository {
	return chain.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
