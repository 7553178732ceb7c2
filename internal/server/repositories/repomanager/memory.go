package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cofund/internal/dbx"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/chain"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/contents"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/media"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/memory"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/pending"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/stakes"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/users"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/wallet"
)

// InMemoryRepositoryManager serves every repository from one memory.Store.
// The db handle passed to the factories is ignored, and a nil *sql.DB is
// fine everywhere a manager is used.
type InMemoryRepositoryManager struct {
	store *memory.Store
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{store: memory.NewStore()}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.store.Users() }

func (m *InMemoryRepositoryManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return m.store.RefreshTokens()
}

func (m *InMemoryRepositoryManager) Wallet(dbx.DBTX) wallet.Repository { return m.store.Wallet() }

func (m *InMemoryRepositoryManager) Media(dbx.DBTX) media.Repository { return m.store.Media() }

func (m *InMemoryRepositoryManager) Contents(dbx.DBTX) contents.Repository {
	return m.store.Contents()
}

func (m *InMemoryRepositoryManager) Stakes(dbx.DBTX) stakes.Repository { return m.store.Stakes() }

func (m *InMemoryRepositoryManager) Pending(dbx.DBTX) pending.Repository { return m.store.Pending() }

func (m *InMemoryRepositoryManager) Chain(dbx.DBTX) chain.Repository { return m.store.Chain() }
