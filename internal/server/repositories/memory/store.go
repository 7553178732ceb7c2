// Package memory implements every server repository over process memory. The
// implementations follow the same conditional-write contracts as the Postgres
// ones and back the in-memory repository manager used in development and tests.
package memory

import (
	"sync"

	"github.com/dmitrijs2005/cofund/internal/server/models"
)

// Store holds all tables behind one mutex.
type Store struct {
	mu sync.Mutex

	users          map[string]*models.User
	usersByName    map[string]string
	refreshTokens  map[string]models.RefreshToken
	balances       map[string]int64
	movements      map[string]struct{}
	media          map[string]models.Media
	contents       map[string]*models.Content
	stakes         map[string]*models.Stake
	stakeOrigins   map[string]string
	dividendCreds  map[string]struct{}
	requests       map[string]*models.PendingRequest
	chains         map[string][]models.ChainEntry
	chainByRequest map[string]models.ChainEntry
}

func NewStore() *Store {
	return &Store{
		users:          make(map[string]*models.User),
		usersByName:    make(map[string]string),
		refreshTokens:  make(map[string]models.RefreshToken),
		balances:       make(map[string]int64),
		movements:      make(map[string]struct{}),
		media:          make(map[string]models.Media),
		contents:       make(map[string]*models.Content),
		stakes:         make(map[string]*models.Stake),
		stakeOrigins:   make(map[string]string),
		dividendCreds:  make(map[string]struct{}),
		requests:       make(map[string]*models.PendingRequest),
		chains:         make(map[string][]models.ChainEntry),
		chainByRequest: make(map[string]models.ChainEntry),
	}
}

func cloneRequest(r *models.PendingRequest) models.PendingRequest {
	c := *r
	c.Approvals = append([]string(nil), r.Approvals...)
	return c
}

func cloneEntry(e models.ChainEntry) models.ChainEntry {
	e.Stakes = append([]models.StakeSnapshot(nil), e.Stakes...)
	e.Dividends = append([]models.DividendDelta(nil), e.Dividends...)
	e.Approvals = append([]string(nil), e.Approvals...)
	return e
}
