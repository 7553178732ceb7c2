// Package funding is the approval, settlement and integrity-chain engine.
//
// Every store write is committed on its own. Settlement safety comes from
// the chain append, which is a compare-and-swap on the chain head: only one
// settlement built from a given state can be appended, and the appended
// entry is the settlement log that later idempotent steps replay from.
package funding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/logging"
	"github.com/dmitrijs2005/cofund/internal/server/models"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var (
	timeNow = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
	newID   = uuid.NewString
)

// Identity is the authenticated caller. Label is the human-readable name
// recorded on stakes and hashed into fingerprints.
type Identity struct {
	ID    string
	Label string
}

type Engine struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewEngine(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *Engine {
	return &Engine{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "funding"),
	}
}

// storeErr passes domain sentinels through and classifies everything else
// as a store outage.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		common.ErrorNotFound,
		common.ErrorAlreadyExists,
		common.ErrInsufficientFunds,
		common.ErrAlreadyTerminal,
		common.ErrFingerprintConflict,
		common.ErrNotEligible,
		common.ErrNotOldestPending,
		common.ErrDivergence,
		common.ErrInvalidAmount,
		common.ErrStoreUnavailable,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
}

func holdRef(requestID string) string    { return "hold:" + requestID }
func releaseRef(requestID string) string { return "release:" + requestID }
func dividendRef(requestID, stakeID string) string {
	return "div:" + requestID + ":" + stakeID
}

func (e *Engine) content(ctx context.Context, id string) (*models.Content, error) {
	c, err := e.repomanager.Contents(e.db).Get(ctx, id)
	if err != nil {
		return nil, storeErr(fmt.Errorf("content %s: %w", id, err))
	}
	return c, nil
}

func (e *Engine) request(ctx context.Context, id string) (*models.PendingRequest, error) {
	r, err := e.repomanager.Pending(e.db).Get(ctx, id)
	if err != nil {
		return nil, storeErr(fmt.Errorf("request %s: %w", id, err))
	}
	return r, nil
}

// lastSettlement returns the newest founded or approved entry of a chain.
func lastSettlement(entries []models.ChainEntry) *models.ChainEntry {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Outcome != models.OutcomeRejected {
			return &entries[i]
		}
	}
	return nil
}

// reconcile finishes a settlement whose chain entry was appended but whose
// effects were not all applied, and returns the content as it stands after.
func (e *Engine) reconcile(ctx context.Context, c *models.Content) (*models.Content, error) {
	entries, err := e.repomanager.Chain(e.db).List(ctx, c.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	last := lastSettlement(entries)
	if last == nil {
		return c, nil
	}

	incomplete := c.LatestFingerprint != last.NewFingerprint
	if !incomplete && last.Outcome == models.OutcomeApproved {
		req, err := e.request(ctx, last.RequestID)
		if err != nil {
			return nil, err
		}
		incomplete = req.Status == models.StatusPending
	}
	if !incomplete {
		return c, nil
	}

	e.logger.Warn(ctx, "resuming incomplete settlement",
		"content_id", c.ID, "request_id", last.RequestID, "seq", last.Seq)
	if err := e.apply(ctx, last); err != nil {
		return nil, err
	}
	return e.content(ctx, c.ID)
}
