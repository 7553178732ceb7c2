package funding

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

// JoinResult is what RequestJoin produced. A founding join carries the new
// stake and its chain entry; any other join carries the pending request.
type JoinResult struct {
	Founded bool
	Request *models.PendingRequest
	Stake   *models.Stake
	Entry   *models.ChainEntry
}

// RequestJoin debits amount from the requester and either founds the pool,
// when the content has no stakes yet, or files a pending request that waits
// for a majority of current holders.
func (e *Engine) RequestJoin(ctx context.Context, contentID string, requester Identity, amount int64) (*JoinResult, error) {
	if amount <= 0 {
		return nil, common.ErrInvalidAmount
	}

	c, err := e.content(ctx, contentID)
	if err != nil {
		return nil, err
	}
	c, err = e.reconcile(ctx, c)
	if err != nil {
		return nil, err
	}

	requestID := newID()
	if _, err := e.repomanager.Wallet(e.db).Apply(ctx, holdRef(requestID), requester.ID, -amount); err != nil {
		return nil, storeErr(fmt.Errorf("hold funds: %w", err))
	}

	stakes, err := e.repomanager.Stakes(e.db).ListByContent(ctx, c.ID)
	if err != nil {
		return nil, e.releaseAfter(ctx, requestID, requester.ID, amount, storeErr(err))
	}

	if len(stakes) == 0 {
		res, err := e.found(ctx, c, requestID, requester, amount)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, common.ErrFingerprintConflict) {
			return nil, e.afterFailedFounding(ctx, requestID, requester.ID, amount, err)
		}
		// Someone else founded the pool first; the held funds back a
		// regular request instead.
		e.logger.Info(ctx, "pool founded concurrently, filing pending request",
			"content_id", c.ID, "request_id", requestID)
	}

	req := &models.PendingRequest{
		ID:             requestID,
		ContentID:      c.ID,
		RequesterID:    requester.ID,
		RequesterLabel: requester.Label,
		Amount:         amount,
		CreatedAt:      timeNow(),
		Approvals:      []string{},
		Status:         models.StatusPending,
	}
	if err := e.repomanager.Pending(e.db).Create(ctx, req); err != nil {
		return nil, e.releaseAfter(ctx, requestID, requester.ID, amount, storeErr(fmt.Errorf("create request: %w", err)))
	}

	e.logger.Info(ctx, "join request filed",
		"content_id", c.ID, "request_id", req.ID, "requester", requester.ID, "amount", amount)
	return &JoinResult{Request: req}, nil
}

func (e *Engine) found(ctx context.Context, c *models.Content, requestID string, requester Identity, amount int64) (*JoinResult, error) {
	entry, err := plan(c, nil, requestID, requester, amount, models.OutcomeFounded)
	if err != nil {
		return nil, err
	}
	entry, err = e.commit(ctx, entry)
	if err != nil {
		return nil, err
	}

	joiner, _ := entry.Joiner()
	stake := &models.Stake{
		ID:              joiner.StakeID,
		ContentID:       entry.ContentID,
		HolderID:        joiner.HolderID,
		HolderLabel:     joiner.HolderLabel,
		Amount:          joiner.Amount,
		AdmittedAt:      entry.Timestamp,
		OriginRequestID: entry.RequestID,
	}
	return &JoinResult{Founded: true, Stake: stake, Entry: entry}, nil
}

// afterFailedFounding releases the hold of a founding join that failed,
// unless its founded entry made it into the chain. Such an entry owns the
// held funds and reconcile finishes it on the next touch of the content.
func (e *Engine) afterFailedFounding(ctx context.Context, requestID, userID string, amount int64, cause error) error {
	_, err := e.repomanager.Chain(e.db).FindByRequest(ctx, requestID, models.OutcomeFounded)
	switch {
	case err == nil:
		e.logger.Warn(ctx, "founding entry recorded but not applied",
			"request_id", requestID, "user_id", userID, "error", cause)
		return cause
	case errors.Is(err, common.ErrorNotFound):
		return e.releaseAfter(ctx, requestID, userID, amount, cause)
	default:
		e.logger.Error(ctx, "founding outcome unknown, hold kept",
			"request_id", requestID, "user_id", userID, "amount", amount, "error", err)
		return cause
	}
}

// releaseAfter returns held funds when a join fails after the hold. The
// original error is returned either way.
func (e *Engine) releaseAfter(ctx context.Context, requestID, userID string, amount int64, cause error) error {
	if _, err := e.repomanager.Wallet(e.db).Apply(ctx, releaseRef(requestID), userID, amount); err != nil {
		e.logger.Error(ctx, "release after failed join",
			"request_id", requestID, "user_id", userID, "amount", amount, "error", err)
	}
	return cause
}
