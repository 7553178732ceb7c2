package funding

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cofund/internal/integrity"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

// ListEligiblePending returns the pending requests identity can still vote
// on: on content it holds a stake in, not its own, not yet approved by it.
func (e *Engine) ListEligiblePending(ctx context.Context, identity Identity) ([]models.PendingRequest, error) {
	held, err := e.repomanager.Stakes(e.db).ListByHolder(ctx, identity.ID)
	if err != nil {
		return nil, storeErr(err)
	}

	seen := make(map[string]struct{})
	var out []models.PendingRequest
	for _, s := range held {
		if _, ok := seen[s.ContentID]; ok {
			continue
		}
		seen[s.ContentID] = struct{}{}

		reqs, err := e.repomanager.Pending(e.db).ListByContent(ctx, s.ContentID, models.StatusPending)
		if err != nil {
			return nil, storeErr(err)
		}
		for _, r := range reqs {
			if r.RequesterID == identity.ID || r.HasApproved(identity.ID) {
				continue
			}
			out = append(out, r)
		}
	}
	return out, nil
}

// ListMyPending returns every request filed by identity, whatever its status.
func (e *Engine) ListMyPending(ctx context.Context, identity Identity) ([]models.PendingRequest, error) {
	reqs, err := e.repomanager.Pending(e.db).ListByRequester(ctx, identity.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	return reqs, nil
}

func (e *Engine) ListStakes(ctx context.Context, contentID string) ([]models.Stake, error) {
	if _, err := e.content(ctx, contentID); err != nil {
		return nil, err
	}
	stakes, err := e.repomanager.Stakes(e.db).ListByContent(ctx, contentID)
	if err != nil {
		return nil, storeErr(err)
	}
	return stakes, nil
}

func (e *Engine) GetChain(ctx context.Context, contentID string) ([]models.ChainEntry, error) {
	if _, err := e.content(ctx, contentID); err != nil {
		return nil, err
	}
	entries, err := e.repomanager.Chain(e.db).List(ctx, contentID)
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

// ExpectedFingerprint is the fingerprint the content will carry once the
// request is admitted on top of the current stakes.
func (e *Engine) ExpectedFingerprint(ctx context.Context, requestID string) (string, error) {
	req, err := e.request(ctx, requestID)
	if err != nil {
		return "", err
	}
	c, err := e.content(ctx, req.ContentID)
	if err != nil {
		return "", err
	}
	stakes, err := e.repomanager.Stakes(e.db).ListByContent(ctx, c.ID)
	if err != nil {
		return "", storeErr(err)
	}

	fp, err := integrity.Expected(c.Fingerprintable(), models.Holdings(stakes),
		integrity.Holding{HolderLabel: req.RequesterLabel, Amount: req.Amount})
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return fp, nil
}

// Divergence compares the authoritative fingerprint of a content item with
// the one a viewer has cached.
func (e *Engine) Divergence(ctx context.Context, contentID, cached string) (integrity.Divergence, string, error) {
	c, err := e.content(ctx, contentID)
	if err != nil {
		return 0, "", err
	}
	return integrity.Detect(c.LatestFingerprint, cached), c.LatestFingerprint, nil
}

// Portfolio summarises the wallet and positions of who.
func (e *Engine) Portfolio(ctx context.Context, who Identity) (*models.Portfolio, error) {
	cash, err := e.repomanager.Wallet(e.db).Balance(ctx, who.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	stakes, err := e.repomanager.Stakes(e.db).ListByHolder(ctx, who.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	reqs, err := e.repomanager.Pending(e.db).ListByRequester(ctx, who.ID)
	if err != nil {
		return nil, storeErr(err)
	}

	p := &models.Portfolio{Cash: cash, Stakes: stakes}
	for _, s := range stakes {
		p.TotalInvested += s.Amount
		p.TotalDividend += s.AccruedDividend
	}
	for _, r := range reqs {
		if r.Status == models.StatusPending {
			p.Pending = append(p.Pending, r)
		}
	}
	return p, nil
}
