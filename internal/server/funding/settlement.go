package funding

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/integrity"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

func snapshot(stakes []models.Stake) []models.StakeSnapshot {
	out := make([]models.StakeSnapshot, 0, len(stakes)+1)
	for _, s := range stakes {
		out = append(out, models.StakeSnapshot{
			StakeID: s.ID, HolderID: s.HolderID, HolderLabel: s.HolderLabel, Amount: s.Amount,
		})
	}
	return out
}

func snapshotHoldings(snap []models.StakeSnapshot) []integrity.Holding {
	h := make([]integrity.Holding, 0, len(snap))
	for _, s := range snap {
		h = append(h, integrity.Holding{HolderLabel: s.HolderLabel, Amount: s.Amount})
	}
	return h
}

// plan builds the chain entry that admits a new stake of amount for the
// requester on top of stakes. It writes nothing.
func plan(c *models.Content, stakes []models.Stake, requestID string, requester Identity, amount int64,
	outcome models.ChainOutcome) (*models.ChainEntry, error) {

	joiner := models.StakeSnapshot{
		StakeID: newID(), HolderID: requester.ID, HolderLabel: requester.Label, Amount: amount,
	}
	snap := append(snapshot(stakes), joiner)

	fp, err := integrity.Fingerprint(c.Fingerprintable(), snapshotHoldings(snap))
	if err != nil {
		return nil, fmt.Errorf("fingerprint: %w", err)
	}

	entry := &models.ChainEntry{
		ContentID:       c.ID,
		PrevFingerprint: c.LatestFingerprint,
		NewFingerprint:  fp,
		Outcome:         outcome,
		RequestID:       requestID,
		Timestamp:       timeNow(),
		ChainPayload: models.ChainPayload{
			Stakes:        snap,
			JoinerStakeID: joiner.StakeID,
			JoinerAmount:  amount,
		},
	}
	if outcome == models.OutcomeApproved {
		d := Distribute(stakes, amount)
		entry.Dividends = d.Deltas
		entry.DividendDust = d.Dust
	}
	return entry, nil
}

// commit appends a planned entry and applies it. If the append loses the
// race to an entry of the same request, that entry is applied instead and
// returned. A request rejected in the meantime yields ErrAlreadyTerminal;
// any other lost race surfaces as ErrFingerprintConflict.
func (e *Engine) commit(ctx context.Context, entry *models.ChainEntry) (*models.ChainEntry, error) {
	chainRepo := e.repomanager.Chain(e.db)
	err := chainRepo.Append(ctx, entry)
	if errors.Is(err, common.ErrFingerprintConflict) {
		existing, findErr := chainRepo.FindByRequest(ctx, entry.RequestID, entry.Outcome)
		if findErr != nil {
			if errors.Is(findErr, common.ErrorNotFound) {
				if _, rejErr := chainRepo.FindByRequest(ctx, entry.RequestID, models.OutcomeRejected); rejErr == nil {
					return nil, common.ErrAlreadyTerminal
				}
				e.logger.Info(ctx, "lost chain append race",
					"content_id", entry.ContentID, "request_id", entry.RequestID, "prev", entry.PrevFingerprint)
				return nil, common.ErrFingerprintConflict
			}
			return nil, storeErr(findErr)
		}
		entry = existing
	} else if err != nil {
		return nil, storeErr(err)
	}

	if err := e.apply(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// apply replays the effects of a founded or approved entry. Each step is
// idempotent, so apply can run any number of times for the same entry.
// The request is marked approved last, which keeps younger requests behind
// the oldest-pending gate until everything else is in place.
func (e *Engine) apply(ctx context.Context, entry *models.ChainEntry) error {
	stakeRepo := e.repomanager.Stakes(e.db)
	walletRepo := e.repomanager.Wallet(e.db)

	for _, d := range entry.Dividends {
		ref := dividendRef(entry.RequestID, d.StakeID)
		if _, err := stakeRepo.AddDividend(ctx, ref, d.StakeID, d.Amount); err != nil {
			return storeErr(fmt.Errorf("accrue dividend %s: %w", ref, err))
		}
		if _, err := walletRepo.Apply(ctx, ref, d.HolderID, d.Amount); err != nil {
			return storeErr(fmt.Errorf("credit dividend %s: %w", ref, err))
		}
	}

	joiner, ok := entry.Joiner()
	if !ok {
		return fmt.Errorf("%w: entry %d of %s has no joiner", common.ErrorInternal, entry.Seq, entry.ContentID)
	}
	_, err := stakeRepo.Create(ctx, &models.Stake{
		ID:              joiner.StakeID,
		ContentID:       entry.ContentID,
		HolderID:        joiner.HolderID,
		HolderLabel:     joiner.HolderLabel,
		Amount:          joiner.Amount,
		AdmittedAt:      entry.Timestamp,
		OriginRequestID: entry.RequestID,
	})
	if err != nil {
		return storeErr(fmt.Errorf("create stake: %w", err))
	}

	swapped, err := e.repomanager.Contents(e.db).SwapFingerprint(ctx, entry.ContentID, entry.PrevFingerprint, entry.NewFingerprint)
	if err != nil {
		return storeErr(fmt.Errorf("swap fingerprint: %w", err))
	}
	if !swapped {
		c, err := e.content(ctx, entry.ContentID)
		if err != nil {
			return err
		}
		if c.LatestFingerprint != entry.NewFingerprint {
			e.logger.Warn(ctx, "content fingerprint moved past settlement",
				"content_id", entry.ContentID, "request_id", entry.RequestID,
				"expected", entry.NewFingerprint, "actual", c.LatestFingerprint)
		}
	}

	if entry.Outcome == models.OutcomeApproved {
		ok, err := e.repomanager.Pending(e.db).SetStatus(ctx, entry.RequestID, models.StatusPending, models.StatusApproved)
		if err != nil {
			return storeErr(fmt.Errorf("mark approved: %w", err))
		}
		if !ok {
			req, err := e.request(ctx, entry.RequestID)
			if err != nil {
				return err
			}
			if req.Status != models.StatusApproved {
				e.logger.Error(ctx, "settled request has a conflicting status",
					"content_id", entry.ContentID, "request_id", entry.RequestID, "status", string(req.Status))
				return fmt.Errorf("%w: request %s is %s but the chain records its approval",
					common.ErrorInternal, entry.RequestID, req.Status)
			}
		}
	}

	e.logger.Info(ctx, "settlement applied",
		"content_id", entry.ContentID, "request_id", entry.RequestID, "outcome", string(entry.Outcome),
		"prev", entry.PrevFingerprint, "new", entry.NewFingerprint, "dust", entry.DividendDust)
	return nil
}

// ResumeSettlement re-applies whatever a request's chain entry describes.
// For a rejected request it completes the rejected entry, the status change
// and the release.
func (e *Engine) ResumeSettlement(ctx context.Context, requestID string) (*models.ChainEntry, error) {
	chainRepo := e.repomanager.Chain(e.db)

	for _, outcome := range []models.ChainOutcome{models.OutcomeApproved, models.OutcomeFounded} {
		entry, err := chainRepo.FindByRequest(ctx, requestID, outcome)
		if errors.Is(err, common.ErrorNotFound) {
			continue
		}
		if err != nil {
			return nil, storeErr(err)
		}
		if err := e.apply(ctx, entry); err != nil {
			return nil, err
		}
		return entry, nil
	}

	req, err := e.request(ctx, requestID)
	if err != nil {
		return nil, err
	}
	rejected := req.Status == models.StatusRejected
	if !rejected {
		_, err := chainRepo.FindByRequest(ctx, requestID, models.OutcomeRejected)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return nil, storeErr(err)
		}
		rejected = err == nil
	}
	if !rejected {
		return nil, fmt.Errorf("no settlement recorded for request %s: %w", requestID, common.ErrorNotFound)
	}
	entry, _, err := e.completeRejection(ctx, req, "")
	return entry, err
}
