package funding

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

const rejectAppendAttempts = 3

// Reject terminates a pending request, records a rejected chain entry and
// releases the held amount. The requester may withdraw their own request;
// any holder of the content may reject it.
//
// The chain entry is the claim: a request gets at most one entry, so a
// rejection and a settlement of the same request cannot both succeed. A
// request whose settlement entry is already in the chain is finished
// instead and reported as ErrAlreadyTerminal. Repeating a rejection
// finishes whatever a failed attempt left behind and then reports
// ErrAlreadyTerminal too.
func (e *Engine) Reject(ctx context.Context, requestID string, rejecter Identity) (*models.ChainEntry, error) {
	req, err := e.request(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if rejecter.ID != req.RequesterID {
		stakes, err := e.repomanager.Stakes(e.db).ListByContent(ctx, req.ContentID)
		if err != nil {
			return nil, storeErr(err)
		}
		if !models.HasHolder(stakes, rejecter.ID) {
			return nil, common.ErrNotEligible
		}
	}

	if req.Status == models.StatusApproved {
		return nil, common.ErrAlreadyTerminal
	}

	entry, claimed, err := e.completeRejection(ctx, req, rejecter.ID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, common.ErrAlreadyTerminal
	}
	return entry, nil
}

// settlementEntry returns the approved entry of a request, or nil.
func (e *Engine) settlementEntry(ctx context.Context, requestID string) (*models.ChainEntry, error) {
	entry, err := e.repomanager.Chain(e.db).FindByRequest(ctx, requestID, models.OutcomeApproved)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return entry, nil
}

// completeRejection appends the rejected entry of req unless one exists,
// then marks the request rejected and releases the held amount. claimed
// reports whether this call appended the entry. When the request was
// settled instead, the settlement is applied and ErrAlreadyTerminal is
// returned without releasing anything.
func (e *Engine) completeRejection(ctx context.Context, req *models.PendingRequest, rejecterID string) (*models.ChainEntry, bool, error) {
	chainRepo := e.repomanager.Chain(e.db)

	var (
		entry   *models.ChainEntry
		claimed bool
	)
	for attempt := 0; entry == nil; attempt++ {
		if attempt == rejectAppendAttempts {
			return nil, false, common.ErrFingerprintConflict
		}

		existing, err := chainRepo.FindByRequest(ctx, req.ID, models.OutcomeRejected)
		if err == nil {
			entry = existing
			break
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, false, storeErr(err)
		}

		settled, err := e.settlementEntry(ctx, req.ID)
		if err != nil {
			return nil, false, err
		}
		if settled != nil {
			e.logger.Warn(ctx, "rejection lost to settlement",
				"content_id", req.ContentID, "request_id", req.ID, "seq", settled.Seq)
			if err := e.apply(ctx, settled); err != nil {
				return nil, false, err
			}
			return nil, false, common.ErrAlreadyTerminal
		}

		entries, err := chainRepo.List(ctx, req.ContentID)
		if err != nil {
			return nil, false, storeErr(err)
		}
		head := ""
		if n := len(entries); n > 0 {
			head = entries[n-1].NewFingerprint
		}
		var snap []models.StakeSnapshot
		if last := lastSettlement(entries); last != nil {
			snap = append(snap, last.Stakes...)
		}

		candidate := &models.ChainEntry{
			ContentID:       req.ContentID,
			PrevFingerprint: head,
			NewFingerprint:  head,
			Outcome:         models.OutcomeRejected,
			RequestID:       req.ID,
			Timestamp:       timeNow(),
			ChainPayload: models.ChainPayload{
				Stakes:     snap,
				Approvals:  append([]string(nil), req.Approvals...),
				RejectedBy: rejecterID,
			},
		}
		err = chainRepo.Append(ctx, candidate)
		if err == nil {
			entry, claimed = candidate, true
			break
		}
		if !errors.Is(err, common.ErrFingerprintConflict) {
			return nil, false, storeErr(err)
		}
	}

	if _, err := e.repomanager.Pending(e.db).SetStatus(ctx, req.ID, models.StatusPending, models.StatusRejected); err != nil {
		return nil, false, storeErr(fmt.Errorf("mark rejected: %w", err))
	}
	if _, err := e.repomanager.Wallet(e.db).Apply(ctx, releaseRef(req.ID), req.RequesterID, req.Amount); err != nil {
		return nil, false, storeErr(fmt.Errorf("release funds: %w", err))
	}

	if claimed {
		e.logger.Info(ctx, "join request rejected",
			"content_id", req.ContentID, "request_id", req.ID, "rejected_by", rejecterID,
			"released", req.Amount, "fingerprint", entry.NewFingerprint)
	}
	return entry, claimed, nil
}
