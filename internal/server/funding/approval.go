package funding

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

// ApprovalResult reports the approval count after an Approve call and, when
// the approval reached the majority, the settlement entry.
type ApprovalResult struct {
	Request   *models.PendingRequest
	Approvals int
	Required  int
	Settled   bool
	Entry     *models.ChainEntry
}

// Approve records approver's vote on a pending request. observed is the
// fingerprint the approver has cached for the content; a non-empty value
// that differs from the authoritative one refuses the vote with
// ErrDivergence.
func (e *Engine) Approve(ctx context.Context, requestID string, approver Identity, observed string) (*ApprovalResult, error) {
	req, err := e.request(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.StatusPending {
		return nil, common.ErrAlreadyTerminal
	}
	if _, err := e.repomanager.Chain(e.db).FindByRequest(ctx, req.ID, models.OutcomeRejected); err == nil {
		return nil, common.ErrAlreadyTerminal
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, storeErr(err)
	}

	c, err := e.content(ctx, req.ContentID)
	if err != nil {
		return nil, err
	}
	if c, err = e.reconcile(ctx, c); err != nil {
		return nil, err
	}
	if observed != "" && observed != c.LatestFingerprint {
		e.logger.Warn(ctx, "approval blocked by fingerprint divergence",
			"content_id", c.ID, "request_id", req.ID, "approver", approver.ID,
			"observed", observed, "authoritative", c.LatestFingerprint)
		return nil, common.ErrDivergence
	}

	stakes, err := e.repomanager.Stakes(e.db).ListByContent(ctx, c.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !models.HasHolder(stakes, approver.ID) || approver.ID == req.RequesterID || req.HasApproved(approver.ID) {
		return nil, common.ErrNotEligible
	}

	pending, err := e.repomanager.Pending(e.db).ListByContent(ctx, c.ID, models.StatusPending)
	if err != nil {
		return nil, storeErr(err)
	}
	if pending, err = e.finishClaimedRejections(ctx, pending); err != nil {
		return nil, err
	}
	if !containsRequest(pending, req.ID) {
		return nil, common.ErrAlreadyTerminal
	}
	if pending[0].ID != req.ID {
		return nil, common.ErrNotOldestPending
	}

	approvals, added, err := e.repomanager.Pending(e.db).AddApproval(ctx, req.ID, approver.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !added {
		return nil, common.ErrNotEligible
	}
	req.Approvals = approvals

	res := &ApprovalResult{
		Request:   req,
		Approvals: len(approvals),
		Required:  RequiredMajority(models.DistinctHolders(stakes)),
	}
	e.logger.Info(ctx, "approval recorded",
		"content_id", c.ID, "request_id", req.ID, "approver", approver.ID,
		"approvals", res.Approvals, "required", res.Required)
	if res.Approvals < res.Required {
		return res, nil
	}

	entry, err := e.settle(ctx, c, stakes, req, approver)
	if err != nil {
		return nil, err
	}
	req.Status = models.StatusApproved
	res.Settled = true
	res.Entry = entry
	return res, nil
}

// settle plans and commits the settlement that admits req.
func (e *Engine) settle(ctx context.Context, c *models.Content, stakes []models.Stake,
	req *models.PendingRequest, approver Identity) (*models.ChainEntry, error) {

	requester := Identity{ID: req.RequesterID, Label: req.RequesterLabel}
	entry, err := plan(c, stakes, req.ID, requester, req.Amount, models.OutcomeApproved)
	if err != nil {
		return nil, err
	}
	entry.Approvals = append([]string(nil), req.Approvals...)
	entry.ApprovedBy = approver.ID

	entry, err = e.commit(ctx, entry)
	if err != nil {
		if errors.Is(err, common.ErrFingerprintConflict) {
			e.logger.Warn(ctx, "settlement lost to a concurrent commit",
				"content_id", c.ID, "request_id", req.ID)
		}
		return nil, err
	}
	return entry, nil
}

// finishClaimedRejections completes the oldest pending requests whose
// rejected entry is already in the chain and drops them from pending.
func (e *Engine) finishClaimedRejections(ctx context.Context, pending []models.PendingRequest) ([]models.PendingRequest, error) {
	for len(pending) > 0 {
		head := &pending[0]
		_, err := e.repomanager.Chain(e.db).FindByRequest(ctx, head.ID, models.OutcomeRejected)
		if errors.Is(err, common.ErrorNotFound) {
			break
		}
		if err != nil {
			return nil, storeErr(err)
		}
		e.logger.Warn(ctx, "finishing interrupted rejection",
			"content_id", head.ContentID, "request_id", head.ID)
		if _, _, err := e.completeRejection(ctx, head, ""); err != nil {
			return nil, err
		}
		pending = pending[1:]
	}
	return pending, nil
}

func containsRequest(list []models.PendingRequest, id string) bool {
	for _, r := range list {
		if r.ID == id {
			return true
		}
	}
	return false
}
