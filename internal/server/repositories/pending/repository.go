// Package pending stores join requests awaiting majority approval.
package pending

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.PendingRequest) error
	Get(ctx context.Context, id string) (*models.PendingRequest, error)
	// ListByContent returns requests of the content item in the given status,
	// oldest first (created_at, then id).
	ListByContent(ctx context.Context, contentID string, status models.RequestStatus) ([]models.PendingRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]models.PendingRequest, error)
	// AddApproval appends approverID to a pending request's approver set and
	// returns the resulting set. added is false when approverID was already
	// present. A request no longer pending yields common.ErrAlreadyTerminal.
	AddApproval(ctx context.Context, id, approverID string) (approvals []string, added bool, err error)
	// SetStatus moves the request from one status to another and reports
	// whether the row was still in from.
	SetStatus(ctx context.Context, id string, from, to models.RequestStatus) (bool, error)
}
