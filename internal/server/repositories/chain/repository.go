// Package chain stores the append-only integrity chain of each content item.
package chain

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type Repository interface {
	// Append adds e to its content item's chain only if e.PrevFingerprint
	// equals the head's NewFingerprint ("" for an empty chain) and the
	// request has no entry yet, whatever its outcome. Otherwise it fails
	// with common.ErrFingerprintConflict. On success e.Seq is set.
	Append(ctx context.Context, e *models.ChainEntry) error
	// List returns the chain of a content item in append order.
	List(ctx context.Context, contentID string) ([]models.ChainEntry, error)
	// FindByRequest returns common.ErrorNotFound when the request has no
	// entry with that outcome.
	FindByRequest(ctx context.Context, requestID string, outcome models.ChainOutcome) (*models.ChainEntry, error)
}
