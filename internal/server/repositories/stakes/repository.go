// Package stakes is the stakeholder ledger: confirmed stakes per content item.
package stakes

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type Repository interface {
	// Create inserts the stake unless a stake with the same ID or origin
	// request exists; created reports whether a row was inserted.
	Create(ctx context.Context, s *models.Stake) (created bool, err error)
	// ListByContent returns stakes ordered by admission time, then id.
	ListByContent(ctx context.Context, contentID string) ([]models.Stake, error)
	ListByHolder(ctx context.Context, holderID string) ([]models.Stake, error)
	// AddDividend increases a stake's accrued dividend once per ref.
	AddDividend(ctx context.Context, ref, stakeID string, amount int64) (applied bool, err error)
}
