// Package contents stores co-fundable content items.
package contents

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Content) error
	Get(ctx context.Context, id string) (*models.Content, error)
	// List returns all content items, newest first.
	List(ctx context.Context) ([]models.Content, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Content, error)
	// SwapFingerprint sets the latest fingerprint to next only if it is still
	// prev. It reports whether the swap happened.
	SwapFingerprint(ctx context.Context, id, prev, next string) (bool, error)
}
