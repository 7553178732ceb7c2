// Package media stores metadata of blobs uploaded to object storage for
// content items. The bytes themselves live in S3.
package media

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Media) error
	// MarkUploaded flips a pending blob owned by ownerID to uploaded.
	// Unknown keys or foreign owners yield common.ErrorNotFound.
	MarkUploaded(ctx context.Context, storageKey, ownerID string) error
	Get(ctx context.Context, storageKey string) (*models.Media, error)
}
