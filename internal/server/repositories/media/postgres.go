package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/dbx"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

// PostgresRepository implements media storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Media) error {
	query := `INSERT INTO media (storage_key, owner_id, upload_status) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, m.StorageKey, m.OwnerID, m.UploadStatus); err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// MarkUploaded requires exactly one affected row. Marking an already
// uploaded blob again is accepted.
func (r *PostgresRepository) MarkUploaded(ctx context.Context, storageKey, ownerID string) error {
	query := `UPDATE media SET upload_status = $3 WHERE storage_key = $1 AND owner_id = $2`
	result, err := r.db.ExecContext(ctx, query, storageKey, ownerID, models.MediaUploaded)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch ra {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", ra)
	}
}

func (r *PostgresRepository) Get(ctx context.Context, storageKey string) (*models.Media, error) {
	query := `SELECT storage_key, owner_id, upload_status FROM media WHERE storage_key = $1`

	m := &models.Media{}
	if err := r.db.QueryRowContext(ctx, query, storageKey).Scan(&m.StorageKey, &m.OwnerID, &m.UploadStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}
