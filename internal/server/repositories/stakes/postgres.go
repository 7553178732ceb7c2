package stakes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/dbx"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `SELECT id, content_id, holder_id, holder_label, amount, admitted_at, accrued_dividend, origin_request_id FROM stakes`

func (r *PostgresRepository) Create(ctx context.Context, s *models.Stake) (bool, error) {
	query := `
		INSERT INTO stakes (id, content_id, holder_id, holder_label, amount, admitted_at, accrued_dividend, origin_request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query,
		s.ID, s.ContentID, s.HolderID, s.HolderLabel, s.Amount, s.AdmittedAt, s.AccruedDividend, s.OriginRequestID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) ListByContent(ctx context.Context, contentID string) ([]models.Stake, error) {
	return r.query(ctx, selectColumns+` WHERE content_id = $1 ORDER BY admitted_at, id`, contentID)
}

func (r *PostgresRepository) ListByHolder(ctx context.Context, holderID string) ([]models.Stake, error) {
	return r.query(ctx, selectColumns+` WHERE holder_id = $1 ORDER BY admitted_at, id`, holderID)
}

// AddDividend bumps the stake and records the credit in one statement.
func (r *PostgresRepository) AddDividend(ctx context.Context, ref, stakeID string, amount int64) (bool, error) {
	query := `
		WITH upd AS (
			UPDATE stakes SET accrued_dividend = accrued_dividend + $3
			WHERE id = $2
			  AND NOT EXISTS (SELECT 1 FROM dividend_credits WHERE ref = $1)
			RETURNING id
		)
		INSERT INTO dividend_credits (ref, stake_id, amount)
		SELECT $1, id, $3 FROM upd
	`
	res, err := r.db.ExecContext(ctx, query, ref, stakeID, amount)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	if n == 1 {
		return true, nil
	}

	var exists bool
	err = r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM dividend_credits WHERE ref = $1)`, ref).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	if exists {
		return false, nil
	}
	return false, common.ErrorNotFound
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Stake, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Stake
	for rows.Next() {
		var s models.Stake
		if err := rows.Scan(&s.ID, &s.ContentID, &s.HolderID, &s.HolderLabel, &s.Amount,
			&s.AdmittedAt, &s.AccruedDividend, &s.OriginRequestID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
