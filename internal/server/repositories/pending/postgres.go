package pending

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
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

const selectColumns = `SELECT id, content_id, requester_id, requester_label, amount, created_at, approvals, status FROM pending_requests`

type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(row scanner) (*models.PendingRequest, error) {
	var (
		r         models.PendingRequest
		approvals []byte
		status    string
	)
	if err := row.Scan(&r.ID, &r.ContentID, &r.RequesterID, &r.RequesterLabel, &r.Amount,
		&r.CreatedAt, &approvals, &status); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(approvals, &r.Approvals); err != nil {
		return nil, fmt.Errorf("decode approvals: %w", err)
	}
	r.Status = models.RequestStatus(status)
	return &r, nil
}

func (p *PostgresRepository) Create(ctx context.Context, r *models.PendingRequest) error {
	approvals, err := json.Marshal(nonNil(r.Approvals))
	if err != nil {
		return err
	}
	query := `
		INSERT INTO pending_requests (id, content_id, requester_id, requester_label, amount, created_at, approvals, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = p.db.ExecContext(ctx, query,
		r.ID, r.ContentID, r.RequesterID, r.RequesterLabel, r.Amount, r.CreatedAt, approvals, string(r.Status))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (p *PostgresRepository) Get(ctx context.Context, id string) (*models.PendingRequest, error) {
	r, err := scanRequest(p.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r, nil
}

func (p *PostgresRepository) ListByContent(ctx context.Context, contentID string, status models.RequestStatus) ([]models.PendingRequest, error) {
	return p.query(ctx, selectColumns+` WHERE content_id = $1 AND status = $2 ORDER BY created_at, id`, contentID, string(status))
}

func (p *PostgresRepository) ListByRequester(ctx context.Context, requesterID string) ([]models.PendingRequest, error) {
	return p.query(ctx, selectColumns+` WHERE requester_id = $1 ORDER BY created_at, id`, requesterID)
}

// AddApproval appends in a single conditional UPDATE so concurrent approvals
// of the same request never lose each other.
func (p *PostgresRepository) AddApproval(ctx context.Context, id, approverID string) ([]string, bool, error) {
	query := `
		UPDATE pending_requests
		SET approvals = approvals || jsonb_build_array($2::text)
		WHERE id = $1 AND status = 'pending'
		  AND NOT (approvals @> jsonb_build_array($2::text))
		RETURNING approvals
	`
	var raw []byte
	err := p.db.QueryRowContext(ctx, query, id, approverID).Scan(&raw)
	if err == nil {
		var approvals []string
		if err := json.Unmarshal(raw, &approvals); err != nil {
			return nil, false, fmt.Errorf("decode approvals: %w", err)
		}
		return approvals, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	r, err := p.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if r.Status != models.StatusPending {
		return nil, false, common.ErrAlreadyTerminal
	}
	return r.Approvals, false, nil
}

func (p *PostgresRepository) SetStatus(ctx context.Context, id string, from, to models.RequestStatus) (bool, error) {
	res, err := p.db.ExecContext(ctx, `UPDATE pending_requests SET status = $3 WHERE id = $1 AND status = $2`,
		id, string(from), string(to))
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

func (p *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.PendingRequest, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.PendingRequest
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
