package chain

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

const selectColumns = `SELECT content_id, seq, prev_hash, new_hash, outcome, request_id, payload, created_at FROM chain_entries`

// Append computes the next seq and checks the head in the same statement.
// Two writers racing on the same head collide on the (content_id, seq)
// primary key and the loser gets ErrFingerprintConflict.
func (r *PostgresRepository) Append(ctx context.Context, e *models.ChainEntry) error {
	payload, err := json.Marshal(e.ChainPayload)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO chain_entries (content_id, seq, prev_hash, new_hash, outcome, request_id, payload, created_at)
		SELECT $1, COALESCE(MAX(seq), 0) + 1, $2, $3, $4, $5, $6, $7
		FROM chain_entries WHERE content_id = $1
		HAVING COALESCE((SELECT new_hash FROM chain_entries WHERE content_id = $1 ORDER BY seq DESC LIMIT 1), '') = $2
		RETURNING seq
	`
	err = r.db.QueryRowContext(ctx, query,
		e.ContentID, e.PrevFingerprint, e.NewFingerprint, string(e.Outcome), e.RequestID, payload, e.Timestamp).Scan(&e.Seq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsUniqueViolation(err) {
			return common.ErrFingerprintConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, contentID string) ([]models.ChainEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` WHERE content_id = $1 ORDER BY seq`, contentID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.ChainEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) FindByRequest(ctx context.Context, requestID string, outcome models.ChainOutcome) (*models.ChainEntry, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE request_id = $1 AND outcome = $2`, requestID, string(outcome))
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*models.ChainEntry, error) {
	var (
		e       models.ChainEntry
		outcome string
		payload []byte
	)
	if err := row.Scan(&e.ContentID, &e.Seq, &e.PrevFingerprint, &e.NewFingerprint, &outcome,
		&e.RequestID, &payload, &e.Timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(payload, &e.ChainPayload); err != nil {
		return nil, fmt.Errorf("decode chain payload: %w", err)
	}
	e.Outcome = models.ChainOutcome(outcome)
	return &e, nil
}
