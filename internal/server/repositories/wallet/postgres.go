package wallet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Open(ctx context.Context, userID string) error {
	query := `INSERT INTO wallet_balances (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Balance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.db.QueryRowContext(ctx, `SELECT balance FROM wallet_balances WHERE user_id = $1`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return balance, nil
}

// Apply updates the balance and records the movement in one statement, so
// both happen or neither does.
func (r *PostgresRepository) Apply(ctx context.Context, ref, userID string, amount int64) (bool, error) {
	query := `
		WITH upd AS (
			UPDATE wallet_balances SET balance = balance + $3
			WHERE user_id = $2 AND balance + $3 >= 0
			  AND NOT EXISTS (SELECT 1 FROM wallet_movements WHERE ref = $1)
			RETURNING user_id
		)
		INSERT INTO wallet_movements (ref, user_id, amount)
		SELECT $1, user_id, $3 FROM upd
	`
	res, err := r.db.ExecContext(ctx, query, ref, userID, amount)
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

	done, err := r.HasMovement(ctx, ref)
	if err != nil {
		return false, err
	}
	if done {
		return false, nil
	}
	if amount < 0 {
		return false, common.ErrInsufficientFunds
	}
	return false, common.ErrorNotFound
}

func (r *PostgresRepository) HasMovement(ctx context.Context, ref string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM wallet_movements WHERE ref = $1)`, ref).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}
