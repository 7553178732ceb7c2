package contents

import (
	"context"
	"database/sql"
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

const selectColumns = `SELECT id, title, body, type, media_url, created_at, author_id, author_label, latest_fingerprint FROM contents`

func (r *PostgresRepository) Create(ctx context.Context, c *models.Content) error {
	query := `
		INSERT INTO contents (id, title, body, type, media_url, created_at, author_id, author_label, latest_fingerprint)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Title, c.Body, c.Type, c.MediaURL, c.CreatedAt, c.AuthorID, c.AuthorLabel, c.LatestFingerprint)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Content, error) {
	c := &models.Content{}
	err := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id).Scan(
		&c.ID, &c.Title, &c.Body, &c.Type, &c.MediaURL, &c.CreatedAt, &c.AuthorID, &c.AuthorLabel, &c.LatestFingerprint)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Content, error) {
	return r.query(ctx, selectColumns+` ORDER BY created_at DESC, id`)
}

func (r *PostgresRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Content, error) {
	return r.query(ctx, selectColumns+` WHERE author_id = $1 ORDER BY created_at DESC, id`, authorID)
}

func (r *PostgresRepository) SwapFingerprint(ctx context.Context, id, prev, next string) (bool, error) {
	query := `UPDATE contents SET latest_fingerprint = $3 WHERE id = $1 AND latest_fingerprint = $2`
	res, err := r.db.ExecContext(ctx, query, id, prev, next)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Content, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Content
	for rows.Next() {
		var c models.Content
		if err := rows.Scan(&c.ID, &c.Title, &c.Body, &c.Type, &c.MediaURL, &c.CreatedAt,
			&c.AuthorID, &c.AuthorLabel, &c.LatestFingerprint); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
