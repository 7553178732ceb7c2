package stakes

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate_Idempotent(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	s := &models.Stake{ID: "s1", ContentID: "c1", HolderID: "u3", HolderLabel: "u3@x", Amount: 50, AdmittedAt: now, OriginRequestID: "r1"}
	q := `(?s)^INSERT\s+INTO\s+stakes\b.*ON\s+CONFLICT\s+DO\s+NOTHING$`

	mock.ExpectExec(q).WithArgs("s1", "c1", "u3", "u3@x", int64(50), now, int64(0), "r1").WillReturnResult(sqlmock.NewResult(0, 1))
	created, err := repo.Create(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, created)

	mock.ExpectExec(q).WillReturnResult(sqlmock.NewResult(0, 0))
	created, err = repo.Create(context.Background(), s)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestListByContent(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	cols := []string{"id", "content_id", "holder_id", "holder_label", "amount", "admitted_at", "accrued_dividend", "origin_request_id"}

	mock.ExpectQuery(`FROM\s+stakes\s+WHERE\s+content_id\s*=\s*\$1\s+ORDER\s+BY\s+admitted_at,\s*id$`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("s1", "c1", "u1", "u1@x", int64(100), now, int64(25), "r0").
			AddRow("s2", "c1", "u2", "u2@x", int64(100), now, int64(25), "r1"))

	list, err := repo.ListByContent(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(25), list[1].AccruedDividend)
}

func TestAddDividend(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	q := `(?s)^\s*WITH\s+upd\s+AS\s*\(\s*UPDATE\s+stakes\b.*INSERT\s+INTO\s+dividend_credits\b`
	existsQ := `SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+dividend_credits\s+WHERE\s+ref\s*=\s*\$1\)`

	mock.ExpectExec(q).WithArgs("div:r1:s1", "s1", int64(25)).WillReturnResult(sqlmock.NewResult(0, 1))
	applied, err := repo.AddDividend(context.Background(), "div:r1:s1", "s1", 25)
	require.NoError(t, err)
	assert.True(t, applied)

	mock.ExpectExec(q).WithArgs("div:r1:s1", "s1", int64(25)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(existsQ).WithArgs("div:r1:s1").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	applied, err = repo.AddDividend(context.Background(), "div:r1:s1", "s1", 25)
	require.NoError(t, err)
	assert.False(t, applied)

	mock.ExpectExec(q).WillReturnError(&pgconn.PgError{Code: "23505"})
	applied, err = repo.AddDividend(context.Background(), "div:r1:s1", "s1", 25)
	require.NoError(t, err)
	assert.False(t, applied)

	mock.ExpectExec(q).WithArgs("div:r1:gone", "gone", int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(existsQ).WithArgs("div:r1:gone").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	_, err = repo.AddDividend(context.Background(), "div:r1:gone", "gone", 5)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
