package contents

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "title", "body", "type", "media_url", "created_at", "author_id", "author_label", "latest_fingerprint"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	c := &models.Content{ID: "c1", Title: "Song", Type: "music", CreatedAt: now, AuthorID: "u1", AuthorLabel: "u1@x"}

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+contents\b.*VALUES\s*\(\$1,.*\$9\)$`).
		WithArgs("c1", "Song", "", "music", "", now, "u1", "u1@x", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), c))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	q := `^SELECT\s+id,.*latest_fingerprint\s+FROM\s+contents\s+WHERE\s+id\s*=\s*\$1$`

	mock.ExpectQuery(q).WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("c1", "Song", "lyrics", "music", "", now, "u1", "u1@x", "abc"))
	c, err := repo.Get(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "abc", c.LatestFingerprint)
	assert.Equal(t, "u1@x", c.AuthorLabel)

	mock.ExpectQuery(q).WithArgs("nope").WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM\s+contents\s+ORDER\s+BY\s+created_at\s+DESC,\s*id$`).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("c2", "B", "", "text", "", now, "u2", "u2@x", "").
			AddRow("c1", "A", "", "text", "", now.Add(-time.Hour), "u1", "u1@x", "ff"))
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c2", list[0].ID)

	mock.ExpectQuery(`WHERE\s+author_id\s*=\s*\$1`).WithArgs("u9").WillReturnError(errors.New("db down"))
	_, err = repo.ListByAuthor(context.Background(), "u9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestSwapFingerprint(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	q := `^UPDATE\s+contents\s+SET\s+latest_fingerprint\s*=\s*\$3\s+WHERE\s+id\s*=\s*\$1\s+AND\s+latest_fingerprint\s*=\s*\$2$`

	mock.ExpectExec(q).WithArgs("c1", "", "h1").WillReturnResult(sqlmock.NewResult(0, 1))
	ok, err := repo.SwapFingerprint(context.Background(), "c1", "", "h1")
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(q).WithArgs("c1", "", "h2").WillReturnResult(sqlmock.NewResult(0, 0))
	ok, err = repo.SwapFingerprint(context.Background(), "c1", "", "h2")
	require.NoError(t, err)
	assert.False(t, ok)
}
