package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/cofund/internal/client/cache"
	"github.com/dmitrijs2005/cofund/internal/client/client"
	"github.com/dmitrijs2005/cofund/internal/client/models"
	"github.com/dmitrijs2005/cofund/internal/integrity"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func setupCache(t *testing.T) cache.FingerprintCache {
	t.Helper()
	c, err := cache.OpenBoltCache(filepath.Join(t.TempDir(), "fp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// fakeClient implements client.Client for service tests. Methods not
// overridden panic through the nil embedded interface.
type fakeClient struct {
	client.Client

	CloseErr    error
	RegisterErr error
	LogoutErr   error
	PingErr     error

	GetSaltRet []byte
	GetSaltErr error
	LoginErr   error

	LastRegisterUser string
	LastRegisterSalt []byte
	LastRegisterKey  []byte
	LastLoginUser    string
	LastLoginKey     []byte
	LogoutCalls      int

	// funding state
	content     *models.Content
	chain       []models.ChainEntry
	eligible    []models.PendingRequest
	expected    string
	joinResp    *models.JoinResult
	approveResp *models.ApproveResult
	resumeEntry *models.ChainEntry

	approveCalls int
	lastObserved string

	// content state
	mediaKey     string
	mediaURL     string
	marked       []string
	lastCreate   *models.NewContent
	presignedGet string
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, username string, salt []byte, key []byte) error {
	f.LastRegisterUser = username
	f.LastRegisterSalt = append([]byte(nil), salt...)
	f.LastRegisterKey = append([]byte(nil), key...)
	return f.RegisterErr
}

func (f *fakeClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	return append([]byte(nil), f.GetSaltRet...), f.GetSaltErr
}

func (f *fakeClient) Login(ctx context.Context, username string, key []byte) error {
	f.LastLoginUser = username
	f.LastLoginKey = append([]byte(nil), key...)
	return f.LoginErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) GetContent(ctx context.Context, contentID string) (*models.Content, error) {
	c := *f.content
	return &c, nil
}

func (f *fakeClient) GetChain(ctx context.Context, contentID string) ([]models.ChainEntry, error) {
	return f.chain, nil
}

func (f *fakeClient) ListEligiblePending(ctx context.Context) ([]models.PendingRequest, error) {
	return f.eligible, nil
}

func (f *fakeClient) ExpectedFingerprint(ctx context.Context, requestID string) (string, error) {
	return f.expected, nil
}

func (f *fakeClient) Divergence(ctx context.Context, contentID, cached string) (*models.Divergence, error) {
	auth := f.content.LatestFingerprint
	return &models.Divergence{State: integrity.Detect(auth, cached).String(), Authoritative: auth}, nil
}

func (f *fakeClient) Approve(ctx context.Context, requestID, observed string) (*models.ApproveResult, error) {
	f.approveCalls++
	f.lastObserved = observed
	return f.approveResp, nil
}

func (f *fakeClient) RequestJoin(ctx context.Context, contentID string, amount int64) (*models.JoinResult, error) {
	return f.joinResp, nil
}

func (f *fakeClient) ResumeSettlement(ctx context.Context, requestID string) (*models.ChainEntry, error) {
	return f.resumeEntry, nil
}

func (f *fakeClient) RequestMediaUpload(ctx context.Context) (string, string, error) {
	return f.mediaKey, f.mediaURL, nil
}

func (f *fakeClient) MarkMediaUploaded(ctx context.Context, key string) error {
	f.marked = append(f.marked, key)
	return nil
}

func (f *fakeClient) GetMediaURL(ctx context.Context, key string) (string, error) {
	return f.presignedGet, nil
}

func (f *fakeClient) CreateContent(ctx context.Context, in *models.NewContent) (*models.Content, error) {
	f.lastCreate = in
	return &models.Content{ID: "c-new", Title: in.Title, MediaURL: in.MediaURL}, nil
}

// fundedContent builds a content item with a founding entry by alice and,
// when admitted is set, a second entry admitting bob.
func fundedContent(t *testing.T, admitted bool) (*models.Content, []models.ChainEntry) {
	t.Helper()

	c := &models.Content{
		ID:          "c1",
		Title:       "Zine",
		Body:        "issue 1",
		Type:        "text",
		CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 6000, time.UTC),
		AuthorID:    "u1",
		AuthorLabel: "alice@example.com",
	}

	var chain []models.ChainEntry
	add := func(outcome string, stakes ...models.StakeSnapshot) {
		holdings := make([]integrity.Holding, 0, len(stakes))
		for _, s := range stakes {
			holdings = append(holdings, integrity.Holding{HolderLabel: s.HolderLabel, Amount: s.Amount})
		}
		fp, err := integrity.Fingerprint(fingerprintable(c), holdings)
		require.NoError(t, err)
		chain = append(chain, models.ChainEntry{
			Seq:             int64(len(chain) + 1),
			ContentID:       c.ID,
			PrevFingerprint: c.LatestFingerprint,
			NewFingerprint:  fp,
			Outcome:         outcome,
			Stakes:          stakes,
		})
		c.LatestFingerprint = fp
	}

	alice := models.StakeSnapshot{StakeID: "s1", HolderID: "u1", HolderLabel: "alice@example.com", Amount: 100}
	add("founded", alice)
	if admitted {
		add("approved", alice, models.StakeSnapshot{StakeID: "s2", HolderID: "u2", HolderLabel: "bob@example.com", Amount: 50})
	}
	return c, chain
}
