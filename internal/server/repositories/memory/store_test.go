package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet_ApplyIsIdempotentAndGuarded(t *testing.T) {
	ctx := context.Background()
	w := NewStore().Wallet()

	require.NoError(t, w.Open(ctx, "u1"))
	applied, err := w.Apply(ctx, "initial:u1", "u1", 100)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = w.Apply(ctx, "initial:u1", "u1", 100)
	require.NoError(t, err)
	assert.False(t, applied)

	_, err = w.Apply(ctx, "hold:r1", "u1", -101)
	assert.ErrorIs(t, err, common.ErrInsufficientFunds)

	b, err := w.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), b)

	done, err := w.HasMovement(ctx, "hold:r1")
	require.NoError(t, err)
	assert.False(t, done)
}

func TestChain_AppendChecksHead(t *testing.T) {
	ctx := context.Background()
	c := NewStore().Chain()

	first := &models.ChainEntry{ContentID: "c1", PrevFingerprint: "", NewFingerprint: "h1", Outcome: models.OutcomeFounded, RequestID: "r0"}
	require.NoError(t, c.Append(ctx, first))
	assert.Equal(t, int64(1), first.Seq)

	stale := &models.ChainEntry{ContentID: "c1", PrevFingerprint: "", NewFingerprint: "hx", Outcome: models.OutcomeApproved, RequestID: "r1"}
	assert.ErrorIs(t, c.Append(ctx, stale), common.ErrFingerprintConflict)

	dup := &models.ChainEntry{ContentID: "c1", PrevFingerprint: "h1", NewFingerprint: "h1", Outcome: models.OutcomeFounded, RequestID: "r0"}
	assert.ErrorIs(t, c.Append(ctx, dup), common.ErrFingerprintConflict)

	next := &models.ChainEntry{ContentID: "c1", PrevFingerprint: "h1", NewFingerprint: "h2", Outcome: models.OutcomeApproved, RequestID: "r1"}
	require.NoError(t, c.Append(ctx, next))

	list, err := c.List(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "h2", list[1].NewFingerprint)

	found, err := c.FindByRequest(ctx, "r1", models.OutcomeApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.Seq)

	_, err = c.FindByRequest(ctx, "r1", models.OutcomeRejected)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestChain_OneEntryPerRequest(t *testing.T) {
	ctx := context.Background()
	c := NewStore().Chain()

	require.NoError(t, c.Append(ctx, &models.ChainEntry{ContentID: "c1", NewFingerprint: "h1", Outcome: models.OutcomeFounded, RequestID: "r0"}))
	require.NoError(t, c.Append(ctx, &models.ChainEntry{ContentID: "c1", PrevFingerprint: "h1", NewFingerprint: "h1", Outcome: models.OutcomeRejected, RequestID: "r1"}))

	approved := &models.ChainEntry{ContentID: "c1", PrevFingerprint: "h1", NewFingerprint: "h2", Outcome: models.OutcomeApproved, RequestID: "r1"}
	assert.ErrorIs(t, c.Append(ctx, approved), common.ErrFingerprintConflict)

	_, err := c.FindByRequest(ctx, "r1", models.OutcomeApproved)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	found, err := c.FindByRequest(ctx, "r1", models.OutcomeRejected)
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.Seq)
}

func TestChain_ConcurrentAppendSingleWinner(t *testing.T) {
	ctx := context.Background()
	c := NewStore().Chain()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := c.Append(ctx, &models.ChainEntry{ContentID: "c1", NewFingerprint: "h", Outcome: models.OutcomeFounded, RequestID: string(rune('a' + i))})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestPending_AddApproval(t *testing.T) {
	ctx := context.Background()
	p := NewStore().Pending()

	require.NoError(t, p.Create(ctx, &models.PendingRequest{ID: "r1", ContentID: "c1", Status: models.StatusPending, CreatedAt: time.Now()}))

	approvals, added, err := p.AddApproval(ctx, "r1", "u1")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"u1"}, approvals)

	_, added, err = p.AddApproval(ctx, "r1", "u1")
	require.NoError(t, err)
	assert.False(t, added)

	ok, err := p.SetStatus(ctx, "r1", models.StatusPending, models.StatusRejected)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.SetStatus(ctx, "r1", models.StatusPending, models.StatusApproved)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = p.AddApproval(ctx, "r1", "u2")
	assert.ErrorIs(t, err, common.ErrAlreadyTerminal)
}

func TestStakes_CreateAndDividend(t *testing.T) {
	ctx := context.Background()
	s := NewStore().Stakes()
	now := time.Now()

	created, err := s.Create(ctx, &models.Stake{ID: "s1", ContentID: "c1", HolderID: "u1", Amount: 100, AdmittedAt: now, OriginRequestID: "r0"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.Create(ctx, &models.Stake{ID: "s2", ContentID: "c1", HolderID: "u1", Amount: 100, AdmittedAt: now, OriginRequestID: "r0"})
	require.NoError(t, err)
	assert.False(t, created, "same origin request must not create a second stake")

	applied, err := s.AddDividend(ctx, "div:r1:s1", "s1", 25)
	require.NoError(t, err)
	assert.True(t, applied)
	applied, err = s.AddDividend(ctx, "div:r1:s1", "s1", 25)
	require.NoError(t, err)
	assert.False(t, applied)

	list, err := s.ListByContent(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(25), list[0].AccruedDividend)
}

func TestUsers_UniqueName(t *testing.T) {
	ctx := context.Background()
	u := NewStore().Users()

	created, err := u.Create(ctx, &models.User{UserName: "a@x"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = u.Create(ctx, &models.User{UserName: "a@x"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := u.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x", got.UserName)
}
