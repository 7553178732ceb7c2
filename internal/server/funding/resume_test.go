package funding

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/dbx"
	"github.com/dmitrijs2005/cofund/internal/server/models"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/chain"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/stakes"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

// faultyManager fails the next stake insert, chain append or release once
// the matching flag is armed.
type faultyManager struct {
	*repomanager.InMemoryRepositoryManager
	failCreate  atomic.Bool
	failAppend  atomic.Bool
	failRelease atomic.Bool
}

func (m *faultyManager) Stakes(db dbx.DBTX) stakes.Repository {
	return faultyStakes{Repository: m.InMemoryRepositoryManager.Stakes(db), m: m}
}

func (m *faultyManager) Chain(db dbx.DBTX) chain.Repository {
	return faultyChain{Repository: m.InMemoryRepositoryManager.Chain(db), m: m}
}

func (m *faultyManager) Wallet(db dbx.DBTX) wallet.Repository {
	return faultyWallet{Repository: m.InMemoryRepositoryManager.Wallet(db), m: m}
}

type faultyChain struct {
	chain.Repository
	m *faultyManager
}

func (c faultyChain) Append(ctx context.Context, e *models.ChainEntry) error {
	if c.m.failAppend.CompareAndSwap(true, false) {
		return errDiskFull
	}
	return c.Repository.Append(ctx, e)
}

type faultyWallet struct {
	wallet.Repository
	m *faultyManager
}

func (w faultyWallet) Apply(ctx context.Context, ref, userID string, amount int64) (bool, error) {
	if strings.HasPrefix(ref, "release:") && w.m.failRelease.CompareAndSwap(true, false) {
		return false, errDiskFull
	}
	return w.Repository.Apply(ctx, ref, userID, amount)
}

type faultyStakes struct {
	stakes.Repository
	m *faultyManager
}

func (s faultyStakes) Create(ctx context.Context, st *models.Stake) (bool, error) {
	if s.m.failCreate.CompareAndSwap(true, false) {
		return false, errDiskFull
	}
	return s.Repository.Create(ctx, st)
}

func newFaultyFixture(t *testing.T) (*fixture, *faultyManager) {
	m := &faultyManager{InMemoryRepositoryManager: repomanager.NewInMemoryRepositoryManager()}
	return newFixtureWith(t, m), m
}

func TestResumeSettlement_AfterPartialFailure(t *testing.T) {
	f, m := newFaultyFixture(t)
	f.join(alice, 100)
	head := f.fingerprint()
	req := f.join(bob, 100).Request

	m.failCreate.Store(true)
	_, err := f.engine.Approve(f.ctx, req.ID, alice, "")
	require.ErrorIs(t, err, common.ErrStoreUnavailable)

	// The chain entry is in, the dividend went out, the rest did not.
	assert.Equal(t, head, f.fingerprint())
	assert.Equal(t, int64(1000), f.balance(alice))
	stored, err := f.mgr.Pending(nil).Get(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	entry, err := f.engine.ResumeSettlement(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeApproved, entry.Outcome)
	assert.Equal(t, entry.NewFingerprint, f.fingerprint())

	again, err := f.engine.ResumeSettlement(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Seq, again.Seq)

	assert.Equal(t, int64(1000), f.balance(alice))
	assert.Equal(t, int64(900), f.balance(bob))

	stored, err = f.mgr.Pending(nil).Get(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)

	list, err := f.engine.ListStakes(f.ctx, f.content.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(100), list[0].AccruedDividend)
	assert.Equal(t, f.fingerprint(), f.verifyChain())
}

func TestReconcileCompletesSettlementBeforeNextJoin(t *testing.T) {
	f, m := newFaultyFixture(t)
	f.join(alice, 100)
	req := f.join(bob, 100).Request

	m.failCreate.Store(true)
	_, err := f.engine.Approve(f.ctx, req.ID, alice, "")
	require.ErrorIs(t, err, common.ErrStoreUnavailable)

	next := f.join(carol, 50)
	require.False(t, next.Founded)

	stored, err := f.mgr.Pending(nil).Get(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)

	res, err := f.engine.Approve(f.ctx, next.Request.ID, alice, f.fingerprint())
	require.NoError(t, err)
	assert.False(t, res.Settled)
	assert.Equal(t, 2, res.Required)

	res, err = f.engine.Approve(f.ctx, next.Request.ID, bob, f.fingerprint())
	require.NoError(t, err)
	require.True(t, res.Settled)

	assert.Equal(t, int64(1025), f.balance(alice))
	assert.Equal(t, int64(925), f.balance(bob))
	assert.Equal(t, f.fingerprint(), f.verifyChain())
}

func TestResumeSettlement_FinishesRejection(t *testing.T) {
	f, m := newFaultyFixture(t)
	f.join(alice, 100)
	req := f.join(bob, 40).Request

	m.failRelease.Store(true)
	_, err := f.engine.Reject(f.ctx, req.ID, alice)
	require.ErrorIs(t, err, common.ErrStoreUnavailable)

	// The claim and the status change are in, the money is still held.
	assert.Equal(t, int64(960), f.balance(bob))
	stored, err := f.mgr.Pending(nil).Get(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, stored.Status)

	entry, err := f.engine.ResumeSettlement(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeRejected, entry.Outcome)
	assert.Equal(t, alice.ID, entry.RejectedBy)
	assert.Equal(t, int64(initialBalance), f.balance(bob))

	_, err = f.engine.Reject(f.ctx, req.ID, alice)
	require.ErrorIs(t, err, common.ErrAlreadyTerminal)
	assert.Equal(t, int64(initialBalance), f.balance(bob))

	entries, err := f.engine.GetChain(f.ctx, f.content.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReject_AfterPartialSettlementFinishesIt(t *testing.T) {
	f, m := newFaultyFixture(t)
	f.join(alice, 100)
	req := f.join(bob, 100).Request

	m.failCreate.Store(true)
	_, err := f.engine.Approve(f.ctx, req.ID, alice, "")
	require.ErrorIs(t, err, common.ErrStoreUnavailable)

	for _, who := range []Identity{alice, bob} {
		_, err = f.engine.Reject(f.ctx, req.ID, who)
		require.ErrorIs(t, err, common.ErrAlreadyTerminal)
	}

	// No refund: bob paid for the stake the chain already records.
	assert.Equal(t, int64(900), f.balance(bob))
	assert.Equal(t, int64(1000), f.balance(alice))

	stored, err := f.mgr.Pending(nil).Get(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)

	list, err := f.engine.ListStakes(f.ctx, f.content.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, bob.ID, list[1].HolderID)

	entry, err := f.engine.ResumeSettlement(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeApproved, entry.Outcome)
	assert.Equal(t, int64(900), f.balance(bob))

	entries, err := f.engine.GetChain(f.ctx, f.content.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEqual(t, models.OutcomeRejected, e.Outcome)
	}
	assert.Equal(t, f.fingerprint(), f.verifyChain())
}

// claimRejection appends a rejected entry for req as an interrupted Reject
// would have left it: claimed in the chain, still pending, still held.
func (f *fixture) claimRejection(req *models.PendingRequest) {
	f.t.Helper()
	entries, err := f.mgr.Chain(nil).List(f.ctx, req.ContentID)
	require.NoError(f.t, err)
	last := lastSettlement(entries)
	require.NotNil(f.t, last)

	require.NoError(f.t, f.mgr.Chain(nil).Append(f.ctx, &models.ChainEntry{
		ContentID:       req.ContentID,
		PrevFingerprint: last.NewFingerprint,
		NewFingerprint:  last.NewFingerprint,
		Outcome:         models.OutcomeRejected,
		RequestID:       req.ID,
		Timestamp:       timeNow(),
		ChainPayload:    models.ChainPayload{Stakes: last.Stakes, RejectedBy: alice.ID},
	}))
}

func TestApprove_RefusesClaimedRejection(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	head := f.fingerprint()
	req := f.join(bob, 100).Request
	f.claimRejection(req)

	_, err := f.engine.Approve(f.ctx, req.ID, alice, "")
	require.ErrorIs(t, err, common.ErrAlreadyTerminal)
	assert.Equal(t, head, f.fingerprint())
	assert.Equal(t, int64(900), f.balance(bob))

	entry, err := f.engine.ResumeSettlement(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeRejected, entry.Outcome)
	assert.Equal(t, int64(initialBalance), f.balance(bob))

	stored, err := f.mgr.Pending(nil).Get(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, stored.Status)

	list, err := f.engine.ListStakes(f.ctx, f.content.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestApprove_FinishesClaimedRejectionAhead(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	older := f.join(bob, 100).Request
	younger := f.join(carol, 10).Request
	f.claimRejection(older)

	res, err := f.engine.Approve(f.ctx, younger.ID, alice, f.fingerprint())
	require.NoError(t, err)
	assert.True(t, res.Settled)

	assert.Equal(t, int64(initialBalance), f.balance(bob))
	stored, err := f.mgr.Pending(nil).Get(f.ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, stored.Status)
	assert.Equal(t, f.fingerprint(), f.verifyChain())
}

func TestRequestJoin_FoundingAppendFailureReleasesHold(t *testing.T) {
	f, m := newFaultyFixture(t)

	m.failAppend.Store(true)
	_, err := f.engine.RequestJoin(f.ctx, f.content.ID, alice, 100)
	require.ErrorIs(t, err, common.ErrStoreUnavailable)

	assert.Equal(t, int64(initialBalance), f.balance(alice))
	entries, err := f.engine.GetChain(f.ctx, f.content.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	res := f.join(alice, 100)
	assert.True(t, res.Founded)
	assert.Equal(t, int64(900), f.balance(alice))
}

func TestRequestJoin_RecordedFoundingKeepsHold(t *testing.T) {
	f, m := newFaultyFixture(t)

	m.failCreate.Store(true)
	_, err := f.engine.RequestJoin(f.ctx, f.content.ID, alice, 100)
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.Equal(t, int64(900), f.balance(alice))

	// The next join reconciles the founding before filing its request.
	res := f.join(bob, 50)
	assert.False(t, res.Founded)

	list, err := f.engine.ListStakes(f.ctx, f.content.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, alice.ID, list[0].HolderID)
	assert.Equal(t, int64(900), f.balance(alice))
	assert.Equal(t, f.fingerprint(), f.verifyChain())
}

func TestResumeSettlement_Unknown(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	req := f.join(bob, 40).Request

	_, err := f.engine.ResumeSettlement(f.ctx, req.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.engine.ResumeSettlement(f.ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
