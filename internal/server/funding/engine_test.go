package funding

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/integrity"
	"github.com/dmitrijs2005/cofund/internal/logging"
	"github.com/dmitrijs2005/cofund/internal/server/models"
	"github.com/dmitrijs2005/cofund/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initialBalance = 1000

var (
	alice = Identity{ID: "u1", Label: "alice@example.com"}
	bob   = Identity{ID: "u2", Label: "bob@example.com"}
	carol = Identity{ID: "u3", Label: "carol@example.com"}
	dave  = Identity{ID: "u4", Label: "dave@example.com"}
	erin  = Identity{ID: "u5", Label: "erin@example.com"}
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// useStepClock makes timeNow strictly increasing so request ages are
// deterministic.
func useStepClock(t *testing.T) {
	t.Helper()
	var tick atomic.Int64
	prev := timeNow
	timeNow = func() time.Time {
		return baseTime.Add(time.Duration(tick.Add(1)) * time.Millisecond)
	}
	t.Cleanup(func() { timeNow = prev })
}

type fixture struct {
	t       *testing.T
	ctx     context.Context
	mgr     repomanager.RepositoryManager
	engine  *Engine
	content *models.Content
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, repomanager.NewInMemoryRepositoryManager())
}

func newFixtureWith(t *testing.T, mgr repomanager.RepositoryManager) *fixture {
	t.Helper()
	useStepClock(t)

	f := &fixture{
		t:      t,
		ctx:    context.Background(),
		mgr:    mgr,
		engine: NewEngine(nil, mgr, logging.NewJSONLogger(io.Discard, "error")),
	}
	for _, id := range []Identity{alice, bob, carol, dave, erin} {
		require.NoError(t, mgr.Wallet(nil).Open(f.ctx, id.ID))
		_, err := mgr.Wallet(nil).Apply(f.ctx, "initial:"+id.ID, id.ID, initialBalance)
		require.NoError(t, err)
	}

	f.content = &models.Content{
		ID:          "c1",
		Title:       "Field recordings",
		Body:        "Dawn chorus, three mics",
		Type:        common.ContentTypeMusic,
		CreatedAt:   baseTime,
		AuthorID:    alice.ID,
		AuthorLabel: alice.Label,
	}
	require.NoError(t, mgr.Contents(nil).Create(f.ctx, f.content))
	return f
}

func (f *fixture) balance(who Identity) int64 {
	f.t.Helper()
	b, err := f.mgr.Wallet(nil).Balance(f.ctx, who.ID)
	require.NoError(f.t, err)
	return b
}

func (f *fixture) fingerprint() string {
	f.t.Helper()
	c, err := f.mgr.Contents(nil).Get(f.ctx, f.content.ID)
	require.NoError(f.t, err)
	return c.LatestFingerprint
}

func (f *fixture) join(who Identity, amount int64) *JoinResult {
	f.t.Helper()
	res, err := f.engine.RequestJoin(f.ctx, f.content.ID, who, amount)
	require.NoError(f.t, err)
	return res
}

// admit files a request for who and has the given holders approve it.
func (f *fixture) admit(who Identity, amount int64, approvers ...Identity) *models.ChainEntry {
	f.t.Helper()
	res := f.join(who, amount)
	require.False(f.t, res.Founded)

	var last *ApprovalResult
	for _, a := range approvers {
		var err error
		last, err = f.engine.Approve(f.ctx, res.Request.ID, a, "")
		require.NoError(f.t, err)
	}
	require.NotNil(f.t, last)
	require.True(f.t, last.Settled)
	return last.Entry
}

func (f *fixture) verifyChain() string {
	f.t.Helper()
	entries, err := f.engine.GetChain(f.ctx, f.content.ID)
	require.NoError(f.t, err)

	links := make([]integrity.Link, 0, len(entries))
	for _, e := range entries {
		links = append(links, e.Link())
	}
	head, err := integrity.VerifyChain(f.content.Fingerprintable(), links)
	require.NoError(f.t, err)
	return head
}

func TestRequestJoin_FoundsEmptyPool(t *testing.T) {
	f := newFixture(t)

	res := f.join(alice, 100)

	require.True(t, res.Founded)
	assert.Nil(t, res.Request)
	require.NotNil(t, res.Stake)
	assert.Equal(t, alice.ID, res.Stake.HolderID)
	assert.Equal(t, int64(100), res.Stake.Amount)
	assert.Equal(t, models.OutcomeFounded, res.Entry.Outcome)
	assert.Empty(t, res.Entry.PrevFingerprint)
	assert.Empty(t, res.Entry.Dividends)
	assert.Equal(t, res.Entry.NewFingerprint, f.fingerprint())
	assert.Equal(t, int64(900), f.balance(alice))

	want, err := integrity.Fingerprint(f.content.Fingerprintable(),
		[]integrity.Holding{{HolderLabel: alice.Label, Amount: 100}})
	require.NoError(t, err)
	assert.Equal(t, want, f.fingerprint())

	mine, err := f.engine.ListMyPending(f.ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestRequestJoin_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.RequestJoin(f.ctx, f.content.ID, alice, 0)
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	_, err = f.engine.RequestJoin(f.ctx, f.content.ID, alice, -5)
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	_, err = f.engine.RequestJoin(f.ctx, "missing", alice, 10)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRequestJoin_InsufficientFunds(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)

	_, err := f.engine.RequestJoin(f.ctx, f.content.ID, bob, initialBalance+1)
	require.ErrorIs(t, err, common.ErrInsufficientFunds)

	assert.Equal(t, int64(initialBalance), f.balance(bob))
	mine, err := f.engine.ListMyPending(f.ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestRequestJoin_HoldsFundsForPendingRequest(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)

	res := f.join(bob, 100)

	require.False(t, res.Founded)
	require.NotNil(t, res.Request)
	assert.Equal(t, models.StatusPending, res.Request.Status)
	assert.Empty(t, res.Request.Approvals)
	assert.Equal(t, bob.Label, res.Request.RequesterLabel)
	assert.Equal(t, int64(900), f.balance(bob))
}

func TestMajorityAndDistribution(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)

	bobReq := f.join(bob, 100).Request
	_, err := f.engine.Approve(f.ctx, bobReq.ID, bob, "")
	assert.ErrorIs(t, err, common.ErrNotEligible, "requester cannot approve")
	_, err = f.engine.Approve(f.ctx, bobReq.ID, carol, "")
	assert.ErrorIs(t, err, common.ErrNotEligible, "non-holder cannot approve")

	expected, err := f.engine.ExpectedFingerprint(f.ctx, bobReq.ID)
	require.NoError(t, err)

	res, err := f.engine.Approve(f.ctx, bobReq.ID, alice, f.fingerprint())
	require.NoError(t, err)
	assert.True(t, res.Settled)
	assert.Equal(t, 1, res.Required)
	assert.Equal(t, expected, f.fingerprint())
	assert.Equal(t, int64(1000), f.balance(alice))

	carolReq := f.join(carol, 50).Request
	res, err = f.engine.Approve(f.ctx, carolReq.ID, alice, "")
	require.NoError(t, err)
	assert.False(t, res.Settled)
	assert.Equal(t, 1, res.Approvals)
	assert.Equal(t, 2, res.Required)

	_, err = f.engine.Approve(f.ctx, carolReq.ID, alice, "")
	assert.ErrorIs(t, err, common.ErrNotEligible, "second vote")

	res, err = f.engine.Approve(f.ctx, carolReq.ID, bob, "")
	require.NoError(t, err)
	require.True(t, res.Settled)
	assert.Equal(t, models.StatusApproved, res.Request.Status)

	entry := res.Entry
	assert.Equal(t, models.OutcomeApproved, entry.Outcome)
	assert.Equal(t, bob.ID, entry.ApprovedBy)
	assert.ElementsMatch(t, []string{alice.ID, bob.ID}, entry.Approvals)
	require.Len(t, entry.Dividends, 2)
	for _, d := range entry.Dividends {
		assert.Equal(t, int64(25), d.Amount)
	}
	assert.Zero(t, entry.DividendDust)
	assert.Len(t, entry.Stakes, 3)

	assert.Equal(t, int64(1025), f.balance(alice))
	assert.Equal(t, int64(925), f.balance(bob))
	assert.Equal(t, int64(950), f.balance(carol))

	stakes, err := f.engine.ListStakes(f.ctx, f.content.ID)
	require.NoError(t, err)
	require.Len(t, stakes, 3)
	assert.Equal(t, int64(125), stakes[0].AccruedDividend)
	assert.Equal(t, int64(25), stakes[1].AccruedDividend)
	assert.Zero(t, stakes[2].AccruedDividend)
	assert.Equal(t, carolReq.ID, stakes[2].OriginRequestID)

	assert.Equal(t, f.fingerprint(), f.verifyChain())

	_, err = f.engine.Approve(f.ctx, carolReq.ID, alice, "")
	assert.ErrorIs(t, err, common.ErrAlreadyTerminal)
}

func TestApprove_OldestPendingGate(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	first := f.join(bob, 100).Request
	second := f.join(carol, 40).Request

	_, err := f.engine.Approve(f.ctx, second.ID, alice, "")
	require.ErrorIs(t, err, common.ErrNotOldestPending)

	res, err := f.engine.Approve(f.ctx, first.ID, alice, "")
	require.NoError(t, err)
	require.True(t, res.Settled)

	res, err = f.engine.Approve(f.ctx, second.ID, alice, "")
	require.NoError(t, err)
	assert.False(t, res.Settled)
	assert.Equal(t, 2, res.Required)
}

func TestApprove_DivergenceBlocksApproval(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	req := f.join(bob, 100).Request

	_, err := f.engine.Approve(f.ctx, req.ID, alice, "bogus")
	require.ErrorIs(t, err, common.ErrDivergence)

	stored, err := f.mgr.Pending(nil).Get(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Approvals)
	assert.Equal(t, models.StatusPending, stored.Status)

	d, authoritative, err := f.engine.Divergence(f.ctx, f.content.ID, "bogus")
	require.NoError(t, err)
	assert.Equal(t, integrity.Mismatch, d)
	assert.Equal(t, f.fingerprint(), authoritative)

	d, _, err = f.engine.Divergence(f.ctx, f.content.ID, "")
	require.NoError(t, err)
	assert.Equal(t, integrity.ServerAhead, d)

	res, err := f.engine.Approve(f.ctx, req.ID, alice, authoritative)
	require.NoError(t, err)
	assert.True(t, res.Settled)
}

func TestReject_ReleasesFundsAndAppendsEntry(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	head := f.fingerprint()

	req := f.join(carol, 30).Request
	assert.Equal(t, int64(970), f.balance(carol))

	_, err := f.engine.Reject(f.ctx, req.ID, dave)
	require.ErrorIs(t, err, common.ErrNotEligible)

	entry, err := f.engine.Reject(f.ctx, req.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeRejected, entry.Outcome)
	assert.Equal(t, head, entry.PrevFingerprint)
	assert.Equal(t, head, entry.NewFingerprint)
	assert.Equal(t, alice.ID, entry.RejectedBy)
	assert.Len(t, entry.Stakes, 1)

	assert.Equal(t, int64(initialBalance), f.balance(carol))
	assert.Equal(t, head, f.fingerprint())

	stored, err := f.mgr.Pending(nil).Get(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, stored.Status)

	_, err = f.engine.Reject(f.ctx, req.ID, alice)
	require.ErrorIs(t, err, common.ErrAlreadyTerminal)
	assert.Equal(t, int64(initialBalance), f.balance(carol))

	entries, err := f.engine.GetChain(f.ctx, f.content.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, head, f.verifyChain())

	_, err = f.engine.Approve(f.ctx, req.ID, alice, "")
	assert.ErrorIs(t, err, common.ErrAlreadyTerminal)
}

func TestReject_RequesterWithdraws(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	req := f.join(bob, 60).Request

	entry, err := f.engine.Reject(f.ctx, req.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, entry.RejectedBy)
	assert.Equal(t, int64(initialBalance), f.balance(bob))
}

func TestReject_ApprovedRequestIsTerminal(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	f.admit(bob, 100, alice)

	mine, err := f.engine.ListMyPending(f.ctx, bob)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	_, err = f.engine.Reject(f.ctx, mine[0].ID, alice)
	assert.ErrorIs(t, err, common.ErrAlreadyTerminal)
	assert.Equal(t, int64(900), f.balance(bob))
}

func TestRejectedRequestUnblocksYoungerOne(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	older := f.join(bob, 100).Request
	younger := f.join(carol, 10).Request

	_, err := f.engine.Reject(f.ctx, older.ID, alice)
	require.NoError(t, err)

	res, err := f.engine.Approve(f.ctx, younger.ID, alice, f.fingerprint())
	require.NoError(t, err)
	assert.True(t, res.Settled)
	assert.Equal(t, f.fingerprint(), f.verifyChain())
}

func TestListEligiblePending(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	bobReq := f.join(bob, 100).Request
	carolReq := f.join(carol, 20).Request

	got, err := f.engine.ListEligiblePending(f.ctx, alice)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, bobReq.ID, got[0].ID)
	assert.Equal(t, carolReq.ID, got[1].ID)

	got, err = f.engine.ListEligiblePending(f.ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = f.engine.Approve(f.ctx, bobReq.ID, alice, "")
	require.NoError(t, err)

	// bob holds a stake now, so carol's request reaches him too.
	got, err = f.engine.ListEligiblePending(f.ctx, bob)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, carolReq.ID, got[0].ID)

	_, err = f.engine.Approve(f.ctx, carolReq.ID, alice, "")
	require.NoError(t, err)
	got, err = f.engine.ListEligiblePending(f.ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPortfolio(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	f.admit(bob, 100, alice)
	f.join(carol, 40)

	p, err := f.engine.Portfolio(f.ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), p.Cash)
	assert.Equal(t, int64(100), p.TotalInvested)
	assert.Equal(t, int64(100), p.TotalDividend)
	assert.Len(t, p.Stakes, 1)
	assert.Empty(t, p.Pending)

	p, err = f.engine.Portfolio(f.ctx, carol)
	require.NoError(t, err)
	assert.Equal(t, int64(960), p.Cash)
	assert.Zero(t, p.TotalInvested)
	require.Len(t, p.Pending, 1)
	assert.Equal(t, int64(40), p.Pending[0].Amount)
}

func TestExpectedFingerprint_MatchesCommittedState(t *testing.T) {
	f := newFixture(t)
	f.join(alice, 100)
	f.admit(bob, 70, alice)
	req := f.join(carol, 30).Request

	expected, err := f.engine.ExpectedFingerprint(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, integrity.Awaiting, integrity.CompareExpected(expected, ""))
	assert.Equal(t, integrity.Suspected, integrity.CompareExpected(expected, f.fingerprint()))

	_, err = f.engine.Approve(f.ctx, req.ID, alice, "")
	require.NoError(t, err)
	_, err = f.engine.Approve(f.ctx, req.ID, bob, "")
	require.NoError(t, err)

	assert.Equal(t, integrity.Confirmed, integrity.CompareExpected(expected, f.fingerprint()))
}
