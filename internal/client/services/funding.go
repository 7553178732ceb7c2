package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cofund/internal/client/cache"
	"github.com/dmitrijs2005/cofund/internal/client/client"
	"github.com/dmitrijs2005/cofund/internal/client/models"
	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/integrity"
)

// ErrChainHeadMismatch means a verified chain does not end at the
// fingerprint the server advertises for the content.
var ErrChainHeadMismatch = errors.New("chain head differs from content fingerprint")

// Comparison is the local view of one content item against the server.
type Comparison struct {
	Authoritative string
	Cached        string
	Expected      string
	Divergence    string
	Confirmation  integrity.Confirmation
}

// FundingService runs the funding flow for one viewer and keeps the
// fingerprints that viewer observed in the local cache.
//
// The viewer name scopes every cache key, so several identities can share
// one local store.
type FundingService interface {
	RequestJoin(ctx context.Context, viewer, contentID string, amount int64) (*models.JoinResult, error)
	Approve(ctx context.Context, viewer, requestID string) (*models.ApproveResult, error)
	Reject(ctx context.Context, requestID string) (*models.ChainEntry, error)
	Resume(ctx context.Context, viewer, requestID string) (*models.ChainEntry, error)

	Eligible(ctx context.Context) ([]models.PendingRequest, error)
	MyRequests(ctx context.Context) ([]models.PendingRequest, error)
	Stakes(ctx context.Context, contentID string) ([]models.Stake, error)
	Chain(ctx context.Context, contentID string) ([]models.ChainEntry, error)
	Portfolio(ctx context.Context) (*models.Portfolio, error)

	Verify(ctx context.Context, contentID string) (string, error)
	Resync(ctx context.Context, viewer, contentID string) (string, error)
	Compare(ctx context.Context, viewer, contentID string) (*Comparison, error)
}

type fundingService struct {
	client client.Client
	cache  cache.FingerprintCache
}

func NewFundingService(c client.Client, fc cache.FingerprintCache) FundingService {
	return &fundingService{client: c, cache: fc}
}

// RequestJoin files a join request. When the call founds the content the
// new fingerprint is cached as observed.
func (s *fundingService) RequestJoin(ctx context.Context, viewer, contentID string, amount int64) (*models.JoinResult, error) {
	resp, err := s.client.RequestJoin(ctx, contentID, amount)
	if err != nil {
		return nil, err
	}
	if resp.Founded && resp.Entry != nil {
		if err := s.cache.Set(ctx, integrity.LatestKey(contentID, viewer), resp.Entry.NewFingerprint); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

// Approve votes for a request. The viewer's cached fingerprint travels with
// the vote; a mismatch with the server blocks the vote until Resync. A
// viewer with nothing cached adopts the verified chain head first.
func (s *fundingService) Approve(ctx context.Context, viewer, requestID string) (*models.ApproveResult, error) {
	req, err := s.findEligible(ctx, requestID)
	if err != nil {
		return nil, err
	}
	latestKey := integrity.LatestKey(req.ContentID, viewer)

	observed, err := s.cache.Get(ctx, latestKey)
	if err != nil {
		return nil, err
	}
	if observed == "" {
		if observed, err = s.Resync(ctx, viewer, req.ContentID); err != nil {
			return nil, err
		}
	} else {
		d, err := s.client.Divergence(ctx, req.ContentID, observed)
		if err != nil {
			return nil, err
		}
		if d.State == integrity.Mismatch.String() {
			return nil, fmt.Errorf("%w: cached %s, server %s", common.ErrDivergence, short(observed), short(d.Authoritative))
		}
	}

	expected, err := s.client.ExpectedFingerprint(ctx, requestID)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Approve(ctx, requestID, observed)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, integrity.PendingKey(req.ContentID, viewer), expected); err != nil {
		return nil, err
	}
	if resp.Settled && resp.Entry != nil {
		if err := s.cache.Set(ctx, latestKey, resp.Entry.NewFingerprint); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *fundingService) findEligible(ctx context.Context, requestID string) (*models.PendingRequest, error) {
	list, err := s.client.ListEligiblePending(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == requestID {
			return &list[i], nil
		}
	}
	return nil, common.ErrNotEligible
}

func (s *fundingService) Reject(ctx context.Context, requestID string) (*models.ChainEntry, error) {
	return s.client.Reject(ctx, requestID)
}

// Resume finishes a partially applied settlement and caches its result.
func (s *fundingService) Resume(ctx context.Context, viewer, requestID string) (*models.ChainEntry, error) {
	entry, err := s.client.ResumeSettlement(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if entry.Outcome != "rejected" {
		if err := s.cache.Set(ctx, integrity.LatestKey(entry.ContentID, viewer), entry.NewFingerprint); err != nil {
			return nil, err
		}
	}
	return entry, nil
}

func (s *fundingService) Eligible(ctx context.Context) ([]models.PendingRequest, error) {
	return s.client.ListEligiblePending(ctx)
}

func (s *fundingService) MyRequests(ctx context.Context) ([]models.PendingRequest, error) {
	return s.client.ListMyPending(ctx)
}

func (s *fundingService) Stakes(ctx context.Context, contentID string) ([]models.Stake, error) {
	return s.client.ListStakes(ctx, contentID)
}

func (s *fundingService) Chain(ctx context.Context, contentID string) ([]models.ChainEntry, error) {
	return s.client.GetChain(ctx, contentID)
}

func (s *fundingService) Portfolio(ctx context.Context) (*models.Portfolio, error) {
	return s.client.Portfolio(ctx)
}

// Verify recomputes every chain entry from its stake snapshot and checks
// that the chain ends at the content's advertised fingerprint.
func (s *fundingService) Verify(ctx context.Context, contentID string) (string, error) {
	c, err := s.client.GetContent(ctx, contentID)
	if err != nil {
		return "", err
	}
	entries, err := s.client.GetChain(ctx, contentID)
	if err != nil {
		return "", err
	}

	head, err := integrity.VerifyChain(fingerprintable(c), links(entries))
	if err != nil {
		return "", err
	}
	if head != c.LatestFingerprint {
		return "", fmt.Errorf("%w: chain %s, content %s", ErrChainHeadMismatch, short(head), short(c.LatestFingerprint))
	}
	return head, nil
}

// Resync adopts the server fingerprint as observed, but only once the
// chain behind it verifies.
func (s *fundingService) Resync(ctx context.Context, viewer, contentID string) (string, error) {
	head, err := s.Verify(ctx, contentID)
	if err != nil {
		return "", err
	}
	if err := s.cache.Set(ctx, integrity.LatestKey(contentID, viewer), head); err != nil {
		return "", err
	}
	return head, nil
}

// Compare classifies the viewer's cached state against the server. A
// confirmed expectation is promoted to the observed fingerprint.
func (s *fundingService) Compare(ctx context.Context, viewer, contentID string) (*Comparison, error) {
	latestKey := integrity.LatestKey(contentID, viewer)
	pendingKey := integrity.PendingKey(contentID, viewer)

	cached, err := s.cache.Get(ctx, latestKey)
	if err != nil {
		return nil, err
	}
	expected, err := s.cache.Get(ctx, pendingKey)
	if err != nil {
		return nil, err
	}

	d, err := s.client.Divergence(ctx, contentID, cached)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{
		Authoritative: d.Authoritative,
		Cached:        cached,
		Expected:      expected,
		Divergence:    d.State,
		Confirmation:  integrity.CompareExpected(expected, d.Authoritative),
	}

	if cmp.Confirmation == integrity.Confirmed {
		if err := s.cache.Set(ctx, latestKey, d.Authoritative); err != nil {
			return nil, err
		}
		if err := s.cache.Delete(ctx, pendingKey); err != nil {
			return nil, err
		}
		cmp.Cached = d.Authoritative
		cmp.Divergence = integrity.Match.String()
	}
	return cmp, nil
}

func fingerprintable(c *models.Content) integrity.Content {
	return integrity.Content{
		ID:          c.ID,
		Title:       c.Title,
		Body:        c.Body,
		Type:        c.Type,
		MediaURL:    c.MediaURL,
		CreatedAt:   c.CreatedAt,
		AuthorID:    c.AuthorID,
		AuthorEmail: c.AuthorLabel,
	}
}

func links(entries []models.ChainEntry) []integrity.Link {
	out := make([]integrity.Link, 0, len(entries))
	for _, e := range entries {
		h := make([]integrity.Holding, 0, len(e.Stakes))
		for _, s := range e.Stakes {
			h = append(h, integrity.Holding{HolderLabel: s.HolderLabel, Amount: s.Amount})
		}
		out = append(out, integrity.Link{Prev: e.PrevFingerprint, New: e.NewFingerprint, Holdings: h})
	}
	return out
}

// short abbreviates a fingerprint for messages.
func short(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	if fp == "" {
		return "(none)"
	}
	return fp
}
