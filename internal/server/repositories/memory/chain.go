package memory

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type ChainRepository struct{ s *Store }

func (r ChainRepository) Append(_ context.Context, e *models.ChainEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries := r.s.chains[e.ContentID]
	head := ""
	if n := len(entries); n > 0 {
		head = entries[n-1].NewFingerprint
	}
	if e.PrevFingerprint != head {
		return common.ErrFingerprintConflict
	}
	if _, dup := r.s.chainByRequest[e.RequestID]; dup {
		return common.ErrFingerprintConflict
	}

	e.Seq = int64(len(entries) + 1)
	stored := cloneEntry(*e)
	r.s.chains[e.ContentID] = append(entries, stored)
	r.s.chainByRequest[e.RequestID] = stored
	return nil
}

func (r ChainRepository) List(_ context.Context, contentID string) ([]models.ChainEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries := r.s.chains[contentID]
	out := make([]models.ChainEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, cloneEntry(e))
	}
	return out, nil
}

func (r ChainRepository) FindByRequest(_ context.Context, requestID string, outcome models.ChainOutcome) (*models.ChainEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.chainByRequest[requestID]
	if !ok || e.Outcome != outcome {
		return nil, common.ErrorNotFound
	}
	cp := cloneEntry(e)
	return &cp, nil
}
