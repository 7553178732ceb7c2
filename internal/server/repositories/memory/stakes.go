package memory

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type StakesRepository struct{ s *Store }

func (r StakesRepository) Create(_ context.Context, st *models.Stake) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.stakes[st.ID]; ok {
		return false, nil
	}
	if _, ok := r.s.stakeOrigins[st.OriginRequestID]; ok {
		return false, nil
	}
	cp := *st
	r.s.stakes[st.ID] = &cp
	r.s.stakeOrigins[st.OriginRequestID] = st.ID
	return true, nil
}

func (r StakesRepository) ListByContent(_ context.Context, contentID string) ([]models.Stake, error) {
	return r.filter(func(s *models.Stake) bool { return s.ContentID == contentID }), nil
}

func (r StakesRepository) ListByHolder(_ context.Context, holderID string) ([]models.Stake, error) {
	return r.filter(func(s *models.Stake) bool { return s.HolderID == holderID }), nil
}

func (r StakesRepository) AddDividend(_ context.Context, ref, stakeID string, amount int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, done := r.s.dividendCreds[ref]; done {
		return false, nil
	}
	st, ok := r.s.stakes[stakeID]
	if !ok {
		return false, common.ErrorNotFound
	}
	st.AccruedDividend += amount
	r.s.dividendCreds[ref] = struct{}{}
	return true, nil
}

func (r StakesRepository) filter(keep func(*models.Stake) bool) []models.Stake {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Stake
	for _, s := range r.s.stakes {
		if keep(s) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AdmittedAt.Equal(out[j].AdmittedAt) {
			return out[i].AdmittedAt.Before(out[j].AdmittedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
