package memory

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type ContentsRepository struct{ s *Store }

func (r ContentsRepository) Create(_ context.Context, c *models.Content) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contents[c.ID]; ok {
		return common.ErrorAlreadyExists
	}
	cp := *c
	r.s.contents[c.ID] = &cp
	return nil
}

func (r ContentsRepository) Get(_ context.Context, id string) (*models.Content, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.contents[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (r ContentsRepository) List(_ context.Context) ([]models.Content, error) {
	return r.filter(func(*models.Content) bool { return true }), nil
}

func (r ContentsRepository) ListByAuthor(_ context.Context, authorID string) ([]models.Content, error) {
	return r.filter(func(c *models.Content) bool { return c.AuthorID == authorID }), nil
}

func (r ContentsRepository) SwapFingerprint(_ context.Context, id, prev, next string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.contents[id]
	if !ok || c.LatestFingerprint != prev {
		return false, nil
	}
	c.LatestFingerprint = next
	return true, nil
}

func (r ContentsRepository) filter(keep func(*models.Content) bool) []models.Content {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Content
	for _, c := range r.s.contents {
		if keep(c) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
