package memory

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type PendingRepository struct{ s *Store }

func (r PendingRepository) Create(_ context.Context, req *models.PendingRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.requests[req.ID]; ok {
		return common.ErrorAlreadyExists
	}
	cp := cloneRequest(req)
	r.s.requests[req.ID] = &cp
	return nil
}

func (r PendingRepository) Get(_ context.Context, id string) (*models.PendingRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := cloneRequest(req)
	return &cp, nil
}

func (r PendingRepository) ListByContent(_ context.Context, contentID string, status models.RequestStatus) ([]models.PendingRequest, error) {
	return r.filter(func(req *models.PendingRequest) bool {
		return req.ContentID == contentID && req.Status == status
	}), nil
}

func (r PendingRepository) ListByRequester(_ context.Context, requesterID string) ([]models.PendingRequest, error) {
	return r.filter(func(req *models.PendingRequest) bool { return req.RequesterID == requesterID }), nil
}

func (r PendingRepository) AddApproval(_ context.Context, id, approverID string) ([]string, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, false, common.ErrorNotFound
	}
	if req.Status != models.StatusPending {
		return nil, false, common.ErrAlreadyTerminal
	}
	if req.HasApproved(approverID) {
		return append([]string(nil), req.Approvals...), false, nil
	}
	req.Approvals = append(req.Approvals, approverID)
	return append([]string(nil), req.Approvals...), true, nil
}

func (r PendingRepository) SetStatus(_ context.Context, id string, from, to models.RequestStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok || req.Status != from {
		return false, nil
	}
	req.Status = to
	return true, nil
}

func (r PendingRepository) filter(keep func(*models.PendingRequest) bool) []models.PendingRequest {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.PendingRequest
	for _, req := range r.s.requests {
		if keep(req) {
			out = append(out, cloneRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Older(&out[j]) })
	return out
}
