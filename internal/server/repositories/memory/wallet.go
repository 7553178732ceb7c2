package memory

import (
	"context"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
)

type WalletRepository struct{ s *Store }

func (r WalletRepository) Open(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.balances[userID]; !ok {
		r.s.balances[userID] = 0
	}
	return nil
}

func (r WalletRepository) Balance(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.balances[userID]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return b, nil
}

func (r WalletRepository) Apply(_ context.Context, ref, userID string, amount int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, done := r.s.movements[ref]; done {
		return false, nil
	}
	b, ok := r.s.balances[userID]
	if !ok {
		if amount < 0 {
			return false, common.ErrInsufficientFunds
		}
		return false, common.ErrorNotFound
	}
	if b+amount < 0 {
		return false, common.ErrInsufficientFunds
	}
	r.s.balances[userID] = b + amount
	r.s.movements[ref] = struct{}{}
	return true, nil
}

func (r WalletRepository) HasMovement(_ context.Context, ref string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, ok := r.s.movements[ref]
	return ok, nil
}

type MediaRepository struct{ s *Store }

func (r MediaRepository) Create(_ context.Context, m *models.Media) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.media[m.StorageKey]; ok {
		return common.ErrorAlreadyExists
	}
	r.s.media[m.StorageKey] = *m
	return nil
}

func (r MediaRepository) MarkUploaded(_ context.Context, storageKey, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.media[storageKey]
	if !ok || m.OwnerID != ownerID {
		return common.ErrorNotFound
	}
	m.UploadStatus = models.MediaUploaded
	r.s.media[storageKey] = m
	return nil
}

func (r MediaRepository) Get(_ context.Context, storageKey string) (*models.Media, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.media[storageKey]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &m, nil
}
