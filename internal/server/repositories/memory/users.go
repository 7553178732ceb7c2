package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/dmitrijs2005/cofund/internal/server/models"
	"github.com/google/uuid"
)

type UsersRepository struct{ s *Store }

func (r UsersRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.usersByName[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	r.s.users[u.ID] = &u
	r.s.usersByName[u.UserName] = u.ID

	user.ID, user.CreatedAt = u.ID, u.CreatedAt
	return user, nil
}

func (r UsersRepository) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.usersByName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.s.users[id]
	return &u, nil
}

func (r UsersRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

type RefreshTokensRepository struct{ s *Store }

func (r RefreshTokensRepository) Create(_ context.Context, userID, token string, validity time.Duration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	r.s.refreshTokens[token] = models.RefreshToken{
		ID: uuid.NewString(), UserID: userID, Token: token, Expires: now.Add(validity), CreatedAt: now,
	}
	return nil
}

func (r RefreshTokensRepository) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.refreshTokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r RefreshTokensRepository) Delete(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.refreshTokens, token)
	return nil
}

func (r RefreshTokensRepository) DeleteByUser(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for k, t := range r.s.refreshTokens {
		if t.UserID == userID {
			delete(r.s.refreshTokens, k)
			n++
		}
	}
	return n, nil
}
