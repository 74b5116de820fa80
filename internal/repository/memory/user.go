package memory

import (
	"context"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

type userRepo struct {
	store *Store
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Username == user.Username {
			return apperrors.Wrap(apperrors.ErrConflict, "username "+user.Username+" already taken")
		}
	}

	r.store.nextUserID++
	user.ID = r.store.nextUserID
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, apperrors.NotFound("user", id)
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, apperrors.Wrap(apperrors.ErrNotFound, "user "+username)
}
