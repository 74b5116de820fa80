package memory

import (
	"context"
	"fmt"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

type credentialRepo struct {
	store *Store
}

func (r *credentialRepo) SaveTokens(ctx context.Context, userID int64, tokens domain.OAuthTokens) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.tokens[userID] = tokens
	return nil
}

func (r *credentialRepo) GetTokens(ctx context.Context, userID int64) (*domain.OAuthTokens, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tokens, ok := r.store.tokens[userID]
	if !ok {
		return nil, apperrors.NotFoundMsg(fmt.Sprintf("tokens for user %d not found", userID))
	}
	return &tokens, nil
}

func (r *credentialRepo) SaveAccount(ctx context.Context, userID int64, account domain.BusinessAccount) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.accounts[userID] = account
	return nil
}

func (r *credentialRepo) GetAccount(ctx context.Context, userID int64) (*domain.BusinessAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[userID]
	if !ok {
		return nil, apperrors.NotFoundMsg(fmt.Sprintf("account for user %d not found", userID))
	}
	return &account, nil
}
