package service

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
)

// CredentialService stores platform authorization per user so a connected
// account does not have to re-authorize on every restart.
type CredentialService struct {
	creds repository.CredentialRepository
}

func NewCredentialService(creds repository.CredentialRepository) *CredentialService {
	return &CredentialService{creds: creds}
}

// SaveToken records an exchanged OAuth token for the user.
func (s *CredentialService) SaveToken(ctx context.Context, userID int64, token *oauth2.Token) error {
	tokens := domain.OAuthTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		tokens.ExpiresAt = &expiry
	}

	if err := s.creds.SaveTokens(ctx, userID, tokens); err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}
	return nil
}

// Tokens returns the saved authorization for the user, or NotFound.
func (s *CredentialService) Tokens(ctx context.Context, userID int64) (*domain.OAuthTokens, error) {
	return s.creds.GetTokens(ctx, userID)
}

// SaveAccount records which platform account and location the user
// connected.
func (s *CredentialService) SaveAccount(ctx context.Context, userID int64, account domain.BusinessAccount) error {
	if err := s.creds.SaveAccount(ctx, userID, account); err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

// Account returns the saved platform account for the user, or NotFound.
func (s *CredentialService) Account(ctx context.Context, userID int64) (*domain.BusinessAccount, error) {
	return s.creds.GetAccount(ctx, userID)
}
