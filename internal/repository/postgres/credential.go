package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

// CredentialRepository stores per-user platform credentials in the
// gmb_tokens and gmb_accounts tables, one row per user.
type CredentialRepository struct {
	db DB
}

func NewCredentialRepository(db DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) SaveTokens(ctx context.Context, userID int64, tokens domain.OAuthTokens) error {
	query := `
		INSERT INTO gmb_tokens (user_id, access_token, refresh_token, token_type, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET access_token = EXCLUDED.access_token,
		    refresh_token = EXCLUDED.refresh_token,
		    token_type = EXCLUDED.token_type,
		    expires_at = EXCLUDED.expires_at`

	_, err := r.db.Exec(ctx, query, userID, tokens.AccessToken, tokens.RefreshToken, tokens.TokenType, tokens.ExpiresAt)
	if err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}
	return nil
}

func (r *CredentialRepository) GetTokens(ctx context.Context, userID int64) (*domain.OAuthTokens, error) {
	query := `SELECT access_token, refresh_token, token_type, expires_at FROM gmb_tokens WHERE user_id = $1`

	var tokens domain.OAuthTokens
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&tokens.AccessToken, &tokens.RefreshToken, &tokens.TokenType, &tokens.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundMsg(fmt.Sprintf("tokens for user %d not found", userID))
		}
		return nil, fmt.Errorf("get tokens: %w", err)
	}
	return &tokens, nil
}

func (r *CredentialRepository) SaveAccount(ctx context.Context, userID int64, account domain.BusinessAccount) error {
	query := `
		INSERT INTO gmb_accounts (user_id, account_id, account_name, location_name, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET account_id = EXCLUDED.account_id,
		    account_name = EXCLUDED.account_name,
		    location_name = EXCLUDED.location_name,
		    role = EXCLUDED.role`

	_, err := r.db.Exec(ctx, query, userID, account.AccountID, account.AccountName, account.LocationName, account.Role)
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

func (r *CredentialRepository) GetAccount(ctx context.Context, userID int64) (*domain.BusinessAccount, error) {
	query := `SELECT account_id, account_name, location_name, role FROM gmb_accounts WHERE user_id = $1`

	var account domain.BusinessAccount
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&account.AccountID, &account.AccountName, &account.LocationName, &account.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundMsg(fmt.Sprintf("account for user %d not found", userID))
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &account, nil
}
