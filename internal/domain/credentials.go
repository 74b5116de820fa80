package domain

import "time"

// OAuthTokens holds the platform authorization for one user. Saved
// last-write-wins; expiry handling belongs to the platform client, not
// the store.
type OAuthTokens struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	TokenType    string     `json:"tokenType,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}

// BusinessAccount records which platform account and location a user
// connected, so subsequent syncs do not need to rediscover them.
type BusinessAccount struct {
	AccountID    string `json:"accountId"`
	AccountName  string `json:"accountName,omitempty"`
	LocationName string `json:"locationName,omitempty"`
	Role         string `json:"role,omitempty"`
}
