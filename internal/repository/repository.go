// Package repository defines the storage contracts for review desk
// entities and the filter used by review listing.
package repository

import (
	"context"
	"time"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
)

// ReviewFilter narrows a review listing. Nil or empty fields match
// everything. DateRange accepts "last-7-days", "last-30-days", and
// "last-3-months" (a 90-day cutoff); any other value matches all dates.
type ReviewFilter struct {
	Rating    *int
	Status    string
	Search    string
	DateRange string
}

// ResponseUpdate replaces a review's response fields atomically. A nil
// ResponseDate clears the stored date.
type ResponseUpdate struct {
	Response     string
	Status       string
	ResponseDate *time.Time
}

// ReviewRepository stores reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetBySourceID(ctx context.Context, sourceID string) (*domain.Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]domain.Review, error)
	UpdateResponse(ctx context.Context, id int64, update ResponseUpdate) (*domain.Review, error)
}

// ResponseRepository stores response history records.
type ResponseRepository interface {
	Create(ctx context.Context, response *domain.Response) error
	ListByReview(ctx context.Context, reviewID int64) ([]domain.Response, error)
}

// TemplateUpdate carries partial template changes. Nil fields are left
// unchanged.
type TemplateUpdate struct {
	Name     *string
	Content  *string
	Category *string
}

// TemplateRepository stores response templates.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	GetByID(ctx context.Context, id int64) (*domain.Template, error)
	List(ctx context.Context) ([]domain.Template, error)
	Update(ctx context.Context, id int64, update TemplateUpdate) (*domain.Template, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository stores dashboard accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// CredentialRepository stores platform authorization per user. Saves are
// last-write-wins; reads return NotFound when nothing was saved.
type CredentialRepository interface {
	SaveTokens(ctx context.Context, userID int64, tokens domain.OAuthTokens) error
	GetTokens(ctx context.Context, userID int64) (*domain.OAuthTokens, error)
	SaveAccount(ctx context.Context, userID int64, account domain.BusinessAccount) error
	GetAccount(ctx context.Context, userID int64) (*domain.BusinessAccount, error)
}
