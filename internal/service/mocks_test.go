package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	"github.com/utafrali/ReviewDeskGo/internal/gmb"
	"github.com/utafrali/ReviewDeskGo/internal/repository"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepo) GetBySourceID(ctx context.Context, sourceID string) (*domain.Review, error) {
	args := m.Called(ctx, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepo) List(ctx context.Context, filter repository.ReviewFilter) ([]domain.Review, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) UpdateResponse(ctx context.Context, id int64, update repository.ResponseUpdate) (*domain.Review, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

type mockResponseRepo struct {
	mock.Mock
}

func (m *mockResponseRepo) Create(ctx context.Context, response *domain.Response) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *mockResponseRepo) ListByReview(ctx context.Context, reviewID int64) ([]domain.Response, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Response), args.Error(1)
}

type mockTemplateRepo struct {
	mock.Mock
}

func (m *mockTemplateRepo) Create(ctx context.Context, template *domain.Template) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *mockTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *mockTemplateRepo) List(ctx context.Context) ([]domain.Template, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Template), args.Error(1)
}

func (m *mockTemplateRepo) Update(ctx context.Context, id int64, update repository.TemplateUpdate) (*domain.Template, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Template), args.Error(1)
}

func (m *mockTemplateRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockDraftStore struct {
	mock.Mock
}

func (m *mockDraftStore) Save(ctx context.Context, draft repository.Draft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *mockDraftStore) Get(ctx context.Context, reviewID int64) (*repository.Draft, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Draft), args.Error(1)
}

func (m *mockDraftStore) Delete(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) ReviewCreated(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockPublisher) ReviewResponded(ctx context.Context, review *domain.Review, tone string) error {
	args := m.Called(ctx, review, tone)
	return args.Error(0)
}

func (m *mockPublisher) ReviewSynced(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

type mockCredentialRepo struct {
	mock.Mock
}

func (m *mockCredentialRepo) SaveTokens(ctx context.Context, userID int64, tokens domain.OAuthTokens) error {
	args := m.Called(ctx, userID, tokens)
	return args.Error(0)
}

func (m *mockCredentialRepo) GetTokens(ctx context.Context, userID int64) (*domain.OAuthTokens, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OAuthTokens), args.Error(1)
}

func (m *mockCredentialRepo) SaveAccount(ctx context.Context, userID int64, account domain.BusinessAccount) error {
	args := m.Called(ctx, userID, account)
	return args.Error(0)
}

func (m *mockCredentialRepo) GetAccount(ctx context.Context, userID int64) (*domain.BusinessAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessAccount), args.Error(1)
}

type mockGMBClient struct {
	mock.Mock
}

func (m *mockGMBClient) ListAccounts(ctx context.Context) ([]gmb.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gmb.Account), args.Error(1)
}

func (m *mockGMBClient) ListLocations(ctx context.Context, accountName string) ([]gmb.Location, error) {
	args := m.Called(ctx, accountName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gmb.Location), args.Error(1)
}

func (m *mockGMBClient) ListReviews(ctx context.Context, locationName string) ([]gmb.Review, error) {
	args := m.Called(ctx, locationName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gmb.Review), args.Error(1)
}

func (m *mockGMBClient) ReplyToReview(ctx context.Context, reviewName, comment string) (*gmb.ReviewReply, error) {
	args := m.Called(ctx, reviewName, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gmb.ReviewReply), args.Error(1)
}
