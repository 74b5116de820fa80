package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/utafrali/ReviewDeskGo/internal/domain"
	apperrors "github.com/utafrali/ReviewDeskGo/pkg/errors"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	users := new(mockUserRepo)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "owner" && u.Password != "hunter2secret" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter2secret")) == nil
	})).Return(nil)

	svc := NewUserService(users)
	user, err := svc.Register(context.Background(), RegisterUserInput{Username: "owner", Password: "hunter2secret"})
	require.NoError(t, err)
	assert.Equal(t, "owner", user.Username)
	users.AssertExpectations(t)
}

func TestUserService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("GetByUsername", mock.Anything, "owner").
		Return(&domain.User{ID: 1, Username: "owner", Password: string(hash)}, nil)
	users.On("GetByUsername", mock.Anything, "ghost").
		Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "user ghost"))

	svc := NewUserService(users)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "owner", "hunter2secret")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "owner", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("unknown user reports same error as wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "ghost", "hunter2secret")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestUserService_EnsureDefaultUser(t *testing.T) {
	t.Run("creates when missing", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByUsername", mock.Anything, "owner").
			Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "user owner"))
		users.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := NewUserService(users)
		user, err := svc.EnsureDefaultUser(context.Background(), "owner", "hunter2secret")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "owner", user.Username)
		users.AssertExpectations(t)
	})

	t.Run("returns existing account when present", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetByUsername", mock.Anything, "owner").
			Return(&domain.User{ID: 7, Username: "owner"}, nil)

		svc := NewUserService(users)
		user, err := svc.EnsureDefaultUser(context.Background(), "owner", "hunter2secret")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(7), user.ID)
		users.AssertNotCalled(t, "Create")
	})

	t.Run("no-op without configured credentials", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewUserService(users)
		user, err := svc.EnsureDefaultUser(context.Background(), "", "")
		require.NoError(t, err)
		assert.Nil(t, user)
		users.AssertNotCalled(t, "GetByUsername")
	})
}
