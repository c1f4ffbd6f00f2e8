package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/password"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, a *Admin) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepo) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	args := m.Called(ctx, username)
	a, _ := args.Get(0).(*Admin)
	return a, args.Error(1)
}

func (m *mockRepo) FindByID(ctx context.Context, id uint) (*Admin, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*Admin)
	return a, args.Error(1)
}

func TestMain(m *testing.M) {
	password.Cost = bcrypt.MinCost
	m.Run()
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("注册成功", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByUsername", ctx, "admin1").Return(nil, ErrAdminNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*admin.Admin")).Return(nil)

		a, err := NewService(repo).Register(ctx, "admin1", "secret1")
		require.NoError(t, err)
		assert.True(t, a.CheckPassword("secret1"))
		assert.False(t, a.CheckPassword("secret2"))
	})

	t.Run("用户名已存在", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("FindByUsername", ctx, "admin1").Return(&Admin{ID: 1}, nil)

		_, err := NewService(repo).Register(ctx, "admin1", "secret1")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	stored, err := NewAdmin("admin1", "secret1")
	require.NoError(t, err)

	repo := new(mockRepo)
	repo.On("FindByUsername", ctx, "admin1").Return(stored, nil)
	repo.On("FindByUsername", ctx, "ghost").Return(nil, ErrAdminNotFound)
	svc := NewService(repo)

	a, err := svc.Authenticate(ctx, "admin1", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "admin1", a.Username)

	_, err = svc.Authenticate(ctx, "admin1", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "ghost", "secret1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
