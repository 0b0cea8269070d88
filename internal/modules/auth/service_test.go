package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"paradise/internal/domain"
	jwtsvc "paradise/internal/pkg/jwt"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Name:         "Администратор",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
}

func newService(users UserRepository) *Service {
	return NewService(users, jwtsvc.New("test-secret", time.Hour))
}

func TestLoginIssuesToken(t *testing.T) {
	users := new(mockUsers)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(testUser(t, "secret123"), nil)

	svc := newService(users)
	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "admin@example.com", result.User.Email)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mockUsers)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(testUser(t, "secret123"), nil)

	svc := newService(users)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	users := new(mockUsers)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := newService(users)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	users := new(mockUsers)
	u := testUser(t, "secret123")
	u.IsActive = false
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(u, nil)

	svc := newService(users)
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestIssuedTokenRoundTrips(t *testing.T) {
	users := new(mockUsers)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(testUser(t, "secret123"), nil)

	jwt := jwtsvc.New("test-secret", time.Hour)
	svc := NewService(users, jwt)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}
