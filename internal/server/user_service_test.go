package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-extractor/internal/config"
	"github.com/jonathan/skill-extractor/internal/db"
	"github.com/jonathan/skill-extractor/internal/types"
)

// mockDBClient is an in-memory DBClient for unit tests.
type mockDBClient struct {
	users  map[uuid.UUID]*db.User
	emails map[string]uuid.UUID
}

func newMockDBClient() *mockDBClient {
	return &mockDBClient{
		users:  make(map[uuid.UUID]*db.User),
		emails: make(map[string]uuid.UUID),
	}
}

func (m *mockDBClient) CreateUser(_ context.Context, name, email string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	m.users[id] = &db.User{ID: id, Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
	m.emails[email] = id
	return id, nil
}

func (m *mockDBClient) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	return m.users[id], nil
}

func (m *mockDBClient) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	id, ok := m.emails[email]
	if !ok {
		return nil, nil
	}
	return m.users[id], nil
}

func (m *mockDBClient) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := m.emails[email]
	return ok, nil
}

func (m *mockDBClient) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	user, ok := m.users[userID]
	if !ok {
		return &ErrUserNotFound{UserID: userID}
	}
	user.PasswordHash = passwordHash
	user.PasswordSet = true
	return nil
}

func newTestUserService(t *testing.T) (*UserService, *mockDBClient) {
	t.Helper()
	t.Setenv("BCRYPT_COST", "10") // keep hashing fast in tests
	passwordConfig, err := config.NewPasswordConfig()
	require.NoError(t, err)
	mock := newMockDBClient()
	return NewUserService(mock, passwordConfig), mock
}

func TestToAPIUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		now := time.Now()
		dbUser := &db.User{
			ID:           uuid.New(),
			Name:         "Ada Lovelace",
			Email:        "ada@example.com",
			PasswordHash: "hashed-password",
			PasswordSet:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		apiUser := toAPIUser(dbUser)
		require.NotNil(t, apiUser)
		assert.Equal(t, dbUser.ID, apiUser.ID)
		assert.Equal(t, dbUser.Name, apiUser.Name)
		assert.Equal(t, dbUser.Email, apiUser.Email)
		assert.True(t, apiUser.PasswordSet)
	})

	t.Run("nil user", func(t *testing.T) {
		assert.Nil(t, toAPIUser(nil))
	})
}

func TestUserService_Register(t *testing.T) {
	service, mock := newTestUserService(t)

	user, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.True(t, user.PasswordSet)

	// Stored hash must not be the plaintext password.
	stored := mock.users[user.ID]
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newTestUserService(t)

	req := &types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password-123"}
	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	require.Error(t, err)
	var dupErr *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dupErr)
}

func TestUserService_Login(t *testing.T) {
	service, _ := newTestUserService(t)

	_, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "password-123",
	})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := service.Login(context.Background(), &types.LoginRequest{
			Email: "ada@example.com", Password: "password-123",
		})
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), &types.LoginRequest{
			Email: "ada@example.com", Password: "wrong-password",
		})
		var credErr *ErrInvalidCredentials
		assert.ErrorAs(t, err, &credErr)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(context.Background(), &types.LoginRequest{
			Email: "nobody@example.com", Password: "password-123",
		})
		var credErr *ErrInvalidCredentials
		assert.ErrorAs(t, err, &credErr)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	service, _ := newTestUserService(t)

	user, err := service.Register(context.Background(), &types.CreateUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "old-password-1",
	})
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := service.UpdatePassword(context.Background(), user.ID, "not-the-password", "new-password-1")
		var mismatchErr *ErrPasswordMismatch
		assert.ErrorAs(t, err, &mismatchErr)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := service.UpdatePassword(context.Background(), uuid.New(), "old-password-1", "new-password-1")
		var notFoundErr *ErrUserNotFound
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("successful update", func(t *testing.T) {
		require.NoError(t, service.UpdatePassword(context.Background(), user.ID, "old-password-1", "new-password-1"))

		_, err := service.Login(context.Background(), &types.LoginRequest{
			Email: "ada@example.com", Password: "new-password-1",
		})
		assert.NoError(t, err)

		_, err = service.Login(context.Background(), &types.LoginRequest{
			Email: "ada@example.com", Password: "old-password-1",
		})
		assert.Error(t, err)
	})
}
