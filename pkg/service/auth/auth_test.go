package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/banking/internal/fixtures/mocks"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Service, *mocks.MockUserRepository) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockUserRepository(t)
	uow.EXPECT().UserRepository().Return(repo, nil).Maybe()
	svc := NewService(uow, &config.Jwt{Secret: "test-secret", Expiry: time.Hour}, slog.New(slog.DiscardHandler))
	return svc, repo
}

func TestLogin(t *testing.T) {
	svc, repo := setup(t)
	u, err := user.NewUser("testuser", "password123")
	require.NoError(t, err)
	repo.EXPECT().GetByUsername(mock.Anything, "testuser").Return(u, nil)
	repo.EXPECT().GetByUsername(mock.Anything, "nobody").Return(nil, domain.ErrNotFound)

	got, err := svc.Login(context.Background(), "testuser", "password123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Login(context.Background(), "testuser", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "invalid username or password", domain.Message(err))

	_, err = svc.Login(context.Background(), "nobody", "password123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGenerateAndParseToken(t *testing.T) {
	svc, _ := setup(t)
	u := user.NewUserFromData([16]byte{1}, "testuser", "hash", time.Now())

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	var claims Claims
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) { return []byte("test-secret"), nil })
	require.NoError(t, err)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, u.ID.String(), claims.UserID)

	id, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestParseToken_Expired(t *testing.T) {
	svc, _ := setup(t)
	u := user.NewUserFromData([16]byte{2}, "testuser", "hash", time.Now())
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateToken(u)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestParseToken_WrongSecret(t *testing.T) {
	svc, _ := setup(t)
	other := NewService(nil, &config.Jwt{Secret: "other", Expiry: time.Hour}, slog.New(slog.DiscardHandler))
	token, err := other.GenerateToken(user.NewUserFromData([16]byte{3}, "testuser", "hash", time.Now()))
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
