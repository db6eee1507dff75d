package user_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/banking/infra/eventbus"
	"github.com/amirasaad/banking/internal/fixtures/mocks"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/repository"
	usersvc "github.com/amirasaad/banking/pkg/service/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*usersvc.Service, *mocks.MockUserRepository, *eventbus.MemoryEventBus) {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockUserRepository(t)
	bus := eventbus.NewWithMemory(logger)
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	uow.EXPECT().GetRepository(repository.UserRepositoryType).Return(repo, nil).Maybe()
	return usersvc.NewService(config.Deps{Uow: uow, EventBus: bus, Logger: logger}), repo, bus
}

func TestRegister_Success(t *testing.T) {
	svc, repo, bus := setup(t)
	repo.EXPECT().ExistsByUsername(mock.Anything, "newuser").Return(false, nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return u.Username == "newuser" && u.Password != "secret123" && strings.HasPrefix(u.Password, "$2")
	})).Return(nil).Once()

	u, err := svc.Register(context.Background(), "newuser", "secret123")
	require.NoError(t, err)
	assert.True(t, u.CheckPassword("secret123"))

	require.Len(t, bus.Published(), 1)
	assert.Equal(t, events.EventTypeUserRegistered.String(), bus.Published()[0].Type())
}

func TestRegister_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		username string
		taken    bool
		kind     error
		message  string
	}{
		{"taken wins over length", "averyveryverylongname", true, domain.ErrConflict,
			"Username 'averyveryverylongname' is already taken."},
		{"twelve characters is too long", "abcdefghijkl", false, domain.ErrInvalidArgument,
			"Username 'abcdefghijkl' is too long."},
		{"four characters is too short", "abcd", false, domain.ErrInvalidArgument,
			"Username 'abcd' is too short."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, bus := setup(t)
			repo.EXPECT().ExistsByUsername(mock.Anything, tc.username).Return(tc.taken, nil).Once()

			_, err := svc.Register(context.Background(), tc.username, "secret123")
			assert.ErrorIs(t, err, tc.kind)
			assert.Equal(t, tc.message, domain.Message(err))
			assert.Empty(t, bus.Published())
		})
	}
}

func TestRegister_LengthBoundariesAccepted(t *testing.T) {
	for _, name := range []string{"abcde", "abcdefghijk"} {
		t.Run(name, func(t *testing.T) {
			svc, repo, _ := setup(t)
			repo.EXPECT().ExistsByUsername(mock.Anything, name).Return(false, nil).Once()
			repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

			_, err := svc.Register(context.Background(), name, "secret123")
			assert.NoError(t, err)
		})
	}
}

func TestRegister_DuplicateOnInsert(t *testing.T) {
	svc, repo, _ := setup(t)
	repo.EXPECT().ExistsByUsername(mock.Anything, "racer").Return(false, nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists).Once()

	_, err := svc.Register(context.Background(), "racer", "secret123")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGetUser(t *testing.T) {
	svc, repo, _ := setup(t)
	id := uuid.New()
	repo.EXPECT().Get(mock.Anything, id).Return(user.NewUserFromData(id, "testuser", "hash", time.Now()), nil).Once()

	u, err := svc.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "testuser", u.Username)

	missing := uuid.New()
	repo.EXPECT().Get(mock.Anything, missing).Return(nil, domain.ErrNotFound).Once()
	_, err = svc.GetUser(context.Background(), missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
