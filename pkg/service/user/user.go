// Package user provides registration and lookup of users.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/eventbus"
	"github.com/amirasaad/banking/pkg/repository"
	userrepo "github.com/amirasaad/banking/pkg/repository/user"
	"github.com/google/uuid"
)

// Service provides business logic for user operations.
type Service struct {
	uow      repository.UnitOfWork
	eventBus eventbus.Bus
	logger   *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps) *Service {
	return &Service{
		uow:      deps.Uow,
		eventBus: deps.EventBus,
		logger:   deps.Logger.With("service", "user"),
	}
}

// Register creates a user. The checks run in order: username taken,
// too long, too short.
func (s *Service) Register(ctx context.Context, username, password string) (u *user.User, err error) {
	logger := s.logger.With("operation", "Register", "username", username)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := userRepository(uow)
		if err != nil {
			return err
		}
		taken, err := repo.ExistsByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			return user.UsernameTaken(username)
		}
		u, err = user.NewUser(username, password)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, u); err != nil {
			// Lost a race with a concurrent registration of the same name.
			if errors.Is(err, domain.ErrAlreadyExists) {
				return user.UsernameTaken(username)
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Info("Register rejected", "error", err)
		return nil, err
	}

	logger.Info("Register successful", "user_id", u.ID)
	if s.eventBus != nil {
		if err := s.eventBus.Emit(ctx, events.NewUserRegistered(u.ID, u.Username)); err != nil {
			logger.Warn("event listeners failed", "error", err)
		}
	}
	return u, nil
}

// GetUser returns the user with the given id.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	repo, err := userRepository(s.uow)
	if err != nil {
		return nil, err
	}
	u, err := repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, user.NotFound(id)
	}
	return u, err
}

// GetByUsername returns the user with the given username, or domain.ErrNotFound.
func (s *Service) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	repo, err := userRepository(s.uow)
	if err != nil {
		return nil, err
	}
	return repo.GetByUsername(ctx, username)
}

func userRepository(uow repository.UnitOfWork) (userrepo.Repository, error) {
	repoAny, err := uow.GetRepository(repository.UserRepositoryType)
	if err != nil {
		return nil, err
	}
	repo, ok := repoAny.(userrepo.Repository)
	if !ok {
		return nil, fmt.Errorf("unexpected repository type %T", repoAny)
	}
	return repo, nil
}
