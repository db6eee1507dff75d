// Package account implements the account ledger operations: listing, opening,
// closing and transferring between accounts.
//
// Every mutation runs in a single unit of work. Events are emitted only after
// the unit of work has committed.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/eventbus"
	"github.com/amirasaad/banking/pkg/handler/transfer"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/google/uuid"
)

// NumberGenerator draws candidate account numbers.
type NumberGenerator interface {
	Generate() (string, error)
}

// Service provides the account operations.
type Service struct {
	uow           repository.UnitOfWork
	eventBus      eventbus.Bus
	logger        *slog.Logger
	numbers       NumberGenerator
	transferChain transfer.Handler
}

// Option customizes a Service.
type Option func(*Service)

// WithNumberGenerator replaces the process-wide crypto/rand generator.
func WithNumberGenerator(g NumberGenerator) Option {
	return func(s *Service) { s.numbers = g }
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps, opts ...Option) *Service {
	s := &Service{
		uow:           deps.Uow,
		eventBus:      deps.EventBus,
		logger:        deps.Logger.With("service", "account"),
		numbers:       account.DefaultNumberGenerator(),
		transferChain: transfer.NewChainBuilder(deps.Logger).Build(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListActiveAccounts returns every active account.
func (s *Service) ListActiveAccounts(ctx context.Context) ([]*account.Account, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	accounts, err := repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActiveAccounts failed", "error", err)
		return nil, err
	}
	return accounts, nil
}

// CreateAccount opens an account for userID with the given initial balance.
// The owner row stays locked for the whole unit of work so that concurrent
// openings for one user cannot exceed account.MaxActiveAccountsPerUser.
func (s *Service) CreateAccount(
	ctx context.Context,
	userID uuid.UUID,
	initialBalance money.Amount,
	name string,
) (acc *account.Account, err error) {
	logger := s.logger.With("operation", "CreateAccount", "user_id", userID)
	logger.Info("CreateAccount started")

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		if _, err := users.Lock(ctx, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return user.NotFound(userID)
			}
			return fmt.Errorf("lock user: %w", err)
		}

		if err := account.ValidateInitialBalance(initialBalance); err != nil {
			return err
		}

		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		active, err := repo.CountActiveByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("count active accounts: %w", err)
		}
		if active >= account.MaxActiveAccountsPerUser {
			return account.ErrActiveAccountLimit
		}

		acc, err = s.insertWithFreshNumber(ctx, uow, func(number string) (*account.Account, error) {
			return account.New().
				WithUserID(userID).
				WithName(name).
				WithNumber(number).
				WithBalance(initialBalance).
				Build()
		})
		return err
	})
	if err != nil {
		logger.Info("CreateAccount rejected", "error", err)
		return nil, err
	}

	logger.Info("CreateAccount successful", "account_id", acc.ID, "number", acc.Number)
	s.emit(ctx, events.NewAccountOpened(acc.ID, acc.UserID, acc.Number, acc.Balance))
	return acc, nil
}

// insertWithFreshNumber draws numbers until one can be inserted. Each insert
// runs in a nested unit of work, so a unique-index violation only rolls back
// that attempt.
func (s *Service) insertWithFreshNumber(
	ctx context.Context,
	uow repository.UnitOfWork,
	build func(number string) (*account.Account, error),
) (*account.Account, error) {
	repo, err := uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		number, err := s.numbers.Generate()
		if err != nil {
			return nil, err
		}
		exists, err := repo.ExistsByNumber(ctx, number)
		if err != nil {
			return nil, fmt.Errorf("check account number: %w", err)
		}
		if exists {
			s.logger.Debug("account number collision", "attempt", attempt)
			continue
		}

		acc, err := build(number)
		if err != nil {
			return nil, err
		}
		err = uow.Do(ctx, func(nested repository.UnitOfWork) error {
			r, err := nested.AccountRepository()
			if err != nil {
				return err
			}
			return r.Create(ctx, acc)
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			s.logger.Debug("account number taken concurrently", "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create account: %w", err)
		}
		return acc, nil
	}
}

// CloseAccount marks the account closed. Closing an already closed account
// succeeds without changes.
func (s *Service) CloseAccount(ctx context.Context, number string) error {
	logger := s.logger.With("operation", "CloseAccount", "number", number)

	var closed *account.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acc, err := repo.GetByNumber(ctx, number)
		if errors.Is(err, domain.ErrNotFound) {
			return account.NumberNotFound(number)
		}
		if err != nil {
			return err
		}
		// Lock so a concurrent transfer cannot be overwritten by the status update.
		locked, err := repo.LockByIDs(ctx, acc.ID)
		if err != nil {
			return fmt.Errorf("lock account: %w", err)
		}
		acc = locked[0]
		if !acc.IsActive() {
			return nil
		}
		acc.Close()
		if err := repo.Update(ctx, acc); err != nil {
			return fmt.Errorf("update account: %w", err)
		}
		closed = acc
		return nil
	})
	if err != nil {
		logger.Info("CloseAccount rejected", "error", err)
		return err
	}
	if closed == nil {
		logger.Info("CloseAccount: already closed")
		return nil
	}
	logger.Info("CloseAccount successful")
	s.emit(ctx, events.NewAccountClosed(closed.ID, closed.Number))
	return nil
}

// TransferFunds moves amount from source to destination and returns the new
// source balance. The checks run in a fixed order and the first failure wins.
func (s *Service) TransferFunds(
	ctx context.Context,
	sourceNumber, destinationNumber string,
	amount money.Amount,
) (money.Amount, error) {
	logger := s.logger.With("operation", "TransferFunds",
		"source", sourceNumber, "destination", destinationNumber, "amount", amount)
	logger.Info("TransferFunds started")

	req := &transfer.Request{
		SourceNumber:      sourceNumber,
		DestinationNumber: destinationNumber,
		Amount:            amount,
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return s.transferChain.Handle(ctx, uow, req)
	})
	if err != nil {
		logger.Info("TransferFunds rejected", "error", err)
		return money.Zero, err
	}

	logger.Info("TransferFunds successful", "transaction_id", req.Transaction.ID)
	s.emit(ctx, events.NewFundsTransferred(
		req.Transaction.ID,
		req.SourceNumber,
		req.DestinationNumber,
		req.Amount,
		req.Source.Balance,
	))
	return req.Source.Balance, nil
}

// History returns the ledger entries of an account, newest first.
func (s *Service) History(ctx context.Context, number string) ([]*account.Transaction, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	acc, err := repo.GetByNumber(ctx, number)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, account.NumberNotFound(number)
	}
	if err != nil {
		return nil, err
	}
	txRepo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return txRepo.ListByAccount(ctx, acc.ID)
}

// emit publishes a post-commit event. The operation has already succeeded,
// so listener failures are only logged.
func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(ctx, event); err != nil {
		s.logger.Warn("event listeners failed", "event_type", event.Type(), "error", err)
	}
}
