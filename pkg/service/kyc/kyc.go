// Package kyc manages the one-per-user KYC profile.
package kyc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/amirasaad/banking/pkg/cache"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/domain/kyc"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/eventbus"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTTL  = 10 * time.Minute
	loadTimeout = 5 * time.Second
)

type Service struct {
	uow      repository.UnitOfWork
	cache    cache.KYCCache
	ttl      time.Duration
	loads    singleflight.Group
	// writes counts committed upserts. A cache fill that overlaps one is dropped.
	writes   atomic.Uint64
	eventBus eventbus.Bus
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Service)

// WithClock sets the clock used for the age check.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new Service. A nil deps.KYCCache disables caching.
func NewService(deps config.Deps, opts ...Option) *Service {
	ttl := defaultTTL
	if deps.Config != nil && deps.Config.Cache != nil && deps.Config.Cache.KYCTTL > 0 {
		ttl = deps.Config.Cache.KYCTTL
	}
	s := &Service{
		uow:      deps.Uow,
		cache:    deps.KYCCache,
		ttl:      ttl,
		eventBus: deps.EventBus,
		logger:   deps.Logger.With("service", "kyc"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetProfile returns the profile of userID. Concurrent cache misses for the
// same user share one database read.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*kyc.Profile, error) {
	logger := s.logger.With("operation", "GetProfile", "user_id", userID)

	if s.cache != nil {
		p, err := s.cache.Get(ctx, userID)
		if err != nil {
			logger.Warn("kyc cache read failed, falling back to store", "error", err)
		} else if p != nil {
			return p, nil
		}
	}

	v, err, shared := s.loads.Do(userID.String(), func() (any, error) {
		// Callers joining this load must not fail because the first one left.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		gen := s.writes.Load()
		repo, err := s.uow.KYCRepository()
		if err != nil {
			return nil, err
		}
		p, err := repo.GetByUserID(loadCtx, userID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, kyc.NotFound(userID)
		}
		if err != nil {
			return nil, err
		}
		s.fill(loadCtx, logger, p, gen)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug("kyc load shared with concurrent callers")
	}
	p := *v.(*kyc.Profile)
	return &p, nil
}

// fill caches p unless an upsert committed since gen was read. The check runs
// again after the write: an upsert that slipped in between has already
// evicted, or will evict after us, or we evict here.
func (s *Service) fill(ctx context.Context, logger *slog.Logger, p *kyc.Profile, gen uint64) {
	if s.cache == nil || s.writes.Load() != gen {
		return
	}
	if err := s.cache.Set(ctx, p, s.ttl); err != nil {
		logger.Warn("kyc cache write failed", "error", err)
		return
	}
	if s.writes.Load() != gen {
		if err := s.cache.Delete(ctx, p.UserID); err != nil {
			logger.Warn("kyc cache eviction failed", "error", err)
		}
	}
}

// UpsertProfile validates details and creates or replaces the profile of
// userID. The owner row is locked so that concurrent upserts for one user
// never produce two profiles.
func (s *Service) UpsertProfile(ctx context.Context, userID uuid.UUID, details kyc.Details) (*kyc.Profile, error) {
	logger := s.logger.With("operation", "UpsertProfile", "user_id", userID)

	var (
		saved   *kyc.Profile
		created bool
	)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
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

		if err := details.Validate(s.now()); err != nil {
			return err
		}

		repo, err := uow.KYCRepository()
		if err != nil {
			return err
		}
		p, err := repo.GetByUserID(ctx, userID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			p, created = kyc.NewProfile(userID), true
		case err != nil:
			return fmt.Errorf("load kyc profile: %w", err)
		}
		p.Apply(details)
		if err := repo.Save(ctx, p); err != nil {
			return fmt.Errorf("save kyc profile: %w", err)
		}
		saved = p
		return nil
	})
	if err != nil {
		logger.Info("UpsertProfile rejected", "error", err)
		return nil, err
	}

	logger.Info("UpsertProfile successful", "created", created)
	s.writes.Add(1)
	s.loads.Forget(userID.String())
	if s.cache != nil {
		if err := s.cache.Delete(ctx, userID); err != nil {
			logger.Warn("kyc cache eviction failed", "error", err)
		}
	}
	if s.eventBus != nil {
		if err := s.eventBus.Emit(ctx, events.NewKYCProfileSaved(userID, created)); err != nil {
			logger.Warn("event listeners failed", "error", err)
		}
	}
	return saved, nil
}
