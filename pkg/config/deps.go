package config

import (
	"log/slog"

	"github.com/amirasaad/banking/pkg/cache"
	"github.com/amirasaad/banking/pkg/eventbus"
	"github.com/amirasaad/banking/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	KYCCache cache.KYCCache
	Logger   *slog.Logger
	Config   *App
}
