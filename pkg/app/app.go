package app

import (
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/service/account"
	"github.com/amirasaad/banking/pkg/service/auth"
	"github.com/amirasaad/banking/pkg/service/kyc"
	"github.com/amirasaad/banking/pkg/service/user"
)

// App bundles the services built from one set of dependencies.
type App struct {
	Deps           *config.Deps
	Config         *config.App
	AuthService    *auth.Service
	UserService    *user.Service
	AccountService *account.Service
	KYCService     *kyc.Service
}

// New builds the services and registers the event listeners.
func New(deps *config.Deps, cfg *config.App) *App {
	if deps.Config == nil {
		deps.Config = cfg
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	app.AuthService = auth.NewService(deps.Uow, cfg.Auth.Jwt, deps.Logger)
	app.UserService = user.NewService(*deps)
	app.AccountService = account.NewService(*deps)
	app.KYCService = kyc.NewService(*deps)
	return app
}
