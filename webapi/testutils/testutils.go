// Package testutils provides an end-to-end suite backed by a throwaway
// Postgres container.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/banking/infra"
	infra_cache "github.com/amirasaad/banking/infra/cache"
	infra_eventbus "github.com/amirasaad/banking/infra/eventbus"
	infra_repository "github.com/amirasaad/banking/infra/repository"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestPassword is the password of every user created by CreateTestUser.
const TestPassword = "password123"

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers.
// Embedding suites are skipped under -short or when no container runtime is available.
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	DB          *gorm.DB
	App         *fiber.App
	Core        *app.App
	Cfg         *config.App
}

// startPostgresContainer starts a Postgres container using Testcontainers
func startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
}

// SetupSuite initializes the test suite with a real Postgres database
func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping end-to-end tests in short mode")
	}
	ctx := context.Background()

	pg, err := startPostgresContainer(ctx)
	if err != nil {
		s.T().Skipf("postgres container unavailable: %v", err)
	}
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Cfg = &config.App{
		Env:       "test",
		DB:        &config.DB{Url: dsn, MaxOpenConns: 20, MaxIdleConns: 5, ConnMaxLifetime: time.Hour},
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "e2e-secret", Expiry: time.Hour}},
		Cache:     &config.Cache{KYCTTL: time.Minute},
		RateLimit: &config.RateLimit{MaxRequests: 0},
	}

	s.DB, err = infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(s.DB))

	logger := slog.New(slog.DiscardHandler)
	deps := &config.Deps{
		Uow:      infra_repository.NewUoW(s.DB),
		EventBus: infra_eventbus.NewWithMemory(logger),
		KYCCache: infra_cache.NewMemoryCache(),
		Logger:   logger,
	}
	s.Core = app.New(deps, s.Cfg)
	s.App = webapi.SetupApp(s.Core)
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// ResetDB empties every table.
func (s *E2ETestSuite) ResetDB() {
	s.Require().NoError(
		s.DB.Exec("TRUNCATE transactions, accounts, kyc_profiles, users RESTART IDENTITY CASCADE").Error,
	)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// DecodeJSON reads resp into v and closes the body.
func (s *E2ETestSuite) DecodeJSON(resp *http.Response, v any) {
	defer resp.Body.Close() //nolint: errcheck
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
}

// CreateTestUser registers a user with a random name through POST /users/v1/register.
func (s *E2ETestSuite) CreateTestUser() *user.User {
	username := "u" + uuid.NewString()[:8]
	body := fmt.Sprintf(`{"username":"%s","password":"%s"}`, username, TestPassword)
	resp := s.MakeRequest(http.MethodPost, "/users/v1/register", body, "")
	_ = resp.Body.Close()
	s.Require().Equal(fiber.StatusOK, resp.StatusCode, "register %s", username)

	u, err := s.Core.UserService.GetByUsername(context.Background(), username)
	s.Require().NoError(err)
	return u
}

// LoginUser logs in through POST /auth/v1/login and returns the token.
func (s *E2ETestSuite) LoginUser(u *user.User) string {
	body := fmt.Sprintf(`{"username":"%s","password":"%s"}`, u.Username, TestPassword)
	resp := s.MakeRequest(http.MethodPost, "/auth/v1/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	s.DecodeJSON(resp, &out)
	s.Require().NotEmpty(out.Token)
	return out.Token
}

// CreateAccount opens an account through the API and returns its number.
func (s *E2ETestSuite) CreateAccount(userID uuid.UUID, balance string) string {
	body := fmt.Sprintf(`{"userId":"%s","initialBalance":%s,"name":"e2e"}`, userID, balance)
	resp := s.MakeRequest(http.MethodPost, "/accounts/v1/accounts", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var out struct {
		AccountNumber string `json:"accountNumber"`
	}
	s.DecodeJSON(resp, &out)
	return out.AccountNumber
}
