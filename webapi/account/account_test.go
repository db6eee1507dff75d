package account_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/banking/internal/fixtures/mocks"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain"
	accountdomain "github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/repository"
	accountsvc "github.com/amirasaad/banking/pkg/service/account"
	accountweb "github.com/amirasaad/banking/webapi/account"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fixedGenerator string

func (g fixedGenerator) Generate() (string, error) { return string(g), nil }

type AccountHandlersTestSuite struct {
	suite.Suite
	app         *fiber.App
	uow         *mocks.MockUnitOfWork
	accountRepo *mocks.MockAccountRepository
	userRepo    *mocks.MockUserRepository
	txRepo      *mocks.MockTransactionRepository
}

func TestAccountHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlersTestSuite))
}

func (s *AccountHandlersTestSuite) SetupTest() {
	t := s.T()
	s.uow = mocks.NewMockUnitOfWork(t)
	s.accountRepo = mocks.NewMockAccountRepository(t)
	s.userRepo = mocks.NewMockUserRepository(t)
	s.txRepo = mocks.NewMockTransactionRepository(t)

	s.uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(s.uow)
		},
	).Maybe()
	s.uow.EXPECT().AccountRepository().Return(s.accountRepo, nil).Maybe()
	s.uow.EXPECT().UserRepository().Return(s.userRepo, nil).Maybe()
	s.uow.EXPECT().TransactionRepository().Return(s.txRepo, nil).Maybe()

	svc := accountsvc.NewService(
		config.Deps{Uow: s.uow, Logger: slog.New(slog.DiscardHandler)},
		accountsvc.WithNumberGenerator(fixedGenerator("77123456789012")),
	)
	s.app = fiber.New()
	accountweb.Routes(s.app, svc, &config.App{Auth: &config.Auth{Jwt: &config.Jwt{}}})
}

func (s *AccountHandlersTestSuite) request(method, path, body string) (int, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint: errcheck
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, raw
}

func (s *AccountHandlersTestSuite) errorMessage(raw []byte) string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(raw, &body))
	return body["error"]
}

func newAccount(t *testing.T, number, balance string, status accountdomain.Status) *accountdomain.Account {
	t.Helper()
	acc, err := accountdomain.New().
		WithUserID(uuid.New()).
		WithNumber(number).
		WithBalance(money.MustParse(balance)).
		WithStatus(status).
		Build()
	require.NoError(t, err)
	return acc
}

func (s *AccountHandlersTestSuite) TestCreateAccount() {
	userID := uuid.New()

	s.Run("existing user gets an account with the requested balance", func() {
		s.userRepo.EXPECT().Lock(mock.Anything, userID).
			Return(user.NewUserFromData(userID, "testuser", "hash", time.Now()), nil).Once()
		s.accountRepo.EXPECT().CountActiveByUser(mock.Anything, userID).Return(int64(0), nil).Once()
		s.accountRepo.EXPECT().ExistsByNumber(mock.Anything, "77123456789012").Return(false, nil).Once()
		s.accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		status, raw := s.request(http.MethodPost, "/accounts/v1/accounts",
			`{"userId":"`+userID.String()+`","initialBalance":777.777,"name":"savings"}`)

		s.Equal(fiber.StatusOK, status)
		var summary map[string]any
		s.Require().NoError(json.Unmarshal(raw, &summary))
		s.Equal(777.777, summary["balance"])
		s.Equal(userID.String(), summary["userId"])
		s.Equal("savings", summary["name"])
		s.Regexp(regexp.MustCompile(`^77\d{12}$`), summary["accountNumber"])
		s.Contains(string(raw), `"balance":777.777`)
	})

	s.Run("zero balance is rejected", func() {
		s.userRepo.EXPECT().Lock(mock.Anything, userID).
			Return(user.NewUserFromData(userID, "testuser", "hash", time.Now()), nil).Once()

		status, raw := s.request(http.MethodPost, "/accounts/v1/accounts",
			`{"userId":"`+userID.String()+`","initialBalance":0.0,"name":"savings"}`)

		s.Equal(fiber.StatusBadRequest, status)
		s.Equal("Initial balance must be between 10 and 1,000,000 KD", s.errorMessage(raw))
	})

	s.Run("unknown user is not found", func() {
		missing := uuid.New()
		s.userRepo.EXPECT().Lock(mock.Anything, missing).Return(nil, domain.ErrNotFound).Once()

		status, raw := s.request(http.MethodPost, "/accounts/v1/accounts",
			`{"userId":"`+missing.String()+`","initialBalance":100}`)

		s.Equal(fiber.StatusNotFound, status)
		s.Equal("User with ID "+missing.String()+" was not found", s.errorMessage(raw))
	})

	s.Run("missing user id fails validation", func() {
		status, _ := s.request(http.MethodPost, "/accounts/v1/accounts", `{"initialBalance":100}`)
		s.Equal(fiber.StatusBadRequest, status)
	})

	s.Run("malformed body", func() {
		status, raw := s.request(http.MethodPost, "/accounts/v1/accounts", `{"userId":`)
		s.Equal(fiber.StatusBadRequest, status)
		s.Equal("invalid request body", s.errorMessage(raw))
	})
}

func (s *AccountHandlersTestSuite) TestListAccounts() {
	a := newAccount(s.T(), "77000000000001", "10", accountdomain.StatusActive)
	s.accountRepo.EXPECT().ListActive(mock.Anything).Return([]*accountdomain.Account{a}, nil).Once()

	status, raw := s.request(http.MethodGet, "/accounts/v1/accounts", "")

	s.Equal(fiber.StatusOK, status)
	s.JSONEq(`{"accounts":[{"userId":"`+a.UserID.String()+`","balance":10.000,"accountNumber":"77000000000001","name":""}]}`, string(raw))
}

func (s *AccountHandlersTestSuite) TestCloseAccount() {
	s.Run("active account", func() {
		acc := newAccount(s.T(), "77000000000002", "10", accountdomain.StatusActive)
		s.accountRepo.EXPECT().GetByNumber(mock.Anything, acc.Number).Return(acc, nil).Once()
		s.accountRepo.EXPECT().LockByIDs(mock.Anything, []uuid.UUID{acc.ID}).
			Return([]*accountdomain.Account{acc}, nil).Once()
		s.accountRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		status, raw := s.request(http.MethodPost, "/accounts/v1/accounts/77000000000002/close", "")
		s.Equal(fiber.StatusNoContent, status)
		s.Empty(raw)
	})

	s.Run("missing account", func() {
		s.accountRepo.EXPECT().GetByNumber(mock.Anything, "77999999999999").Return(nil, domain.ErrNotFound).Once()

		status, raw := s.request(http.MethodPost, "/accounts/v1/accounts/77999999999999/close", "")
		s.Equal(fiber.StatusNotFound, status)
		s.Equal("account number 77999999999999 does not exist", s.errorMessage(raw))
	})
}

func (s *AccountHandlersTestSuite) expectTransferLookup(src, dst *accountdomain.Account) {
	s.accountRepo.EXPECT().GetByNumber(mock.Anything, src.Number).Return(src, nil).Once()
	s.accountRepo.EXPECT().GetByNumber(mock.Anything, dst.Number).Return(dst, nil).Once()
	s.accountRepo.EXPECT().LockByIDs(mock.Anything, []uuid.UUID{src.ID, dst.ID}).
		Return([]*accountdomain.Account{src, dst}, nil).Once()
}

func (s *AccountHandlersTestSuite) TestTransfer() {
	s.Run("moves funds and returns the new source balance", func() {
		src := newAccount(s.T(), "77000000000010", "100.000", accountdomain.StatusActive)
		dst := newAccount(s.T(), "77000000000011", "990.000", accountdomain.StatusActive)
		s.expectTransferLookup(src, dst)
		s.accountRepo.EXPECT().Update(mock.Anything, src).Return(nil).Once()
		s.accountRepo.EXPECT().Update(mock.Anything, dst).Return(nil).Once()
		s.txRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		status, raw := s.request(http.MethodPost, "/accounts/v1/accounts/transfer",
			`{"sourceAccountNumber":"77000000000010","destinationAccountNumber":"77000000000011","amount":50.000}`)

		s.Equal(fiber.StatusOK, status)
		s.JSONEq(`{"newBalance":50.000}`, string(raw))
		s.Contains(string(raw), `"newBalance":50.000`)
		s.Equal("1040.000", dst.Balance.String())
	})

	s.Run("closed source", func() {
		src := newAccount(s.T(), "77000000000020", "100", accountdomain.StatusClosed)
		dst := newAccount(s.T(), "77000000000021", "100", accountdomain.StatusActive)
		s.expectTransferLookup(src, dst)

		status, raw := s.request(http.MethodPost, "/accounts/v1/accounts/transfer",
			`{"sourceAccountNumber":"77000000000020","destinationAccountNumber":"77000000000021","amount":5}`)

		s.Equal(fiber.StatusBadRequest, status)
		s.Equal("source account is closed", s.errorMessage(raw))
	})

	s.Run("same account", func() {
		acc := newAccount(s.T(), "77000000000030", "100", accountdomain.StatusActive)
		s.expectTransferLookup(acc, acc)

		status, raw := s.request(http.MethodPost, "/accounts/v1/accounts/transfer",
			`{"sourceAccountNumber":"77000000000030","destinationAccountNumber":"77000000000030","amount":5}`)

		s.Equal(fiber.StatusBadRequest, status)
		s.Equal("you can't transfer to the same account...", s.errorMessage(raw))
	})

	s.Run("unknown destination", func() {
		src := newAccount(s.T(), "77000000000040", "100", accountdomain.StatusActive)
		s.accountRepo.EXPECT().GetByNumber(mock.Anything, src.Number).Return(src, nil).Once()
		s.accountRepo.EXPECT().GetByNumber(mock.Anything, "77000000000041").Return(nil, domain.ErrNotFound).Once()

		status, raw := s.request(http.MethodPost, "/accounts/v1/accounts/transfer",
			`{"sourceAccountNumber":"77000000000040","destinationAccountNumber":"77000000000041","amount":5}`)

		s.Equal(fiber.StatusNotFound, status)
		s.Equal("destination account number 77000000000041 was not found", s.errorMessage(raw))
	})
}

func (s *AccountHandlersTestSuite) TestGetTransactions() {
	acc := newAccount(s.T(), "77000000000050", "10", accountdomain.StatusClosed)
	tx := accountdomain.NewTransactionFromData(uuid.New(), acc.ID, uuid.New(), money.MustParse("1.5"),
		time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	s.accountRepo.EXPECT().GetByNumber(mock.Anything, acc.Number).Return(acc, nil).Once()
	s.txRepo.EXPECT().ListByAccount(mock.Anything, acc.ID).Return([]*accountdomain.Transaction{tx}, nil).Once()

	status, raw := s.request(http.MethodGet, "/accounts/v1/accounts/77000000000050/transactions", "")

	s.Equal(fiber.StatusOK, status)
	s.Contains(string(raw), `"amount":1.500`)
	s.Contains(string(raw), `"createdAt":"2024-01-02T03:04:05Z"`)
}
