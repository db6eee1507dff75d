package account

import (
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/middleware"
	accountsvc "github.com/amirasaad/banking/pkg/service/account"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the account endpoints under /accounts/v1.
//
// Routes:
//   - GET    /accounts/v1/accounts                               : List active accounts.
//   - POST   /accounts/v1/accounts                               : Open an account for a user.
//   - POST   /accounts/v1/accounts/transfer                      : Move funds between two accounts.
//   - POST   /accounts/v1/accounts/:accountNumber/close          : Close an account.
//   - GET    /accounts/v1/accounts/:accountNumber/transactions   : List the ledger entries of an account.
func Routes(app fiber.Router, accountSvc *accountsvc.Service, cfg *config.App) {
	group := app.Group("/accounts/v1/accounts", middleware.Authenticated(cfg.Auth))
	group.Get("/", ListAccounts(accountSvc))
	group.Post("/", CreateAccount(accountSvc))
	group.Post("/transfer", Transfer(accountSvc))
	group.Post("/:accountNumber/close", CloseAccount(accountSvc))
	group.Get("/:accountNumber/transactions", GetTransactions(accountSvc))
}

// ListAccounts returns a Fiber handler listing every active account.
// @Summary List active accounts
// @Description Returns a summary of every active account. Closed accounts are omitted.
// @Tags accounts
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 429 {object} common.ErrorResponse "Too many requests"
// @Failure 500 {object} common.ErrorResponse "Internal server error"
// @Router /accounts/v1/accounts [get]
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := accountSvc.ListActiveAccounts(c.UserContext())
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return c.JSON(ListResponse{Accounts: ToSummaries(accounts)})
	}
}

// CreateAccount returns a Fiber handler for opening a new account.
// @Summary Open an account
// @Description Opens an active account for an existing user. The initial balance must be between 10 and 1,000,000 and a user may hold at most 5 active accounts.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 200 {object} Summary
// @Failure 400 {object} common.ErrorResponse "Invalid balance or account limit reached"
// @Failure 404 {object} common.ErrorResponse "User not found"
// @Failure 429 {object} common.ErrorResponse "Too many requests"
// @Failure 500 {object} common.ErrorResponse "Internal server error"
// @Router /accounts/v1/accounts [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		acc, err := accountSvc.CreateAccount(c.UserContext(), input.UserID, input.InitialBalance, input.Name)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		log.Infof("Account %s opened for user %s", acc.Number, acc.UserID)
		return c.JSON(ToSummary(acc))
	}
}

// CloseAccount returns a Fiber handler for closing an account. Closing an
// already closed account succeeds.
// @Summary Close an account
// @Tags accounts
// @Param accountNumber path string true "Account number"
// @Success 204 "Closed"
// @Failure 404 {object} common.ErrorResponse "Account not found"
// @Failure 429 {object} common.ErrorResponse "Too many requests"
// @Failure 500 {object} common.ErrorResponse "Internal server error"
// @Router /accounts/v1/accounts/{accountNumber}/close [post]
func CloseAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := accountSvc.CloseAccount(c.UserContext(), c.Params("accountNumber")); err != nil {
			return common.ProblemJSON(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Transfer returns a Fiber handler for moving funds between two accounts.
// @Summary Transfer funds
// @Description Debits the source account and credits the destination account atomically. Returns the new source balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} common.ErrorResponse "Closed account, insufficient funds, non-positive amount or same account"
// @Failure 404 {object} common.ErrorResponse "Source or destination not found"
// @Failure 429 {object} common.ErrorResponse "Too many requests"
// @Failure 500 {object} common.ErrorResponse "Internal server error"
// @Router /accounts/v1/accounts/transfer [post]
func Transfer(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		balance, err := accountSvc.TransferFunds(
			c.UserContext(),
			input.SourceAccountNumber,
			input.DestinationAccountNumber,
			input.Amount,
		)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return c.JSON(TransferResponse{NewBalance: balance})
	}
}

// GetTransactions returns a Fiber handler listing the ledger entries of an account.
// @Summary List account transactions
// @Description Returns every transfer in which the account took part, newest first. Works for closed accounts too.
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} HistoryResponse
// @Failure 404 {object} common.ErrorResponse "Account not found"
// @Failure 500 {object} common.ErrorResponse "Internal server error"
// @Router /accounts/v1/accounts/{accountNumber}/transactions [get]
func GetTransactions(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, err := accountSvc.History(c.UserContext(), c.Params("accountNumber"))
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return c.JSON(HistoryResponse{Transactions: ToTransactionDTOs(txs)})
	}
}
