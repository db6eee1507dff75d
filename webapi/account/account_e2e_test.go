package account_test

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/banking/pkg/domain/money"
	"github.com/amirasaad/banking/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AccountE2ETestSuite struct {
	testutils.E2ETestSuite
	userID uuid.UUID
}

func TestAccountE2ETestSuite(t *testing.T) {
	suite.Run(t, new(AccountE2ETestSuite))
}

func (s *AccountE2ETestSuite) SetupTest() {
	s.ResetDB()
	s.userID = s.CreateTestUser().ID
}

func (s *AccountE2ETestSuite) balanceOf(number string) money.Amount {
	var out struct {
		Accounts []struct {
			AccountNumber string       `json:"accountNumber"`
			Balance       money.Amount `json:"balance"`
		} `json:"accounts"`
	}
	s.DecodeJSON(s.MakeRequest(http.MethodGet, "/accounts/v1/accounts", "", ""), &out)
	for _, a := range out.Accounts {
		if a.AccountNumber == number {
			return a.Balance
		}
	}
	s.FailNow("account not listed", number)
	return money.Zero
}

func (s *AccountE2ETestSuite) transfer(src, dst, amount string) (int, map[string]any) {
	body := fmt.Sprintf(`{"sourceAccountNumber":"%s","destinationAccountNumber":"%s","amount":%s}`, src, dst, amount)
	resp := s.MakeRequest(http.MethodPost, "/accounts/v1/accounts/transfer", body, "")
	var out map[string]any
	s.DecodeJSON(resp, &out)
	return resp.StatusCode, out
}

func (s *AccountE2ETestSuite) TestCreateAccount_Scenarios() {
	number := s.CreateAccount(s.userID, "777.777")
	s.Regexp(regexp.MustCompile(`^77\d{12}$`), number)
	s.Equal("777.777", s.balanceOf(number).String())

	resp := s.MakeRequest(http.MethodPost, "/accounts/v1/accounts",
		fmt.Sprintf(`{"userId":"%s","initialBalance":0.0,"name":"x"}`, s.userID), "")
	var body map[string]string
	s.DecodeJSON(resp, &body)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("Initial balance must be between 10 and 1,000,000 KD", body["error"])
}

func (s *AccountE2ETestSuite) TestActiveAccountCap() {
	for range 5 {
		s.CreateAccount(s.userID, "10")
	}
	resp := s.MakeRequest(http.MethodPost, "/accounts/v1/accounts",
		fmt.Sprintf(`{"userId":"%s","initialBalance":10}`, s.userID), "")
	var body map[string]string
	s.DecodeJSON(resp, &body)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("user has reached the maximum limit of 5 active accounts", body["error"])
}

func (s *AccountE2ETestSuite) TestTransfer_Scenarios() {
	src := s.CreateAccount(s.userID, "100.000")
	dst := s.CreateAccount(s.userID, "990.000")

	status, out := s.transfer(src, dst, "50.000")
	s.Equal(fiber.StatusOK, status)
	s.InDelta(50.0, out["newBalance"], 0.0001)
	s.Equal("1040.000", s.balanceOf(dst).String())

	status, out = s.transfer(src, src, "1")
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("you can't transfer to the same account...", out["error"])

	resp := s.MakeRequest(http.MethodPost, "/accounts/v1/accounts/"+src+"/close", "", "")
	_ = resp.Body.Close()
	s.Equal(fiber.StatusNoContent, resp.StatusCode)

	status, out = s.transfer(src, dst, "1")
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("source account is closed", out["error"])

	var history struct {
		Transactions []map[string]any `json:"transactions"`
	}
	s.DecodeJSON(s.MakeRequest(http.MethodGet, "/accounts/v1/accounts/"+src+"/transactions", "", ""), &history)
	s.Len(history.Transactions, 1)
}

func (s *AccountE2ETestSuite) TestCloseIsIdempotent() {
	number := s.CreateAccount(s.userID, "10")
	for range 2 {
		resp := s.MakeRequest(http.MethodPost, "/accounts/v1/accounts/"+number+"/close", "", "")
		_ = resp.Body.Close()
		s.Equal(fiber.StatusNoContent, resp.StatusCode)
	}

	var status string
	s.Require().NoError(s.DB.Raw("SELECT status FROM accounts WHERE account_number = ?", number).Scan(&status).Error)
	s.Equal("closed", status)
}

func (s *AccountE2ETestSuite) TestConcurrentTransfersConserveMoney() {
	a := s.CreateAccount(s.userID, "1000")
	b := s.CreateAccount(s.userID, "1000")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src, dst := a, b
			if i%2 == 1 {
				src, dst = b, a
			}
			// Opposite directions lock the same two rows; ascending-id locking keeps this deadlock free.
			_, err := s.Core.AccountService.TransferFunds(ctx, src, dst, money.MustParse("7.5"))
			s.NoError(err)
		}()
	}
	wg.Wait()

	total := s.balanceOf(a).Add(s.balanceOf(b))
	s.Equal("2000.000", total.String())

	var count int64
	s.Require().NoError(s.DB.Table("transactions").Count(&count).Error)
	s.Equal(int64(40), count)
}

func (s *AccountE2ETestSuite) TestConcurrentOverdraftNeverGoesNegative() {
	a := s.CreateAccount(s.userID, "100")
	b := s.CreateAccount(s.userID, "10")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Core.AccountService.TransferFunds(context.Background(), a, b, money.MustParse("30")); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(3, succeeded)
	s.Equal("10.000", s.balanceOf(a).String())
	s.Equal("100.000", s.balanceOf(b).String())
}

func (s *AccountE2ETestSuite) TestConcurrentOpeningsRespectCapAndUniqueNumbers() {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = map[string]bool{}
	)
	for range 12 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc, err := s.Core.AccountService.CreateAccount(context.Background(), s.userID, money.FromInt(10), "race")
			if err == nil {
				mu.Lock()
				numbers[acc.Number] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Len(numbers, 5)
	var active int64
	s.Require().NoError(s.DB.Table("accounts").Where("user_id = ? AND status = 'active'", s.userID).Count(&active).Error)
	s.Equal(int64(5), active)
}

func (s *AccountE2ETestSuite) TestKYCUpsertKeepsOneProfile() {
	for _, salary := range []string{"500", "900"} {
		resp := s.MakeRequest(http.MethodPost, "/users/v1/kyc",
			fmt.Sprintf(`{"userId":"%s","firstName":"Jane","lastName":"Doe","dateOfBirth":"1990-01-01","salary":%s}`, s.userID, salary), "")
		_ = resp.Body.Close()
		s.Equal(fiber.StatusOK, resp.StatusCode)
	}

	var count int64
	s.Require().NoError(s.DB.Table("kyc_profiles").Where("user_id = ?", s.userID).Count(&count).Error)
	s.Equal(int64(1), count)

	var profile map[string]any
	s.DecodeJSON(s.MakeRequest(http.MethodGet, "/users/v1/kyc/"+s.userID.String(), "", ""), &profile)
	s.InDelta(900.0, profile["salary"], 0.0001)

	dob := time.Now().AddDate(-3, 0, 0).Format("2006-01-02")
	resp := s.MakeRequest(http.MethodPost, "/users/v1/kyc",
		fmt.Sprintf(`{"userId":"%s","firstName":"Kid","lastName":"Doe","dateOfBirth":"%s","salary":500}`, s.userID, dob), "")
	var body map[string]string
	s.DecodeJSON(resp, &body)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("you must be 18 or older to register", body["error"])
}
