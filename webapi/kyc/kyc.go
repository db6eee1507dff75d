// Package kyc exposes the KYC profile endpoints.
package kyc

import (
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/middleware"
	kycsvc "github.com/amirasaad/banking/pkg/service/kyc"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the KYC endpoints under /users/v1/kyc.
func Routes(app fiber.Router, kycSvc *kycsvc.Service, cfg *config.App) {
	group := app.Group("/users/v1/kyc", middleware.Authenticated(cfg.Auth))
	group.Get("/:userId", GetProfile(kycSvc))
	group.Post("/", UpsertProfile(kycSvc))
}

// GetProfile returns a Fiber handler for reading the KYC profile of a user.
// @Summary Get KYC profile
// @Tags kyc
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} common.ErrorResponse "Invalid user ID"
// @Failure 404 {object} common.ErrorResponse "Profile not found"
// @Failure 429 {object} common.ErrorResponse "Too many requests"
// @Failure 500 {object} common.ErrorResponse "Internal server error"
// @Router /users/v1/kyc/{userId} [get]
func GetProfile(kycSvc *kycsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("userId"))
		if err != nil {
			return common.ErrorJSON(c, fiber.StatusBadRequest, "user ID must be a valid UUID")
		}
		p, err := kycSvc.GetProfile(c.UserContext(), userID)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return c.JSON(ToProfileResponse(p))
	}
}

// UpsertProfile returns a Fiber handler that creates or replaces a KYC profile.
// @Summary Save KYC profile
// @Description Creates the profile of a user, or replaces it when one exists. The user must be at least 18 and earn between 100 and 1,000,000.
// @Tags kyc
// @Accept json
// @Produce json
// @Param request body UpsertProfileRequest true "Profile details"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} common.ErrorResponse "Underage or salary out of range"
// @Failure 404 {object} common.ErrorResponse "User not found"
// @Failure 429 {object} common.ErrorResponse "Too many requests"
// @Failure 500 {object} common.ErrorResponse "Internal server error"
// @Router /users/v1/kyc [post]
func UpsertProfile(kycSvc *kycsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpsertProfileRequest](c)
		if input == nil {
			return err // error response already written
		}
		p, err := kycSvc.UpsertProfile(c.UserContext(), input.UserID, input.Details())
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return c.JSON(ToProfileResponse(p))
	}
}
