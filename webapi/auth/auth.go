// Package auth exposes the login endpoint.
package auth

import (
	authsvc "github.com/amirasaad/banking/pkg/service/auth"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the auth endpoints under /auth/v1.
func Routes(app fiber.Router, authSvc *authsvc.Service) {
	app.Post("/auth/v1/login", Login(authSvc))
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate with username and password. The token goes in the Authorization header as "Bearer <token>".
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 429 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /auth/v1/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // error response already written
		}
		u, err := authSvc.Login(c.UserContext(), input.Username, input.Password)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		return c.JSON(TokenResponse{Token: token})
	}
}
