// Package user exposes user registration.
package user

import (
	usersvc "github.com/amirasaad/banking/pkg/service/user"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the user endpoints under /users/v1.
func Routes(app fiber.Router, userSvc *usersvc.Service) {
	app.Post("/users/v1/register", Register(userSvc))
}

// Register returns a Fiber handler that creates a user.
// @Summary Register a user
// @Description Creates a user. Usernames must be unique and between 5 and 11 characters long.
// @Tags users
// @Accept json
// @Param request body RegisterRequest true "Credentials"
// @Success 200 "Registered"
// @Failure 400 {object} common.ErrorResponse "Username taken, too short or too long"
// @Failure 429 {object} common.ErrorResponse "Too many requests"
// @Failure 500 {object} common.ErrorResponse "Internal server error"
// @Router /users/v1/register [post]
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err // error response already written
		}
		u, err := userSvc.Register(c.UserContext(), input.Username, input.Password)
		if err != nil {
			return common.ProblemJSON(c, err)
		}
		log.Infof("User %s registered", u.ID)
		return c.SendStatus(fiber.StatusOK)
	}
}
