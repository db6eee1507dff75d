// Package webapi wires the HTTP surface of the banking service.
// It is organized into sub-packages per area:
// - account: account listing, opening, closing, transfers and history
// - kyc: KYC profile endpoints
// - user: registration
// - auth: login
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/banking/pkg/app"
	accountweb "github.com/amirasaad/banking/webapi/account"
	authweb "github.com/amirasaad/banking/webapi/auth"
	"github.com/amirasaad/banking/webapi/common"
	kycweb "github.com/amirasaad/banking/webapi/kyc"
	userweb "github.com/amirasaad/banking/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code != fiber.StatusInternalServerError {
				return common.ErrorJSON(c, fe.Code, fe.Message)
			}
			return common.ProblemJSON(c, err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	if rl := a.Config.RateLimit; rl != nil && rl.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          rl.MaxRequests,
			Expiration:   rl.Window,
			KeyGenerator: clientKey,
			LimitReached: func(c *fiber.Ctx) error {
				return common.ErrorJSON(c, fiber.StatusTooManyRequests, "rate limit exceeded")
			},
		}))
	}
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Banking API is running! 🚀")
	})
	fiberApp.Get("/hello", func(c *fiber.Ctx) error {
		return c.SendString("Hello World")
	})

	accountweb.Routes(fiberApp, a.AccountService, a.Config)
	kycweb.Routes(fiberApp, a.KYCService, a.Config)
	userweb.Routes(fiberApp, a.UserService)
	authweb.Routes(fiberApp, a.AuthService)
	return fiberApp
}

// clientKey identifies the caller for rate limiting. Behind a proxy the first
// X-Forwarded-For hop wins, then X-Real-IP, then the socket address.
func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get(fiber.HeaderXForwardedFor); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
