// Package middleware holds fiber middleware shared by the HTTP routes.
package middleware

import (
	"strings"

	"github.com/amirasaad/banking/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const malformedJWT = "missing or malformed JWT"

// JwtProtected rejects requests without a valid HS256 bearer token.
// The parsed token is stored in c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	secret := ""
	if cfg != nil {
		secret = cfg.Secret
	}
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(secret),
		},
		ErrorHandler: jwtError,
	})
}

// Authenticated applies JwtProtected when cfg.Required is set and is a
// pass-through otherwise.
func Authenticated(cfg *config.Auth) fiber.Handler {
	if cfg == nil || !cfg.Required {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return JwtProtected(cfg.Jwt)
}

// Token returns the token stored by JwtProtected, if any.
func Token(c *fiber.Ctx) (*jwt.Token, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	return token, ok
}

func jwtError(c *fiber.Ctx, err error) error {
	if strings.EqualFold(err.Error(), malformedJWT) {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "Missing or malformed JWT"})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"error": "Invalid or expired JWT"})
}
