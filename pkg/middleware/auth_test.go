package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func protectedApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(h)
	app.Get("/", func(c *fiber.Ctx) error {
		if token, ok := Token(c); ok {
			claims := token.Claims.(jwt.MapClaims)
			return c.SendString(claims["username"].(string))
		}
		return c.SendString("anonymous")
	})
	return app
}

func signedToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "testuser",
		"exp":      exp.Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func do(t *testing.T, app *fiber.App, token string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestJwtProtected(t *testing.T) {
	app := protectedApp(JwtProtected(&config.Jwt{Secret: testSecret}))

	t.Run("missing token", func(t *testing.T) {
		resp, body := do(t, app, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "Missing or malformed JWT")
	})

	t.Run("valid token", func(t *testing.T) {
		resp, body := do(t, app, signedToken(t, testSecret, time.Now().Add(time.Hour)))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "testuser", body)
	})

	t.Run("wrong secret", func(t *testing.T) {
		resp, _ := do(t, app, signedToken(t, "other", time.Now().Add(time.Hour)))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired", func(t *testing.T) {
		resp, _ := do(t, app, signedToken(t, testSecret, time.Now().Add(-time.Hour)))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthenticated(t *testing.T) {
	t.Run("not required passes through", func(t *testing.T) {
		app := protectedApp(Authenticated(&config.Auth{Required: false, Jwt: &config.Jwt{Secret: testSecret}}))
		resp, body := do(t, app, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "anonymous", body)
	})

	t.Run("required rejects anonymous", func(t *testing.T) {
		app := protectedApp(Authenticated(&config.Auth{Required: true, Jwt: &config.Jwt{Secret: testSecret}}))
		resp, _ := do(t, app, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestJwtError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"malformed", errors.New("Missing or malformed JWT"), fiber.StatusBadRequest, "Missing or malformed JWT"},
		{"anything else", errors.New("token is expired"), fiber.StatusUnauthorized, "Invalid or expired JWT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(func(c *fiber.Ctx) error { return jwtError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close() //nolint: errcheck

			var got map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.body, got["error"])
		})
	}
}
