// Package auth issues JWTs for registered users.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/domain/user"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/amirasaad/banking/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims issued on login.
type Claims struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
	jwt.RegisteredClaims
}

type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
	now    func() time.Time
}

func NewService(uow repository.UnitOfWork, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger.With("service", "auth"), now: time.Now}
}

// dummyHash is compared against when the user does not exist so that both
// failure paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	h, _ := utils.HashPassword("not-a-real-password")
	return h
})

// Login checks the credentials and returns the user. Both an unknown user
// and a wrong password yield user.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*user.User, error) {
	log := s.logger.With("operation", "Login", "username", username)

	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}
	u, err := repo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		_ = utils.CheckPasswordHash(password, dummyHash())
		log.Info("Login failed: unknown user")
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	if !u.CheckPassword(password) {
		log.Info("Login failed: wrong password")
		return nil, user.ErrInvalidCredentials
	}
	log.Info("Login successful", "user_id", u.ID)
	return u, nil
}

// GenerateToken signs an HS256 token for u.
func (s *Service) GenerateToken(u *user.User) (string, error) {
	now := s.now()
	claims := Claims{
		Username: u.Username,
		UserID:   u.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "user_id", u.ID, "error", err)
		return "", err
	}
	return token, nil
}

// ParseToken validates a token issued by GenerateToken and returns its user id.
func (s *Service) ParseToken(tokenString string) (uuid.UUID, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return uuid.Nil, domain.NewError(domain.ErrUnauthorized, "invalid token")
	}
	return uuid.Parse(claims.UserID)
}
