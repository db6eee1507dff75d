package user

import (
	"time"
	"unicode/utf8"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/utils"
	"github.com/google/uuid"
)

const (
	// MinUsernameLength is the shortest accepted username.
	MinUsernameLength = 5
	// MaxUsernameLength is the longest accepted username.
	MaxUsernameLength = 11
)

// ErrInvalidCredentials is returned on a failed login. It does not say which part was wrong.
var ErrInvalidCredentials = domain.NewError(domain.ErrUnauthorized, "invalid username or password")

// User is the identity anchor that owns accounts and a KYC profile.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created"`
}

// NewUser validates the username and returns a User with a hashed password.
func NewUser(username, password string) (*User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, domain.NewError(domain.ErrInvalidArgument, "%s", err.Error())
	}
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewUserFromData creates a User from raw data (used for DB hydration).
func NewUserFromData(id uuid.UUID, username, password string, created time.Time) *User {
	return &User{
		ID:        id,
		Username:  username,
		Password:  password,
		CreatedAt: created,
	}
}

// ValidateUsername enforces the length bounds, counted in characters.
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	switch {
	case n > MaxUsernameLength:
		return domain.NewError(domain.ErrInvalidArgument, "Username '%s' is too long.", username)
	case n < MinUsernameLength:
		return domain.NewError(domain.ErrInvalidArgument, "Username '%s' is too short.", username)
	}
	return nil
}

// UsernameTaken is returned when registering a name that already exists.
func UsernameTaken(username string) error {
	return domain.NewError(domain.ErrConflict, "Username '%s' is already taken.", username)
}

// NotFound is returned when a user id does not resolve.
func NotFound(id uuid.UUID) error {
	return domain.NewError(domain.ErrNotFound, "User with ID %s was not found", id)
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return utils.CheckPasswordHash(password, u.Password)
}
