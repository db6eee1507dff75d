package user

import (
	"testing"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("testuser", "password123")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "testuser", u.Username)
	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, u.CheckPassword("password123"))
	assert.False(t, u.CheckPassword("password124"))
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		wantErr string
	}{
		{"abcd", "Username 'abcd' is too short."},
		{"abcde", ""},
		{"abcdefghijk", ""},
		{"abcdefghijkl", "Username 'abcdefghijkl' is too long."},
		{"", "Username '' is too short."},
		{"محمدعل", ""},
		{"José_Núñez", ""},
		{"Ünïcödé_Ñämé", "Username 'Ünïcödé_Ñämé' is too long."},
		{"عليّ", "Username 'عليّ' is too short."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateUsername(tt.name)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestUsernameTaken(t *testing.T) {
	t.Parallel()
	err := UsernameTaken("testuser")
	assert.EqualError(t, err, "Username 'testuser' is already taken.")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
