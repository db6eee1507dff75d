package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()
	other := errors.New("connection refused")

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{name: "nil error returns nil", input: nil, expected: nil},
		{name: "duplicate key maps to ErrAlreadyExists", input: gorm.ErrDuplicatedKey, expected: domain.ErrAlreadyExists},
		{name: "record not found maps to ErrNotFound", input: gorm.ErrRecordNotFound, expected: domain.ErrNotFound},
		{
			name:     "wrapped duplicate key maps correctly",
			input:    errors.Join(errors.New("outer error"), gorm.ErrDuplicatedKey),
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "wrapped record not found maps correctly",
			input:    fmt.Errorf("get account: %w", gorm.ErrRecordNotFound),
			expected: domain.ErrNotFound,
		},
		{
			name:     "pg unique violation maps to ErrAlreadyExists",
			input:    fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "other pg error is unchanged",
			input:    &pgconn.PgError{Code: "40001"},
			expected: nil,
		},
		{name: "non-GORM error returns original", input: other, expected: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapGormErrorToDomain(tt.input)
			switch {
			case tt.input == nil:
				assert.NoError(t, result)
			case tt.expected == nil:
				assert.Equal(t, tt.input, result)
			default:
				assert.ErrorIs(t, result, tt.expected)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrRecordNotFound }), domain.ErrNotFound)
}
