package account

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	// NumberPrefix starts every account number.
	NumberPrefix = "77"
	// NumberLength is the total number of digits in an account number.
	NumberLength = 14

	randomDigits = NumberLength - len(NumberPrefix)
)

var ten = big.NewInt(10)

// NumberGenerator draws account numbers from a cryptographically secure source.
// It is safe for concurrent use when its reader is.
type NumberGenerator struct {
	r io.Reader
}

var defaultNumberGenerator = NewNumberGenerator(rand.Reader)

// NewNumberGenerator returns a generator reading entropy from r.
func NewNumberGenerator(r io.Reader) *NumberGenerator {
	return &NumberGenerator{r: r}
}

// DefaultNumberGenerator returns the process-wide generator backed by crypto/rand.
func DefaultNumberGenerator() *NumberGenerator {
	return defaultNumberGenerator
}

// Generate returns NumberPrefix followed by randomDigits uniformly drawn digits.
// Uniqueness is not checked here.
func (g *NumberGenerator) Generate() (string, error) {
	var sb strings.Builder
	sb.Grow(NumberLength)
	sb.WriteString(NumberPrefix)
	for range randomDigits {
		n, err := rand.Int(g.r, ten)
		if err != nil {
			return "", fmt.Errorf("draw account number digit: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}

// IsValidNumber reports whether s has the account number shape.
func IsValidNumber(s string) bool {
	if len(s) != NumberLength || !strings.HasPrefix(s, NumberPrefix) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
