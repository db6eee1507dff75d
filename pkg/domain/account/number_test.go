package account

import (
	"bytes"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numberPattern = regexp.MustCompile(`^77\d{12}$`)

func TestNumberGenerator_Format(t *testing.T) {
	t.Parallel()
	gen := DefaultNumberGenerator()
	for range 200 {
		n, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, numberPattern, n)
		assert.True(t, IsValidNumber(n))
	}
}

func TestNumberGenerator_Concurrent(t *testing.T) {
	t.Parallel()
	gen := DefaultNumberGenerator()
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]struct{})
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				n, err := gen.Generate()
				assert.NoError(t, err)
				mu.Lock()
				seen[n] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	// 400 draws from 10^12 values; a repeat would point at a broken source.
	assert.Len(t, seen, 400)
}

func TestNumberGenerator_DeterministicReader(t *testing.T) {
	t.Parallel()
	gen := NewNumberGenerator(bytes.NewReader(bytes.Repeat([]byte{0}, 64)))
	n, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "77000000000000", n)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestNumberGenerator_ReaderError(t *testing.T) {
	t.Parallel()
	_, err := NewNumberGenerator(failingReader{}).Generate()
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestIsValidNumber(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidNumber("77123456789012"))
	assert.False(t, IsValidNumber("78123456789012"))
	assert.False(t, IsValidNumber("7712345678901"))
	assert.False(t, IsValidNumber("771234567890123"))
	assert.False(t, IsValidNumber("7712345678901a"))
	assert.False(t, IsValidNumber(""))
}
