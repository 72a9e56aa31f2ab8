package dispatch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDv7Generator_ProducesValidV7(t *testing.T) {
	gen := UUIDv7Generator{}

	token := gen.Generate()
	parsed, err := uuid.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDv7Generator_TokensAreUnique(t *testing.T) {
	gen := UUIDv7Generator{}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := gen.Generate()
		assert.False(t, seen[token], "token %s repeated", token)
		seen[token] = true
	}
}

func TestFixedGenerator_ReturnsTokensInOrder(t *testing.T) {
	gen := NewFixedGenerator("t-1", "t-2")

	assert.Equal(t, "t-1", gen.Generate())
	assert.Equal(t, "t-2", gen.Generate())
}

func TestFixedGenerator_PanicsWhenExhausted(t *testing.T) {
	gen := NewFixedGenerator("t-1")
	gen.Generate()

	assert.Panics(t, func() { gen.Generate() })
}
