package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashIsSaltedAndVerifies(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("12345678")
	require.NoError(t, err)
	b, err := h.Hash("12345678")
	require.NoError(t, err)

	assert.NotEqual(t, "12345678", a)
	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify(a, "12345678"))
	assert.True(t, h.Verify(b, "12345678"))
	assert.False(t, h.Verify(a, "12345679"))
	assert.False(t, h.Verify("not-a-hash", "12345678"))
}

func TestNewHasherClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(99).Cost)
	assert.Equal(t, 12, NewHasher(12).Cost)
}

func TestHashTooLong(t *testing.T) {
	_, err := NewHasher(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrTooLong)
}
