package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCheck(t *testing.T) {
	h := newTestHasher()

	hash, err := h.Hash("pw1-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1-secret", hash)

	assert.True(t, h.Check("pw1-secret", hash))
	assert.False(t, h.Check("wrong", hash))
}

func TestPasswordHasher_SaltsEveryHash(t *testing.T) {
	h := newTestHasher()

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPasswordHasher_MalformedDigestFailsClosed(t *testing.T) {
	h := newTestHasher()

	for _, digest := range []string{"", "invalidhash", "$2a$10$short"} {
		assert.False(t, h.Check("anything", digest), "digest %q", digest)
	}
}

func TestNewPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(99).cost)
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
}
