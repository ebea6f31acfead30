package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-passw0rd", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, hasher.Verify("s3cret-passw0rd", hash))
	assert.Error(t, hasher.Verify("wrong-password", hash))
}

func TestBcryptPasswordHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("same-password")
	require.NoError(t, err)
	h2, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.NoError(t, hasher.Verify("same-password", h1))
	assert.NoError(t, hasher.Verify("same-password", h2))
}

func TestBcryptPasswordHasher_CostOutOfRangeFallsBack(t *testing.T) {
	low := NewBcryptPasswordHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, low.cost)

	high := NewBcryptPasswordHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, high.cost)

	ok := NewBcryptPasswordHasher(12)
	assert.Equal(t, 12, ok.cost)
}

func TestBcryptPasswordHasher_VerifyMalformedHash(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)
	assert.Error(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
	assert.Error(t, hasher.Verify("anything", ""))
}
