package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	infraauth "codergrounds/internal/infrastructure/auth"
	apperrors "codergrounds/internal/shared/errors"
)

func newRegisterUseCase(repo *fakeUserRepo) *RegisterUseCase {
	hasher := infraauth.NewBcryptPasswordHasher(bcrypt.MinCost)
	return NewRegisterUseCase(repo, hasher, newTestTokenService(), newNopLogger())
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newRegisterUseCase(repo)

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "grace@example.com",
		Username: "grace-hopper",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, 1, result.User.TokenVersion)
	assert.Equal(t, "grace-hopper", result.User.Username)

	// The stored hash must verify but never equal the plaintext.
	require.NotNil(t, result.User.PasswordHash)
	assert.NotEqual(t, "correct horse battery", *result.User.PasswordHash)
	hasher := infraauth.NewBcryptPasswordHasher(bcrypt.MinCost)
	assert.NoError(t, hasher.Verify("correct horse battery", *result.User.PasswordHash))

	require.NotNil(t, result.User.AvatarURL)
	assert.Contains(t, *result.User.AvatarURL, "dicebear.com")
	assert.Contains(t, *result.User.AvatarURL, "grace-hopper")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "")
	uc := newRegisterUseCase(repo)

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "ada@example.com",
		Username: "someone-else",
		Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "")
	uc := newRegisterUseCase(repo)

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "other@example.com",
		Username: "ada-lovelace",
		Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestRegister_TokensCarryIdentity(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newRegisterUseCase(repo)

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:    "linus@example.com",
		Username: "torvalds",
		Password: "password123",
	})
	require.NoError(t, err)

	claims, err := newTestTokenService().VerifyAccess(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "torvalds", claims.Username)
	assert.Equal(t, "linus@example.com", claims.UserEmail)
	assert.Equal(t, 1, claims.TokenVersion)
}
