package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/user"
	"codergrounds/internal/infrastructure/auth"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

// TokenIssuer mints access/refresh token pairs for a user.
type TokenIssuer interface {
	GeneratePair(u *user.User) (*auth.TokenPair, error)
}

// AuthResult is the outcome of any use case that establishes a session.
type AuthResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RegisterCommand struct {
	Email    string
	Username string
	Password string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("user with this email already exists")
	}

	existing, err = uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("user with this username already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	avatarURL := user.DefaultAvatarURL(cmd.Username)
	newUser := &user.User{
		Email:        cmd.Email,
		Username:     cmd.Username,
		PasswordHash: &hash,
		AvatarURL:    &avatarURL,
		Provider:     user.ProviderEmail,
		TokenVersion: 1,
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("user with this email or username already exists")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := uc.tokens.GeneratePair(newUser)
	if err != nil {
		uc.logger.Errorw("failed to generate token pair", "error", err, "user_id", newUser.ID)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID, "username", newUser.Username)

	return &AuthResult{
		User:         newUser,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
