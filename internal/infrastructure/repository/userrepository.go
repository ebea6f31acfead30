package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"codergrounds/internal/domain/user"
	"codergrounds/internal/infrastructure/persistence/models"
	"codergrounds/internal/shared/db"
	"codergrounds/internal/shared/logger"
)

// UserRepository implements user.Repository on gorm.
type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     database,
		logger: logger,
	}
}

// conn returns the transaction bound to the context, or the base connection.
func (r *UserRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	model := models.UserModelFromEntity(entity)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	entity.ID = model.ID
	entity.CreatedAt = model.CreatedAt
	entity.UpdatedAt = model.UpdatedAt
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	var model models.UserModel

	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.ToEntity(), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.conn(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.ToEntity(), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel

	if err := r.conn(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by username", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.ToEntity(), nil
}

// GetByEmailOrUsername retrieves a user matching the identifier on either column
func (r *UserRepository) GetByEmailOrUsername(ctx context.Context, identifier string) (*user.User, error) {
	var model models.UserModel

	err := r.conn(ctx).
		Where("email = ? OR username = ?", identifier, identifier).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by identifier", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.ToEntity(), nil
}

// Update updates an existing user
func (r *UserRepository) Update(ctx context.Context, entity *user.User) error {
	model := models.UserModelFromEntity(entity)

	result := r.conn(ctx).Model(&models.UserModel{}).
		Where("id = ?", entity.ID).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"username":      model.Username,
			"password_hash": model.PasswordHash,
			"avatar_url":    model.AvatarURL,
			"provider":      model.Provider,
			"token_version": model.TokenVersion,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", entity.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}
