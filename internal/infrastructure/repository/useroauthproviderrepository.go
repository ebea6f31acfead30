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

// UserOAuthProviderRepository implements user.OAuthLinkRepository on gorm.
type UserOAuthProviderRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUserOAuthProviderRepository creates a new provider link repository
func NewUserOAuthProviderRepository(database *gorm.DB, logger logger.Interface) user.OAuthLinkRepository {
	return &UserOAuthProviderRepository{
		db:     database,
		logger: logger,
	}
}

func (r *UserOAuthProviderRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new provider link
func (r *UserOAuthProviderRepository) Create(ctx context.Context, link *user.OAuthProviderLink) error {
	model := models.UserOAuthProviderModelFromEntity(link)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create provider link: %w", err)
	}

	link.ID = model.ID
	link.CreatedAt = model.CreatedAt
	link.UpdatedAt = model.UpdatedAt
	return nil
}

// GetByProviderAndUserID retrieves a link by external identity
func (r *UserOAuthProviderRepository) GetByProviderAndUserID(ctx context.Context, provider, providerUserID string) (*user.OAuthProviderLink, error) {
	var model models.UserOAuthProviderModel

	err := r.conn(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get provider link", "provider", provider, "error", err)
		return nil, fmt.Errorf("failed to get provider link: %w", err)
	}

	return model.ToEntity(), nil
}

// ListByUserID retrieves all links for a user
func (r *UserOAuthProviderRepository) ListByUserID(ctx context.Context, userID string) ([]*user.OAuthProviderLink, error) {
	var linkModels []*models.UserOAuthProviderModel

	if err := r.conn(ctx).Where("user_id = ?", userID).Find(&linkModels).Error; err != nil {
		r.logger.Errorw("failed to list provider links", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list provider links: %w", err)
	}

	links := make([]*user.OAuthProviderLink, 0, len(linkModels))
	for _, model := range linkModels {
		links = append(links, model.ToEntity())
	}
	return links, nil
}
