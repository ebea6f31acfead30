package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"codergrounds/internal/domain/playground"
	"codergrounds/internal/infrastructure/persistence/models"
	"codergrounds/internal/shared/db"
	"codergrounds/internal/shared/logger"
)

// PlaygroundRepository implements playground.Repository on gorm.
type PlaygroundRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewPlaygroundRepository creates a new playground repository
func NewPlaygroundRepository(database *gorm.DB, logger logger.Interface) playground.Repository {
	return &PlaygroundRepository{
		db:     database,
		logger: logger,
	}
}

func (r *PlaygroundRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new playground
func (r *PlaygroundRepository) Create(ctx context.Context, pg *playground.Playground) error {
	model := models.PlaygroundModelFromEntity(pg)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create playground", "error", err)
		return fmt.Errorf("failed to create playground: %w", err)
	}

	pg.ID = model.ID
	pg.CreatedAt = model.CreatedAt
	pg.UpdatedAt = model.UpdatedAt
	return nil
}

// GetByID retrieves a playground by ID
func (r *PlaygroundRepository) GetByID(ctx context.Context, id string) (*playground.Playground, error) {
	var model models.PlaygroundModel

	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get playground", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get playground: %w", err)
	}

	return model.ToEntity(), nil
}

// List retrieves a paginated list of playgrounds, newest first
func (r *PlaygroundRepository) List(ctx context.Context, filter playground.ListFilter) ([]*playground.Playground, int64, error) {
	query := r.conn(ctx).Model(&models.PlaygroundModel{})

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Visibility != "" {
		query = query.Where("visibility = ?", string(filter.Visibility))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count playgrounds", "error", err)
		return nil, 0, fmt.Errorf("failed to count playgrounds: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize

	var pgModels []*models.PlaygroundModel
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&pgModels).Error
	if err != nil {
		r.logger.Errorw("failed to list playgrounds", "error", err)
		return nil, 0, fmt.Errorf("failed to list playgrounds: %w", err)
	}

	playgrounds := make([]*playground.Playground, 0, len(pgModels))
	for _, model := range pgModels {
		playgrounds = append(playgrounds, model.ToEntity())
	}
	return playgrounds, total, nil
}

// Update updates an existing playground
func (r *PlaygroundRepository) Update(ctx context.Context, pg *playground.Playground) error {
	result := r.conn(ctx).Model(&models.PlaygroundModel{}).
		Where("id = ?", pg.ID).
		Updates(map[string]interface{}{
			"name":        pg.Name,
			"description": pg.Description,
			"visibility":  string(pg.Visibility),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update playground", "id", pg.ID, "error", result.Error)
		return fmt.Errorf("failed to update playground: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("playground not found")
	}
	return nil
}

// Delete soft deletes a playground and its files
func (r *PlaygroundRepository) Delete(ctx context.Context, id string) error {
	conn := r.conn(ctx)

	if err := conn.Where("playground_id = ?", id).Delete(&models.FileModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete playground files", "id", id, "error", err)
		return fmt.Errorf("failed to delete playground files: %w", err)
	}

	result := conn.Where("id = ?", id).Delete(&models.PlaygroundModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete playground", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete playground: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("playground not found")
	}
	return nil
}
