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

// FileRepository implements playground.FileRepository on gorm.
type FileRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewFileRepository creates a new file repository
func NewFileRepository(database *gorm.DB, logger logger.Interface) playground.FileRepository {
	return &FileRepository{
		db:     database,
		logger: logger,
	}
}

func (r *FileRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new file
func (r *FileRepository) Create(ctx context.Context, f *playground.File) error {
	model := models.FileModelFromEntity(f)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create file", "error", err)
		return fmt.Errorf("failed to create file: %w", err)
	}

	f.ID = model.ID
	f.CreatedAt = model.CreatedAt
	f.UpdatedAt = model.UpdatedAt
	return nil
}

// GetByID retrieves a file by ID
func (r *FileRepository) GetByID(ctx context.Context, id string) (*playground.File, error) {
	var model models.FileModel

	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get file", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return model.ToEntity(), nil
}

// ListByPlayground retrieves all files of a playground ordered by position
func (r *FileRepository) ListByPlayground(ctx context.Context, playgroundID string) ([]*playground.File, error) {
	var fileModels []*models.FileModel

	err := r.conn(ctx).
		Where("playground_id = ?", playgroundID).
		Order("file_order ASC").
		Find(&fileModels).Error
	if err != nil {
		r.logger.Errorw("failed to list files", "playground_id", playgroundID, "error", err)
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*playground.File, 0, len(fileModels))
	for _, model := range fileModels {
		files = append(files, model.ToEntity())
	}
	return files, nil
}

// MaxOrder returns the highest order value among the playground's files
func (r *FileRepository) MaxOrder(ctx context.Context, playgroundID string) (int, error) {
	var max *int

	err := r.conn(ctx).Model(&models.FileModel{}).
		Where("playground_id = ?", playgroundID).
		Select("MAX(file_order)").
		Scan(&max).Error
	if err != nil {
		r.logger.Errorw("failed to get max file order", "playground_id", playgroundID, "error", err)
		return 0, fmt.Errorf("failed to get max file order: %w", err)
	}

	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// Update updates an existing file
func (r *FileRepository) Update(ctx context.Context, f *playground.File) error {
	result := r.conn(ctx).Model(&models.FileModel{}).
		Where("id = ?", f.ID).
		Updates(map[string]interface{}{
			"name":       f.Name,
			"content":    f.Content,
			"file_order": f.Order,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update file", "id", f.ID, "error", result.Error)
		return fmt.Errorf("failed to update file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("file not found")
	}
	return nil
}

// Delete soft deletes a file
func (r *FileRepository) Delete(ctx context.Context, id string) error {
	result := r.conn(ctx).Where("id = ?", id).Delete(&models.FileModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete file", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("file not found")
	}
	return nil
}
