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

// ExecutionRepository implements playground.ExecutionRepository on gorm.
type ExecutionRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewExecutionRepository creates a new execution repository
func NewExecutionRepository(database *gorm.DB, logger logger.Interface) playground.ExecutionRepository {
	return &ExecutionRepository{
		db:     database,
		logger: logger,
	}
}

func (r *ExecutionRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx)
}

// Create creates a new execution record
func (r *ExecutionRepository) Create(ctx context.Context, e *playground.Execution) error {
	model := models.ExecutionModelFromEntity(e)

	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create execution", "error", err)
		return fmt.Errorf("failed to create execution: %w", err)
	}

	e.ID = model.ID
	e.CreatedAt = model.CreatedAt
	e.UpdatedAt = model.UpdatedAt
	return nil
}

// GetByID retrieves an execution by ID
func (r *ExecutionRepository) GetByID(ctx context.Context, id string) (*playground.Execution, error) {
	var model models.ExecutionModel

	if err := r.conn(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get execution", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}

	return model.ToEntity(), nil
}

// ListByPlayground retrieves recent executions of a playground
func (r *ExecutionRepository) ListByPlayground(ctx context.Context, playgroundID string, limit int) ([]*playground.Execution, error) {
	var execModels []*models.ExecutionModel

	query := r.conn(ctx).
		Where("playground_id = ?", playgroundID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&execModels).Error; err != nil {
		r.logger.Errorw("failed to list executions", "playground_id", playgroundID, "error", err)
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	executions := make([]*playground.Execution, 0, len(execModels))
	for _, model := range execModels {
		executions = append(executions, model.ToEntity())
	}
	return executions, nil
}

// Update updates an execution record
func (r *ExecutionRepository) Update(ctx context.Context, e *playground.Execution) error {
	result := r.conn(ctx).Model(&models.ExecutionModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"output":            e.Output,
			"status":            string(e.Status),
			"execution_time_ms": e.ExecutionTimeMs,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update execution", "id", e.ID, "error", result.Error)
		return fmt.Errorf("failed to update execution: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("execution not found")
	}
	return nil
}
