package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

const (
	defaultExecutionLimit = 20
	maxExecutionLimit     = 50
)

type ListExecutionsCommand struct {
	PlaygroundID string
	// UserID is empty for anonymous requests.
	UserID string
	Limit  int
}

type ListExecutionsUseCase struct {
	playgroundRepo playground.Repository
	executionRepo  playground.ExecutionRepository
	logger         logger.Interface
}

func NewListExecutionsUseCase(
	playgroundRepo playground.Repository,
	executionRepo playground.ExecutionRepository,
	logger logger.Interface,
) *ListExecutionsUseCase {
	return &ListExecutionsUseCase{
		playgroundRepo: playgroundRepo,
		executionRepo:  executionRepo,
		logger:         logger,
	}
}

// Execute returns the most recent executions of a playground, newest first.
// Visibility follows the playground itself, so private playgrounds answer
// NotFound to anyone but the owner.
func (uc *ListExecutionsUseCase) Execute(ctx context.Context, cmd ListExecutionsCommand) ([]*playground.Execution, error) {
	pg, err := uc.playgroundRepo.GetByID(ctx, cmd.PlaygroundID)
	if err != nil {
		uc.logger.Errorw("failed to load playground", "error", err, "playground_id", cmd.PlaygroundID)
		return nil, fmt.Errorf("failed to load playground: %w", err)
	}
	if pg == nil || !pg.IsVisibleTo(cmd.UserID) {
		return nil, apperrors.NewNotFoundError("playground not found")
	}

	limit := cmd.Limit
	if limit <= 0 {
		limit = defaultExecutionLimit
	}
	if limit > maxExecutionLimit {
		limit = maxExecutionLimit
	}

	executions, err := uc.executionRepo.ListByPlayground(ctx, pg.ID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list executions", "error", err, "playground_id", pg.ID)
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	return executions, nil
}
