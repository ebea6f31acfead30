package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type GetExecutionUseCase struct {
	playgroundRepo playground.Repository
	executionRepo  playground.ExecutionRepository
	logger         logger.Interface
}

func NewGetExecutionUseCase(
	playgroundRepo playground.Repository,
	executionRepo playground.ExecutionRepository,
	logger logger.Interface,
) *GetExecutionUseCase {
	return &GetExecutionUseCase{
		playgroundRepo: playgroundRepo,
		executionRepo:  executionRepo,
		logger:         logger,
	}
}

// Execute loads a single execution. The execution must belong to the given
// playground and the playground must be visible to the requester.
func (uc *GetExecutionUseCase) Execute(ctx context.Context, playgroundID, executionID, requesterID string) (*playground.Execution, error) {
	pg, err := uc.playgroundRepo.GetByID(ctx, playgroundID)
	if err != nil {
		uc.logger.Errorw("failed to load playground", "error", err, "playground_id", playgroundID)
		return nil, fmt.Errorf("failed to load playground: %w", err)
	}
	if pg == nil || !pg.IsVisibleTo(requesterID) {
		return nil, apperrors.NewNotFoundError("playground not found")
	}

	exec, err := uc.executionRepo.GetByID(ctx, executionID)
	if err != nil {
		uc.logger.Errorw("failed to load execution", "error", err, "execution_id", executionID)
		return nil, fmt.Errorf("failed to load execution: %w", err)
	}
	if exec == nil || exec.PlaygroundID != pg.ID {
		return nil, apperrors.NewNotFoundError("execution not found")
	}

	return exec, nil
}
