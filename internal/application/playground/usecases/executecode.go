package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type ExecuteCodeCommand struct {
	PlaygroundID string
	// UserID is empty for anonymous runs against public playgrounds.
	UserID   string
	Code     string
	Language string
}

type ExecuteCodeUseCase struct {
	playgroundRepo playground.Repository
	executionRepo  playground.ExecutionRepository
	logger         logger.Interface
}

func NewExecuteCodeUseCase(
	playgroundRepo playground.Repository,
	executionRepo playground.ExecutionRepository,
	logger logger.Interface,
) *ExecuteCodeUseCase {
	return &ExecuteCodeUseCase{
		playgroundRepo: playgroundRepo,
		executionRepo:  executionRepo,
		logger:         logger,
	}
}

// Execute records a queued execution with a snapshot of the submitted code.
// The snapshot is authoritative; later file edits do not affect it.
func (uc *ExecuteCodeUseCase) Execute(ctx context.Context, cmd ExecuteCodeCommand) (*playground.Execution, error) {
	pg, err := uc.playgroundRepo.GetByID(ctx, cmd.PlaygroundID)
	if err != nil {
		uc.logger.Errorw("failed to load playground", "error", err, "playground_id", cmd.PlaygroundID)
		return nil, fmt.Errorf("failed to load playground: %w", err)
	}
	if pg == nil || !pg.IsVisibleTo(cmd.UserID) {
		return nil, apperrors.NewNotFoundError("playground not found")
	}

	language := playground.Language(cmd.Language)
	if !language.IsValid() {
		return nil, apperrors.NewValidationError("unsupported language")
	}

	exec := &playground.Execution{
		PlaygroundID: pg.ID,
		CodeSnapshot: cmd.Code,
		Language:     language,
		Status:       playground.ExecutionStatusQueued,
	}
	if cmd.UserID != "" {
		exec.UserID = &cmd.UserID
	}

	if err := uc.executionRepo.Create(ctx, exec); err != nil {
		uc.logger.Errorw("failed to create execution", "error", err, "playground_id", pg.ID)
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	uc.logger.Infow("execution queued", "execution_id", exec.ID, "playground_id", pg.ID, "language", language)
	return exec, nil
}
