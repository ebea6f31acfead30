package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type GetPlaygroundResult struct {
	Playground *playground.Playground
	Files      []*playground.File
}

type GetPlaygroundUseCase struct {
	playgroundRepo playground.Repository
	fileRepo       playground.FileRepository
	logger         logger.Interface
}

func NewGetPlaygroundUseCase(
	playgroundRepo playground.Repository,
	fileRepo playground.FileRepository,
	logger logger.Interface,
) *GetPlaygroundUseCase {
	return &GetPlaygroundUseCase{
		playgroundRepo: playgroundRepo,
		fileRepo:       fileRepo,
		logger:         logger,
	}
}

// Execute loads a playground with its files. requesterID may be empty for
// anonymous reads; private playgrounds answer NotFound rather than Forbidden
// so their existence is not revealed.
func (uc *GetPlaygroundUseCase) Execute(ctx context.Context, id, requesterID string) (*GetPlaygroundResult, error) {
	pg, err := uc.playgroundRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load playground", "error", err, "playground_id", id)
		return nil, fmt.Errorf("failed to load playground: %w", err)
	}
	if pg == nil || !pg.IsVisibleTo(requesterID) {
		return nil, apperrors.NewNotFoundError("playground not found")
	}

	files, err := uc.fileRepo.ListByPlayground(ctx, pg.ID)
	if err != nil {
		uc.logger.Errorw("failed to list files", "error", err, "playground_id", pg.ID)
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	return &GetPlaygroundResult{Playground: pg, Files: files}, nil
}
