package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
)

type CreateFileCommand struct {
	PlaygroundID string
	UserID       string
	Name         string
	Content      string
	Type         string
}

type CreateFileUseCase struct {
	playgroundRepo playground.Repository
	fileRepo       playground.FileRepository
	logger         logger.Interface
}

func NewCreateFileUseCase(
	playgroundRepo playground.Repository,
	fileRepo playground.FileRepository,
	logger logger.Interface,
) *CreateFileUseCase {
	return &CreateFileUseCase{
		playgroundRepo: playgroundRepo,
		fileRepo:       fileRepo,
		logger:         logger,
	}
}

func (uc *CreateFileUseCase) Execute(ctx context.Context, cmd CreateFileCommand) (*playground.File, error) {
	pg, err := loadOwnedPlayground(ctx, uc.playgroundRepo, cmd.PlaygroundID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	fileType := playground.FileType(cmd.Type)
	if !fileType.IsValid() {
		return nil, apperrors.NewValidationError("invalid file type")
	}

	maxOrder, err := uc.fileRepo.MaxOrder(ctx, pg.ID)
	if err != nil {
		uc.logger.Errorw("failed to determine file order", "error", err, "playground_id", pg.ID)
		return nil, fmt.Errorf("failed to determine file order: %w", err)
	}

	f := &playground.File{
		PlaygroundID: pg.ID,
		Name:         cmd.Name,
		Content:      cmd.Content,
		Type:         fileType,
		Order:        maxOrder + 1,
	}

	if err := uc.fileRepo.Create(ctx, f); err != nil {
		uc.logger.Errorw("failed to create file", "error", err, "playground_id", pg.ID)
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return f, nil
}
