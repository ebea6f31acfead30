package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	"codergrounds/internal/shared/logger"
	"codergrounds/internal/shared/utils"
)

type ListPlaygroundsCommand struct {
	UserID   string
	Page     int
	PageSize int
}

type ListPlaygroundsResult struct {
	Playgrounds []*playground.Playground
	Total       int64
	Page        int
	PageSize    int
}

type ListPlaygroundsUseCase struct {
	playgroundRepo playground.Repository
	logger         logger.Interface
}

func NewListPlaygroundsUseCase(
	playgroundRepo playground.Repository,
	logger logger.Interface,
) *ListPlaygroundsUseCase {
	return &ListPlaygroundsUseCase{
		playgroundRepo: playgroundRepo,
		logger:         logger,
	}
}

// Execute lists the requester's own playgrounds, newest first.
func (uc *ListPlaygroundsUseCase) Execute(ctx context.Context, cmd ListPlaygroundsCommand) (*ListPlaygroundsResult, error) {
	p := utils.ValidatePagination(cmd.Page, cmd.PageSize)

	items, total, err := uc.playgroundRepo.List(ctx, playground.ListFilter{
		UserID:   cmd.UserID,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list playgrounds", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to list playgrounds: %w", err)
	}

	return &ListPlaygroundsResult{
		Playgrounds: items,
		Total:       total,
		Page:        p.Page,
		PageSize:    p.PageSize,
	}, nil
}
