package usecases

import (
	"context"
	"fmt"

	"codergrounds/internal/domain/playground"
	apperrors "codergrounds/internal/shared/errors"
)

// loadOwnedPlayground loads a playground and enforces the mutation gate:
// a missing playground is NotFound, someone else's is Forbidden.
func loadOwnedPlayground(ctx context.Context, repo playground.Repository, id, userID string) (*playground.Playground, error) {
	pg, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load playground: %w", err)
	}
	if pg == nil {
		return nil, apperrors.NewNotFoundError("playground not found")
	}
	if !pg.IsOwnedBy(userID) {
		return nil, apperrors.NewForbiddenError("you do not own this playground")
	}
	return pg, nil
}
