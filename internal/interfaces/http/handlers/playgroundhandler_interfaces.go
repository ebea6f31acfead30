package handlers

import (
	"context"

	"codergrounds/internal/application/playground/usecases"
	"codergrounds/internal/domain/playground"
)

// Use case interfaces for PlaygroundHandler - enables unit testing with mocks.

type createPlaygroundUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlaygroundCommand) (*playground.Playground, error)
}

type getPlaygroundUseCase interface {
	Execute(ctx context.Context, id, requesterID string) (*usecases.GetPlaygroundResult, error)
}

type listPlaygroundsUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListPlaygroundsCommand) (*usecases.ListPlaygroundsResult, error)
}

type updatePlaygroundUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlaygroundCommand) (*playground.Playground, error)
}

type deletePlaygroundUseCase interface {
	Execute(ctx context.Context, id, userID string) error
}

type createFileUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateFileCommand) (*playground.File, error)
}

type updateFileUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateFileCommand) (*playground.File, error)
}

type deleteFileUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteFileCommand) error
}

type executeCodeUseCase interface {
	Execute(ctx context.Context, cmd usecases.ExecuteCodeCommand) (*playground.Execution, error)
}

type listExecutionsUseCase interface {
	Execute(ctx context.Context, cmd usecases.ListExecutionsCommand) ([]*playground.Execution, error)
}

type getExecutionUseCase interface {
	Execute(ctx context.Context, playgroundID, executionID, requesterID string) (*playground.Execution, error)
}
