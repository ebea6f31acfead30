package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codergrounds/internal/domain/playground"
)

func newTestPlayground(userID, name string) *playground.Playground {
	return &playground.Playground{
		UserID:     userID,
		Name:       name,
		Visibility: playground.VisibilityPrivate,
	}
}

func TestPlaygroundRepository_CRUD(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPlaygroundRepository(database, newNopLogger())
	ctx := context.Background()

	pg := newTestPlayground("user-1", "scratchpad")
	require.NoError(t, repo.Create(ctx, pg))
	assert.NotEmpty(t, pg.ID)

	loaded, err := repo.GetByID(ctx, pg.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "scratchpad", loaded.Name)
	assert.Equal(t, playground.VisibilityPrivate, loaded.Visibility)

	loaded.Name = "renamed"
	loaded.Visibility = playground.VisibilityPublic
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.GetByID(ctx, pg.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", reloaded.Name)
	assert.Equal(t, playground.VisibilityPublic, reloaded.Visibility)

	require.NoError(t, repo.Delete(ctx, pg.ID))

	gone, err := repo.GetByID(ctx, pg.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestPlaygroundRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPlaygroundRepository(database, newNopLogger())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newTestPlayground("user-1", "pg")))
	}
	require.NoError(t, repo.Create(ctx, newTestPlayground("user-2", "other")))

	items, total, err := repo.List(ctx, playground.ListFilter{
		UserID: "user-1", Page: 1, PageSize: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 3)

	items, _, err = repo.List(ctx, playground.ListFilter{
		UserID: "user-1", Page: 2, PageSize: 3,
	})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestPlaygroundRepository_DeleteCascadesToFiles(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPlaygroundRepository(database, newNopLogger())
	fileRepo := NewFileRepository(database, newNopLogger())
	ctx := context.Background()

	pg := newTestPlayground("user-1", "scratchpad")
	require.NoError(t, repo.Create(ctx, pg))

	f := &playground.File{
		PlaygroundID: pg.ID,
		Name:         "index.js",
		Type:         playground.FileTypeJavaScript,
		Order:        1,
	}
	require.NoError(t, fileRepo.Create(ctx, f))

	require.NoError(t, repo.Delete(ctx, pg.ID))

	files, err := fileRepo.ListByPlayground(ctx, pg.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileRepository_OrderAndMaxOrder(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPlaygroundRepository(database, newNopLogger())
	fileRepo := NewFileRepository(database, newNopLogger())
	ctx := context.Background()

	pg := newTestPlayground("user-1", "scratchpad")
	require.NoError(t, repo.Create(ctx, pg))

	max, err := fileRepo.MaxOrder(ctx, pg.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	for i, name := range []string{"a.js", "b.js", "c.js"} {
		require.NoError(t, fileRepo.Create(ctx, &playground.File{
			PlaygroundID: pg.ID,
			Name:         name,
			Type:         playground.FileTypeJavaScript,
			Order:        i + 1,
		}))
	}

	max, err = fileRepo.MaxOrder(ctx, pg.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, max)

	files, err := fileRepo.ListByPlayground(ctx, pg.ID)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "a.js", files[0].Name)
	assert.Equal(t, "c.js", files[2].Name)
}

func TestExecutionRepository_CreateAndList(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPlaygroundRepository(database, newNopLogger())
	execRepo := NewExecutionRepository(database, newNopLogger())
	ctx := context.Background()

	pg := newTestPlayground("user-1", "scratchpad")
	require.NoError(t, repo.Create(ctx, pg))

	userID := "user-1"
	exec := &playground.Execution{
		PlaygroundID: pg.ID,
		UserID:       &userID,
		CodeSnapshot: "print('hi')",
		Language:     playground.LanguagePython,
		Status:       playground.ExecutionStatusQueued,
	}
	require.NoError(t, execRepo.Create(ctx, exec))
	assert.NotEmpty(t, exec.ID)

	// Anonymous execution carries a NULL user.
	require.NoError(t, execRepo.Create(ctx, &playground.Execution{
		PlaygroundID: pg.ID,
		CodeSnapshot: "1+1",
		Language:     playground.LanguageJavaScript,
		Status:       playground.ExecutionStatusQueued,
	}))

	executions, err := execRepo.ListByPlayground(ctx, pg.ID, 10)
	require.NoError(t, err)
	assert.Len(t, executions, 2)

	exec.Status = playground.ExecutionStatusCompleted
	exec.Output = "hi"
	exec.ExecutionTimeMs = 42
	require.NoError(t, execRepo.Update(ctx, exec))

	reloaded, err := execRepo.GetByID(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, playground.ExecutionStatusCompleted, reloaded.Status)
	assert.Equal(t, "hi", reloaded.Output)
	assert.Equal(t, 42, reloaded.ExecutionTimeMs)
}
