package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codergrounds/internal/application/playground/dto"
	"codergrounds/internal/application/playground/usecases"
	"codergrounds/internal/domain/playground"
	"codergrounds/internal/interfaces/http/handlers/testutil"
	apperrors "codergrounds/internal/shared/errors"
)

type mockCreatePlaygroundUC struct {
	result *playground.Playground
	err    error
	gotCmd usecases.CreatePlaygroundCommand
}

func (m *mockCreatePlaygroundUC) Execute(ctx context.Context, cmd usecases.CreatePlaygroundCommand) (*playground.Playground, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetPlaygroundUC struct {
	result *usecases.GetPlaygroundResult
	err    error
}

func (m *mockGetPlaygroundUC) Execute(ctx context.Context, id, requesterID string) (*usecases.GetPlaygroundResult, error) {
	return m.result, m.err
}

type mockListPlaygroundsUC struct {
	result *usecases.ListPlaygroundsResult
	err    error
}

func (m *mockListPlaygroundsUC) Execute(ctx context.Context, cmd usecases.ListPlaygroundsCommand) (*usecases.ListPlaygroundsResult, error) {
	return m.result, m.err
}

type mockUpdatePlaygroundUC struct {
	result *playground.Playground
	err    error
}

func (m *mockUpdatePlaygroundUC) Execute(ctx context.Context, cmd usecases.UpdatePlaygroundCommand) (*playground.Playground, error) {
	return m.result, m.err
}

type mockDeletePlaygroundUC struct {
	err error
}

func (m *mockDeletePlaygroundUC) Execute(ctx context.Context, id, userID string) error {
	return m.err
}

type mockExecuteCodeUC struct {
	result *playground.Execution
	err    error
	gotCmd usecases.ExecuteCodeCommand
}

func (m *mockExecuteCodeUC) Execute(ctx context.Context, cmd usecases.ExecuteCodeCommand) (*playground.Execution, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

func testPlayground() *playground.Playground {
	now := time.Now().UTC()
	return &playground.Playground{
		ID:         "pg-1",
		UserID:     "owner-1",
		Name:       "scratchpad",
		Visibility: playground.VisibilityPublic,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newTestPlaygroundHandler(
	createUC createPlaygroundUseCase,
	getUC getPlaygroundUseCase,
	listUC listPlaygroundsUseCase,
	updateUC updatePlaygroundUseCase,
	deleteUC deletePlaygroundUseCase,
	executeUC executeCodeUseCase,
) *PlaygroundHandler {
	return NewPlaygroundHandler(
		createUC, getUC, listUC, updateUC, deleteUC,
		nil, nil, nil,
		executeUC, nil, nil,
		testutil.NewMockLogger(),
	)
}

func TestPlaygroundHandler_Create(t *testing.T) {
	mockUC := &mockCreatePlaygroundUC{result: testPlayground()}
	handler := newTestPlaygroundHandler(mockUC, nil, nil, nil, nil, nil)

	reqBody := dto.CreatePlaygroundRequest{Name: "scratchpad", Visibility: "public"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/playgrounds", reqBody)
	testutil.SetAuthContext(c, "owner-1")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "owner-1", mockUC.gotCmd.UserID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data dto.PlaygroundResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "scratchpad", data.Name)
}

func TestPlaygroundHandler_Get_NotFoundForHiddenPlayground(t *testing.T) {
	handler := newTestPlaygroundHandler(nil,
		&mockGetPlaygroundUC{err: apperrors.NewNotFoundError("playground not found")},
		nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/playgrounds/pg-1", nil)
	testutil.SetURLParam(c, "id", "pg-1")

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaygroundHandler_Get_IncludesFiles(t *testing.T) {
	result := &usecases.GetPlaygroundResult{
		Playground: testPlayground(),
		Files: []*playground.File{
			{ID: "f-1", PlaygroundID: "pg-1", Name: "index.js", Type: playground.FileTypeJavaScript, Order: 0},
			{ID: "f-2", PlaygroundID: "pg-1", Name: "style.css", Type: playground.FileTypeCSS, Order: 1},
		},
	}
	handler := newTestPlaygroundHandler(nil, &mockGetPlaygroundUC{result: result}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/playgrounds/pg-1", nil)
	testutil.SetURLParam(c, "id", "pg-1")

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data dto.PlaygroundDetailResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Files, 2)
	assert.Equal(t, "index.js", data.Files[0].Name)
}

func TestPlaygroundHandler_List_Envelope(t *testing.T) {
	result := &usecases.ListPlaygroundsResult{
		Playgrounds: []*playground.Playground{testPlayground()},
		Total:       1,
		Page:        1,
		PageSize:    20,
	}
	handler := newTestPlaygroundHandler(nil, nil, &mockListPlaygroundsUC{result: result}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/playgrounds", nil)
	testutil.SetAuthContext(c, "owner-1")

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data struct {
		Items      []dto.PlaygroundResponse `json:"items"`
		Total      int64                    `json:"total"`
		TotalPages int                      `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Len(t, data.Items, 1)
	assert.Equal(t, int64(1), data.Total)
	assert.Equal(t, 1, data.TotalPages)
}

func TestPlaygroundHandler_Update_ForbiddenForNonOwner(t *testing.T) {
	handler := newTestPlaygroundHandler(nil, nil, nil,
		&mockUpdatePlaygroundUC{err: apperrors.NewForbiddenError("you do not own this playground")},
		nil, nil)

	name := "renamed"
	reqBody := dto.UpdatePlaygroundRequest{Name: &name}
	c, w := testutil.NewTestContext(http.MethodPatch, "/api/v1/playgrounds/pg-1", reqBody)
	testutil.SetURLParam(c, "id", "pg-1")
	testutil.SetAuthContext(c, "stranger")

	handler.Update(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPlaygroundHandler_Delete_NoContent(t *testing.T) {
	handler := newTestPlaygroundHandler(nil, nil, nil, nil, &mockDeletePlaygroundUC{}, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/playgrounds/pg-1", nil)
	testutil.SetURLParam(c, "id", "pg-1")
	testutil.SetAuthContext(c, "owner-1")

	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPlaygroundHandler_ExecuteCode_Anonymous(t *testing.T) {
	exec := &playground.Execution{
		ID:           "exec-1",
		PlaygroundID: "pg-1",
		Language:     playground.LanguagePython,
		Status:       playground.ExecutionStatusQueued,
	}
	mockUC := &mockExecuteCodeUC{result: exec}
	handler := newTestPlaygroundHandler(nil, nil, nil, nil, nil, mockUC)

	reqBody := dto.ExecuteCodeRequest{Code: "print('hi')", Language: "python"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/playgrounds/pg-1/execute", reqBody)
	testutil.SetURLParam(c, "id", "pg-1")

	handler.ExecuteCode(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Empty(t, mockUC.gotCmd.UserID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var data dto.ExecutionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "queued", data.Status)
}

func TestPlaygroundHandler_ExecuteCode_UnsupportedLanguage(t *testing.T) {
	handler := newTestPlaygroundHandler(nil, nil, nil, nil, nil, &mockExecuteCodeUC{})

	reqBody := map[string]string{"code": "puts 'hi'", "language": "ruby"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/playgrounds/pg-1/execute", reqBody)
	testutil.SetURLParam(c, "id", "pg-1")

	handler.ExecuteCode(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
