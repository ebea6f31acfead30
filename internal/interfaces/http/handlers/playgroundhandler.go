package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codergrounds/internal/application/playground/dto"
	"codergrounds/internal/application/playground/usecases"
	"codergrounds/internal/shared/constants"
	"codergrounds/internal/shared/logger"
	"codergrounds/internal/shared/utils"
)

type PlaygroundHandler struct {
	createUC         createPlaygroundUseCase
	getUC            getPlaygroundUseCase
	listUC           listPlaygroundsUseCase
	updateUC         updatePlaygroundUseCase
	deleteUC         deletePlaygroundUseCase
	createFileUC     createFileUseCase
	updateFileUC     updateFileUseCase
	deleteFileUC     deleteFileUseCase
	executeCodeUC    executeCodeUseCase
	listExecutionsUC listExecutionsUseCase
	getExecutionUC   getExecutionUseCase
	logger           logger.Interface
}

func NewPlaygroundHandler(
	createUC createPlaygroundUseCase,
	getUC getPlaygroundUseCase,
	listUC listPlaygroundsUseCase,
	updateUC updatePlaygroundUseCase,
	deleteUC deletePlaygroundUseCase,
	createFileUC createFileUseCase,
	updateFileUC updateFileUseCase,
	deleteFileUC deleteFileUseCase,
	executeCodeUC executeCodeUseCase,
	listExecutionsUC listExecutionsUseCase,
	getExecutionUC getExecutionUseCase,
	logger logger.Interface,
) *PlaygroundHandler {
	return &PlaygroundHandler{
		createUC:         createUC,
		getUC:            getUC,
		listUC:           listUC,
		updateUC:         updateUC,
		deleteUC:         deleteUC,
		createFileUC:     createFileUC,
		updateFileUC:     updateFileUC,
		deleteFileUC:     deleteFileUC,
		executeCodeUC:    executeCodeUC,
		listExecutionsUC: listExecutionsUC,
		getExecutionUC:   getExecutionUC,
		logger:           logger,
	}
}

// Create creates a playground owned by the authenticated user.
func (h *PlaygroundHandler) Create(c *gin.Context) {
	var req dto.CreatePlaygroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreatePlaygroundCommand{
		UserID:      c.GetString(constants.ContextKeyUserID),
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
	}

	pg, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("playground creation failed", "error", err, "user_id", cmd.UserID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToPlaygroundResponse(pg), "playground created")
}

// Get returns a playground with its files. Private playgrounds answer
// NotFound to anyone but the owner.
func (h *PlaygroundHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("id"), c.GetString(constants.ContextKeyUserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail := dto.PlaygroundDetailResponse{
		PlaygroundResponse: *dto.ToPlaygroundResponse(result.Playground),
		Files:              make([]*dto.FileResponse, 0, len(result.Files)),
	}
	for _, f := range result.Files {
		detail.Files = append(detail.Files, dto.ToFileResponse(f))
	}

	utils.SuccessResponse(c, http.StatusOK, "success", detail)
}

// List returns the authenticated user's playgrounds, paginated.
func (h *PlaygroundHandler) List(c *gin.Context) {
	var req dto.ListPlaygroundsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ListPlaygroundsCommand{
		UserID:   c.GetString(constants.ContextKeyUserID),
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	result, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("playground listing failed", "error", err, "user_id", cmd.UserID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]*dto.PlaygroundResponse, 0, len(result.Playgrounds))
	for _, pg := range result.Playgrounds {
		items = append(items, dto.ToPlaygroundResponse(pg))
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

// Update applies a partial update to an owned playground.
func (h *PlaygroundHandler) Update(c *gin.Context) {
	var req dto.UpdatePlaygroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdatePlaygroundCommand{
		ID:          c.Param("id"),
		UserID:      c.GetString(constants.ContextKeyUserID),
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
	}

	pg, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "playground updated", dto.ToPlaygroundResponse(pg))
}

// Delete removes an owned playground and its files.
func (h *PlaygroundHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id"), c.GetString(constants.ContextKeyUserID)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CreateFile adds a file at the end of the playground's file list.
func (h *PlaygroundHandler) CreateFile(c *gin.Context) {
	var req dto.CreateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateFileCommand{
		PlaygroundID: c.Param("id"),
		UserID:       c.GetString(constants.ContextKeyUserID),
		Name:         req.Name,
		Content:      req.Content,
		Type:         req.Type,
	}

	file, err := h.createFileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ToFileResponse(file), "file created")
}

// UpdateFile applies a partial update to a file of an owned playground.
func (h *PlaygroundHandler) UpdateFile(c *gin.Context) {
	var req dto.UpdateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateFileCommand{
		PlaygroundID: c.Param("id"),
		FileID:       c.Param("fileId"),
		UserID:       c.GetString(constants.ContextKeyUserID),
		Name:         req.Name,
		Content:      req.Content,
		Order:        req.Order,
	}

	file, err := h.updateFileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "file updated", dto.ToFileResponse(file))
}

// DeleteFile removes a file from an owned playground.
func (h *PlaygroundHandler) DeleteFile(c *gin.Context) {
	cmd := usecases.DeleteFileCommand{
		PlaygroundID: c.Param("id"),
		FileID:       c.Param("fileId"),
		UserID:       c.GetString(constants.ContextKeyUserID),
	}

	if err := h.deleteFileUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ExecuteCode queues an execution against a visible playground. Anonymous
// runs are allowed on public and unlisted playgrounds.
func (h *PlaygroundHandler) ExecuteCode(c *gin.Context) {
	var req dto.ExecuteCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ExecuteCodeCommand{
		PlaygroundID: c.Param("id"),
		UserID:       c.GetString(constants.ContextKeyUserID),
		Code:         req.Code,
		Language:     req.Language,
	}

	exec, err := h.executeCodeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, "execution queued", dto.ToExecutionResponse(exec))
}

// ListExecutions returns recent executions of a visible playground.
func (h *PlaygroundHandler) ListExecutions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	cmd := usecases.ListExecutionsCommand{
		PlaygroundID: c.Param("id"),
		UserID:       c.GetString(constants.ContextKeyUserID),
		Limit:        limit,
	}

	executions, err := h.listExecutionsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]*dto.ExecutionResponse, 0, len(executions))
	for _, e := range executions {
		items = append(items, dto.ToExecutionResponse(e))
	}

	utils.SuccessResponse(c, http.StatusOK, "success", items)
}

// GetExecution returns a single execution of a visible playground.
func (h *PlaygroundHandler) GetExecution(c *gin.Context) {
	exec, err := h.getExecutionUC.Execute(c.Request.Context(),
		c.Param("id"), c.Param("executionId"), c.GetString(constants.ContextKeyUserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", dto.ToExecutionResponse(exec))
}
