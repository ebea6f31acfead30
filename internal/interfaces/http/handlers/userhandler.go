package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"codergrounds/internal/application/user/dto"
	"codergrounds/internal/application/user/usecases"
	"codergrounds/internal/domain/user"
	"codergrounds/internal/shared/constants"
	"codergrounds/internal/shared/logger"
	"codergrounds/internal/shared/utils"
)

type getUserUseCase interface {
	Execute(ctx context.Context, userID string) (*user.User, error)
}

type changePasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error
}

type UserHandler struct {
	getUserUC        getUserUseCase
	changePasswordUC changePasswordUseCase
	logger           logger.Interface
}

func NewUserHandler(
	getUserUC getUserUseCase,
	changePasswordUC changePasswordUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getUserUC:        getUserUC,
		changePasswordUC: changePasswordUC,
		logger:           logger,
	}
}

// GetCurrentUser returns the authenticated user's public profile.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetString(constants.ContextKeyUserID)
	if userID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	u, err := h.getUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to get current user", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", dto.ToUserResponse(u))
}

// ChangePassword updates the password of the authenticated user. All refresh
// tokens issued before the change stop working.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString(constants.ContextKeyUserID)
	if userID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ChangePasswordCommand{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}

	if err := h.changePasswordUC.Execute(c.Request.Context(), cmd); err != nil {
		h.logger.Warnw("password change failed", "error", err, "user_id", userID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed successfully", nil)
}
