package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"codergrounds/internal/application/user/dto"
	"codergrounds/internal/application/user/usecases"
	"codergrounds/internal/shared/config"
	"codergrounds/internal/shared/constants"
	apperrors "codergrounds/internal/shared/errors"
	"codergrounds/internal/shared/logger"
	"codergrounds/internal/shared/utils"
)

type AuthHandler struct {
	registerUC      registerUseCase
	loginUC         loginUseCase
	initiateOAuthUC initiateOAuthUseCase
	oauthLoginUC    oauthLoginUseCase
	refreshTokenUC  refreshTokenUseCase
	logoutUC        logoutUseCase
	logger          logger.Interface
	cookieConfig    config.CookieConfig
	refreshTTL      time.Duration
	frontendURL     string
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	initiateOAuthUC initiateOAuthUseCase,
	oauthLoginUC oauthLoginUseCase,
	refreshTokenUC refreshTokenUseCase,
	logoutUC logoutUseCase,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
	refreshTTL time.Duration,
	frontendURL string,
) *AuthHandler {
	return &AuthHandler{
		registerUC:      registerUC,
		loginUC:         loginUC,
		initiateOAuthUC: initiateOAuthUC,
		oauthLoginUC:    oauthLoginUC,
		refreshTokenUC:  refreshTokenUC,
		logoutUC:        logoutUC,
		logger:          logger,
		cookieConfig:    cookieConfig,
		refreshTTL:      refreshTTL,
		frontendURL:     frontendURL,
	}
}

// Register creates an email/password account and signs the user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RegisterCommand{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("registration failed", "error", err, "email", utils.MaskEmail(req.Email))
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)

	utils.CreatedResponse(c, dto.AuthResponse{
		User:        dto.ToUserResponse(result.User),
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	}, "registration successful")
}

// Login authenticates with an email or username plus password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginCommand{
		Identifier: req.Identifier,
		Password:   req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("login failed", "error", err, "identifier", req.Identifier)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "login successful", dto.AuthResponse{
		User:        dto.ToUserResponse(result.User),
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// InitiateOAuth starts the provider consent flow. Browsers are redirected to
// the provider; API clients can pass format=json to receive the URL instead.
func (h *AuthHandler) InitiateOAuth(c *gin.Context) {
	cmd := usecases.InitiateOAuthCommand{
		Provider:           c.Param("provider"),
		RedirectAfterLogin: c.Query("redirect"),
	}

	authURL, err := h.initiateOAuthUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("oauth initiation failed", "error", err, "provider", cmd.Provider)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if c.Query("format") == "json" {
		utils.SuccessResponse(c, http.StatusOK, "authorization url generated", dto.OAuthURLResponse{URL: authURL})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// OAuthCallback completes the provider flow. On success the refresh token is
// set as a cookie and the browser is sent back to the frontend; the access
// token is then obtained through the refresh endpoint so it never appears in
// a URL.
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	provider := c.Param("provider")

	if errParam := c.Query("error"); errParam != "" {
		h.logger.Warnw("oauth provider returned error",
			"provider", provider,
			"error_code", errParam,
			"error_description", c.Query("error_description"),
		)
		h.redirectWithError(c, constants.GetOAuthErrorMessageFromString(errParam))
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" {
		h.redirectWithError(c, constants.GetOAuthErrorMessage(constants.OAuthErrorMissingCode))
		return
	}
	if state == "" {
		h.redirectWithError(c, constants.GetOAuthErrorMessage(constants.OAuthErrorMissingState))
		return
	}

	cmd := usecases.OAuthLoginCommand{
		Provider: provider,
		Code:     code,
		State:    state,
	}

	result, err := h.oauthLoginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("oauth callback failed", "error", err, "provider", provider)
		h.redirectWithError(c, oauthFailureMessage(err))
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)

	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+sanitizeRedirectPath(result.RedirectAfterLogin))
}

// RefreshToken rotates the refresh token and mints a new access token. The
// refresh token is read from the HttpOnly cookie; a JSON body is accepted as
// a fallback for non-browser clients.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken := utils.GetRefreshTokenFromCookie(c)

	if refreshToken == "" {
		var req struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	result, err := h.refreshTokenUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{RefreshToken: refreshToken})
	if err != nil {
		h.logger.Warnw("token refresh failed", "error", err)
		utils.ClearRefreshTokenCookie(c, h.cookieConfig)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)

	utils.SuccessResponse(c, http.StatusOK, "token refreshed successfully", dto.AuthResponse{
		User:        dto.ToUserResponse(result.User),
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	})
}

// Logout revokes the current refresh token and clears the cookie. Missing or
// already-expired tokens still log out cleanly.
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken := utils.GetRefreshTokenFromCookie(c)

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{RefreshToken: refreshToken}); err != nil {
		h.logger.Errorw("logout failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearRefreshTokenCookie(c, h.cookieConfig)

	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	utils.SetRefreshTokenCookie(c, h.cookieConfig, refreshToken, int(h.refreshTTL.Seconds()))
}

func (h *AuthHandler) redirectWithError(c *gin.Context, message string) {
	c.Redirect(http.StatusTemporaryRedirect,
		h.frontendURL+"/auth/error?message="+url.QueryEscape(message))
}

// oauthFailureMessage maps callback errors to user-facing messages without
// exposing anything the provider or the stack returned.
func oauthFailureMessage(err error) string {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		return constants.GetOAuthErrorMessage("")
	}

	switch appErr.Type {
	case apperrors.ErrorTypeUnauthorized:
		return constants.GetOAuthErrorMessage(constants.OAuthErrorInvalidState)
	case apperrors.ErrorTypeOAuthError:
		if strings.Contains(appErr.Details, "exchange") {
			return constants.GetOAuthErrorMessage(constants.OAuthErrorExchangeFailed)
		}
		return constants.GetOAuthErrorMessage(constants.OAuthErrorUserInfoFailed)
	default:
		return constants.GetOAuthErrorMessage("")
	}
}

// sanitizeRedirectPath keeps post-login redirects on our own frontend.
func sanitizeRedirectPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return "/"
	}
	return path
}
