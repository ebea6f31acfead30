package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codergrounds/internal/shared/config"
)

const (
	// RefreshTokenCookie is the HttpOnly cookie carrying the refresh token,
	// scoped to the auth path prefix so it is never sent on regular API calls.
	RefreshTokenCookie = "refreshToken"
)

// SetRefreshTokenCookie sets the refresh token as an HttpOnly, same-site
// cookie. maxAge is the refresh token TTL in seconds.
func SetRefreshTokenCookie(c *gin.Context, cookieConfig config.CookieConfig, refreshToken string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		RefreshTokenCookie,
		refreshToken,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearRefreshTokenCookie removes the refresh token cookie.
func ClearRefreshTokenCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		RefreshTokenCookie,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetRefreshTokenFromCookie retrieves the refresh token from the request
// cookie; empty string when absent.
func GetRefreshTokenFromCookie(c *gin.Context) string {
	token, err := c.Cookie(RefreshTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
