package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codergrounds/internal/domain/user"
	"codergrounds/internal/infrastructure/auth"
	"codergrounds/internal/shared/constants"
	"codergrounds/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()

	tokens := auth.NewTokenService("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
	mw := NewAuthMiddleware(tokens, &nopLogger{})

	engine := gin.New()
	engine.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyUserID))
	})
	engine.GET("/open", mw.OptionalAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyUserID))
	})

	return engine, tokens
}

func mintAccessToken(t *testing.T, tokens *auth.TokenService) string {
	t.Helper()

	pair, err := tokens.GeneratePair(&user.User{
		ID:           "user-1",
		Email:        "ada@example.com",
		Username:     "ada-lovelace",
		TokenVersion: 1,
	})
	require.NoError(t, err)
	return pair.AccessToken
}

func TestRequireAuth_ValidToken(t *testing.T) {
	engine, tokens := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintAccessToken(t, tokens))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	engine, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	engine, tokens := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token "+mintAccessToken(t, tokens))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_RefreshTokenRejected(t *testing.T) {
	engine, tokens := newAuthTestRouter(t)

	pair, err := tokens.GeneratePair(&user.User{ID: "user-1", TokenVersion: 1})
	require.NoError(t, err)

	// A refresh token is signed with a different secret and must never pass
	// as an access token.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_AnonymousPasses(t *testing.T) {
	engine, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestOptionalAuth_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	engine, _ := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
