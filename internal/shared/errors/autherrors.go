package errors

import (
	"fmt"
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeTokenRevoked       ErrorType = "token_revoked"
	ErrorTypeOAuthError         ErrorType = "oauth_error"
	ErrorTypeInvalidProvider    ErrorType = "invalid_provider"
)

// NewInvalidCredentialsError creates an error for invalid login credentials.
// The message must not reveal whether the identifier or the password was wrong.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: "Invalid credentials",
		Code:    http.StatusUnauthorized,
	}
}

// NewTokenExpiredError creates an error for expired tokens
func NewTokenExpiredError(tokenType string) *AppError {
	return &AppError{
		Type:    ErrorTypeTokenExpired,
		Message: fmt.Sprintf("%s has expired", tokenType),
		Code:    http.StatusUnauthorized,
		Details: "Please login again",
	}
}

// NewTokenInvalidError creates an error for tokens with a bad signature or shape
func NewTokenInvalidError(tokenType string) *AppError {
	return &AppError{
		Type:    ErrorTypeTokenInvalid,
		Message: fmt.Sprintf("Invalid %s", tokenType),
		Code:    http.StatusUnauthorized,
	}
}

// NewTokenRevokedError creates an error for refresh tokens found on the blacklist
func NewTokenRevokedError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenRevoked,
		Message: "Refresh token has been revoked",
		Code:    http.StatusUnauthorized,
	}
}

// NewOAuthError creates an error for OAuth provider failures. The raw provider
// response never goes into the message; callers log it separately.
func NewOAuthError(provider string, stage string) *AppError {
	return &AppError{
		Type:    ErrorTypeOAuthError,
		Message: fmt.Sprintf("OAuth authentication with %s failed", provider),
		Code:    http.StatusBadGateway,
		Details: fmt.Sprintf("failed at %s stage", stage),
	}
}

// NewInvalidOAuthStateError creates an error for a missing, expired, or
// already-consumed OAuth state parameter
func NewInvalidOAuthStateError() *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Message: "Invalid or expired OAuth state",
		Code:    http.StatusUnauthorized,
	}
}

// NewInvalidProviderError creates an error for an unknown OAuth provider tag
func NewInvalidProviderError(provider string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidProvider,
		Message: "Invalid OAuth provider",
		Code:    http.StatusBadRequest,
		Details: fmt.Sprintf("unsupported provider: %s", provider),
	}
}
