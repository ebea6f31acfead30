package constants

// OAuthErrorCode identifies a failure during the OAuth login flow
type OAuthErrorCode string

const (
	// Errors reported by the provider on the callback
	OAuthErrorAccessDenied       OAuthErrorCode = "access_denied"
	OAuthErrorInvalidRequest     OAuthErrorCode = "invalid_request"
	OAuthErrorUnauthorizedClient OAuthErrorCode = "unauthorized_client"
	OAuthErrorServerError        OAuthErrorCode = "server_error"

	// Errors detected on our side
	OAuthErrorMissingCode    OAuthErrorCode = "missing_code"
	OAuthErrorMissingState   OAuthErrorCode = "missing_state"
	OAuthErrorInvalidState   OAuthErrorCode = "invalid_state"
	OAuthErrorExpiredState   OAuthErrorCode = "expired_state"
	OAuthErrorExchangeFailed OAuthErrorCode = "exchange_failed"
	OAuthErrorUserInfoFailed OAuthErrorCode = "userinfo_failed"
)

// oauthErrorMessages maps error codes to messages safe to show users.
// Provider responses are never forwarded verbatim.
var oauthErrorMessages = map[OAuthErrorCode]string{
	OAuthErrorAccessDenied:       "Authorization was cancelled. Sign in again to continue.",
	OAuthErrorInvalidRequest:     "The sign-in request was malformed. Please try again.",
	OAuthErrorUnauthorizedClient: "This application is not authorized with the provider.",
	OAuthErrorServerError:        "The sign-in provider is unavailable. Please try again later.",

	OAuthErrorMissingCode:    "The provider did not return an authorization code. Please try again.",
	OAuthErrorMissingState:   "Security check failed. Please start the sign-in again.",
	OAuthErrorInvalidState:   "Sign-in link is invalid or was already used.",
	OAuthErrorExpiredState:   "Sign-in session expired. Please try again.",
	OAuthErrorExchangeFailed: "Could not complete sign-in with the provider. Please try again.",
	OAuthErrorUserInfoFailed: "Could not read your profile from the provider. Please try again.",
}

// GetOAuthErrorMessage returns the user-facing message for a code
func GetOAuthErrorMessage(code OAuthErrorCode) string {
	if msg, ok := oauthErrorMessages[code]; ok {
		return msg
	}
	return "Something went wrong during sign-in. Please try again."
}

// GetOAuthErrorMessageFromString converts a raw provider error code to a message
func GetOAuthErrorMessageFromString(code string) string {
	return GetOAuthErrorMessage(OAuthErrorCode(code))
}
