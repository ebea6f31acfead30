package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyClaims    = "claims"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers              = "users"
	TableUserOAuthProviders = "user_oauth_providers"
	TablePlaygrounds        = "playgrounds"
	TableFiles              = "files"
	TableExecutions         = "executions"

	// Cache key prefixes. These templates are part of the external contract;
	// anything inspecting the cache relies on them.
	CacheKeyBlacklistPrefix  = "blacklist:refreshToken:"
	CacheKeyOAuthStatePrefix = "oauth:state:"
)
