package http

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	playgroundUsecases "codergrounds/internal/application/playground/usecases"
	userUsecases "codergrounds/internal/application/user/usecases"
	"codergrounds/internal/infrastructure/auth"
	"codergrounds/internal/infrastructure/cache"
	"codergrounds/internal/infrastructure/config"
	"codergrounds/internal/infrastructure/repository"
	"codergrounds/internal/interfaces/http/handlers"
	"codergrounds/internal/interfaces/http/middleware"
	shareddb "codergrounds/internal/shared/db"
	"codergrounds/internal/shared/logger"
)

// Container wires repositories, infrastructure services, use cases, and
// handlers together for the HTTP surface.
type Container struct {
	cfg *config.Config
	log logger.Interface

	authHandler       *handlers.AuthHandler
	userHandler       *handlers.UserHandler
	playgroundHandler *handlers.PlaygroundHandler

	authMiddleware *middleware.AuthMiddleware
}

func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	// Repositories
	userRepo := repository.NewUserRepository(db, log)
	linkRepo := repository.NewUserOAuthProviderRepository(db, log)
	playgroundRepo := repository.NewPlaygroundRepository(db, log)
	fileRepo := repository.NewFileRepository(db, log)
	executionRepo := repository.NewExecutionRepository(db, log)

	txManager := shareddb.NewTransactionManager(db)

	// Auth infrastructure
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokenSvc := auth.NewTokenService(
		cfg.Auth.JWT.AccessSecret,
		cfg.Auth.JWT.RefreshSecret,
		cfg.Auth.JWT.AccessExpiry,
		cfg.Auth.JWT.RefreshExpiry,
	)
	providers := auth.NewProviderFactory(&cfg.OAuth)

	// Redis-backed token blacklist and OAuth state store
	blacklist := cache.NewTokenBlacklist(redisClient)
	states := cache.NewOAuthStateStore(redisClient, cfg.OAuth.StateTTL)

	// User use cases
	registerUC := userUsecases.NewRegisterUseCase(userRepo, hasher, tokenSvc, log)
	loginUC := userUsecases.NewLoginUseCase(userRepo, hasher, tokenSvc, log)
	initiateOAuthUC := userUsecases.NewInitiateOAuthUseCase(providers, states, log)
	oauthLoginUC := userUsecases.NewOAuthLoginUseCase(userRepo, linkRepo, providers, states, tokenSvc, txManager, log)
	refreshTokenUC := userUsecases.NewRefreshTokenUseCase(userRepo, tokenSvc, blacklist, tokenSvc, log)
	logoutUC := userUsecases.NewLogoutUseCase(tokenSvc, blacklist, log)
	changePasswordUC := userUsecases.NewChangePasswordUseCase(userRepo, hasher, log)
	getUserUC := userUsecases.NewGetUserUseCase(userRepo, log)

	// Playground use cases
	createPlaygroundUC := playgroundUsecases.NewCreatePlaygroundUseCase(playgroundRepo, log)
	getPlaygroundUC := playgroundUsecases.NewGetPlaygroundUseCase(playgroundRepo, fileRepo, log)
	listPlaygroundsUC := playgroundUsecases.NewListPlaygroundsUseCase(playgroundRepo, log)
	updatePlaygroundUC := playgroundUsecases.NewUpdatePlaygroundUseCase(playgroundRepo, log)
	deletePlaygroundUC := playgroundUsecases.NewDeletePlaygroundUseCase(playgroundRepo, log)
	createFileUC := playgroundUsecases.NewCreateFileUseCase(playgroundRepo, fileRepo, log)
	updateFileUC := playgroundUsecases.NewUpdateFileUseCase(playgroundRepo, fileRepo, log)
	deleteFileUC := playgroundUsecases.NewDeleteFileUseCase(playgroundRepo, fileRepo, log)
	executeCodeUC := playgroundUsecases.NewExecuteCodeUseCase(playgroundRepo, executionRepo, log)
	listExecutionsUC := playgroundUsecases.NewListExecutionsUseCase(playgroundRepo, executionRepo, log)
	getExecutionUC := playgroundUsecases.NewGetExecutionUseCase(playgroundRepo, executionRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(
		registerUC, loginUC, initiateOAuthUC, oauthLoginUC, refreshTokenUC, logoutUC,
		log, cfg.Auth.Cookie, cfg.Auth.JWT.RefreshExpiry, cfg.Server.FrontendURL,
	)
	userHandler := handlers.NewUserHandler(getUserUC, changePasswordUC, log)
	playgroundHandler := handlers.NewPlaygroundHandler(
		createPlaygroundUC, getPlaygroundUC, listPlaygroundsUC, updatePlaygroundUC, deletePlaygroundUC,
		createFileUC, updateFileUC, deleteFileUC,
		executeCodeUC, listExecutionsUC, getExecutionUC,
		log,
	)

	authMiddleware := middleware.NewAuthMiddleware(tokenSvc, log)

	return &Container{
		cfg:               cfg,
		log:               log,
		authHandler:       authHandler,
		userHandler:       userHandler,
		playgroundHandler: playgroundHandler,
		authMiddleware:    authMiddleware,
	}
}
