package migration

import (
	"codergrounds/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the schema covers.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.UserOAuthProviderModel{},
		&models.PlaygroundModel{},
		&models.FileModel{},
		&models.ExecutionModel{},
	}
}
