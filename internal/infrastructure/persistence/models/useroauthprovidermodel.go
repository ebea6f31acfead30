package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codergrounds/internal/domain/user"
	"codergrounds/internal/shared/constants"
)

// UserOAuthProviderModel represents the database persistence model for
// external identity links. One external identity maps to exactly one user.
type UserOAuthProviderModel struct {
	ID             string `gorm:"primarykey;size:36"`
	UserID         string `gorm:"not null;size:36;index"`
	Provider       string  `gorm:"not null;size:20;uniqueIndex:idx_provider_identity"`
	ProviderUserID string  `gorm:"not null;size:255;uniqueIndex:idx_provider_identity"`
	ProviderEmail  *string `gorm:"size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserOAuthProviderModel) TableName() string {
	return constants.TableUserOAuthProviders
}

// BeforeCreate hook for GORM
func (m *UserOAuthProviderModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ToEntity converts the persistence model to a domain entity
func (m *UserOAuthProviderModel) ToEntity() *user.OAuthProviderLink {
	return &user.OAuthProviderLink{
		ID:             m.ID,
		UserID:         m.UserID,
		Provider:       m.Provider,
		ProviderUserID: m.ProviderUserID,
		ProviderEmail:  m.ProviderEmail,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// UserOAuthProviderModelFromEntity converts a domain entity to the persistence model
func UserOAuthProviderModelFromEntity(link *user.OAuthProviderLink) *UserOAuthProviderModel {
	return &UserOAuthProviderModel{
		ID:             link.ID,
		UserID:         link.UserID,
		Provider:       link.Provider,
		ProviderUserID: link.ProviderUserID,
		ProviderEmail:  link.ProviderEmail,
		CreatedAt:      link.CreatedAt,
		UpdatedAt:      link.UpdatedAt,
	}
}
