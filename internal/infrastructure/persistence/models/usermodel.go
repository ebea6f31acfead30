package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codergrounds/internal/domain/user"
	"codergrounds/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID           string  `gorm:"primarykey;size:36"`
	Email        string  `gorm:"uniqueIndex;not null;size:255"`
	Username     string  `gorm:"uniqueIndex;not null;size:39"`
	PasswordHash *string `gorm:"size:255"`
	AvatarURL    *string `gorm:"size:500"`
	Provider     string  `gorm:"not null;default:email;size:20"`
	TokenVersion int     `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.TokenVersion == 0 {
		m.TokenVersion = 1
	}
	return nil
}

// ToEntity converts the persistence model to a domain entity
func (m *UserModel) ToEntity() *user.User {
	return &user.User{
		ID:           m.ID,
		Email:        m.Email,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		AvatarURL:    m.AvatarURL,
		Provider:     m.Provider,
		TokenVersion: m.TokenVersion,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserModelFromEntity converts a domain entity to the persistence model
func UserModelFromEntity(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		AvatarURL:    u.AvatarURL,
		Provider:     u.Provider,
		TokenVersion: u.TokenVersion,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
