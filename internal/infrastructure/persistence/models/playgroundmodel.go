package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codergrounds/internal/domain/playground"
	"codergrounds/internal/shared/constants"
)

// PlaygroundModel represents the database persistence model for playgrounds
type PlaygroundModel struct {
	ID          string `gorm:"primarykey;size:36"`
	UserID      string `gorm:"not null;size:36;index"`
	Name        string `gorm:"not null;size:100"`
	Description string `gorm:"size:500"`
	Visibility  string `gorm:"not null;default:private;size:20;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlaygroundModel) TableName() string {
	return constants.TablePlaygrounds
}

// BeforeCreate hook for GORM
func (m *PlaygroundModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Visibility == "" {
		m.Visibility = string(playground.VisibilityPrivate)
	}
	return nil
}

// ToEntity converts the persistence model to a domain entity
func (m *PlaygroundModel) ToEntity() *playground.Playground {
	return &playground.Playground{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Visibility:  playground.Visibility(m.Visibility),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PlaygroundModelFromEntity converts a domain entity to the persistence model
func PlaygroundModelFromEntity(pg *playground.Playground) *PlaygroundModel {
	return &PlaygroundModel{
		ID:          pg.ID,
		UserID:      pg.UserID,
		Name:        pg.Name,
		Description: pg.Description,
		Visibility:  string(pg.Visibility),
		CreatedAt:   pg.CreatedAt,
		UpdatedAt:   pg.UpdatedAt,
	}
}
