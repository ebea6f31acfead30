package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codergrounds/internal/domain/playground"
	"codergrounds/internal/shared/constants"
)

// FileModel represents the database persistence model for playground files
type FileModel struct {
	ID           string `gorm:"primarykey;size:36"`
	PlaygroundID string `gorm:"not null;size:36;index"`
	Name         string `gorm:"not null;size:255"`
	Content      string `gorm:"type:text"`
	Type         string `gorm:"not null;size:20"`
	Order        int    `gorm:"column:file_order;not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (FileModel) TableName() string {
	return constants.TableFiles
}

// BeforeCreate hook for GORM
func (m *FileModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ToEntity converts the persistence model to a domain entity
func (m *FileModel) ToEntity() *playground.File {
	return &playground.File{
		ID:           m.ID,
		PlaygroundID: m.PlaygroundID,
		Name:         m.Name,
		Content:      m.Content,
		Type:         playground.FileType(m.Type),
		Order:        m.Order,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FileModelFromEntity converts a domain entity to the persistence model
func FileModelFromEntity(f *playground.File) *FileModel {
	return &FileModel{
		ID:           f.ID,
		PlaygroundID: f.PlaygroundID,
		Name:         f.Name,
		Content:      f.Content,
		Type:         string(f.Type),
		Order:        f.Order,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}
