package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"codergrounds/internal/domain/playground"
	"codergrounds/internal/shared/constants"
)

// ExecutionModel represents the database persistence model for code runs
type ExecutionModel struct {
	ID              string  `gorm:"primarykey;size:36"`
	PlaygroundID    string  `gorm:"not null;size:36;index"`
	UserID          *string `gorm:"size:36;index"`
	CodeSnapshot    string  `gorm:"type:text;not null"`
	Language        string  `gorm:"not null;size:20"`
	Output          string  `gorm:"type:text"`
	Status          string  `gorm:"not null;default:queued;size:20;index"`
	ExecutionTimeMs int     `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (ExecutionModel) TableName() string {
	return constants.TableExecutions
}

// BeforeCreate hook for GORM
func (m *ExecutionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = string(playground.ExecutionStatusQueued)
	}
	return nil
}

// ToEntity converts the persistence model to a domain entity
func (m *ExecutionModel) ToEntity() *playground.Execution {
	return &playground.Execution{
		ID:              m.ID,
		PlaygroundID:    m.PlaygroundID,
		UserID:          m.UserID,
		CodeSnapshot:    m.CodeSnapshot,
		Language:        playground.Language(m.Language),
		Output:          m.Output,
		Status:          playground.ExecutionStatus(m.Status),
		ExecutionTimeMs: m.ExecutionTimeMs,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ExecutionModelFromEntity converts a domain entity to the persistence model
func ExecutionModelFromEntity(e *playground.Execution) *ExecutionModel {
	return &ExecutionModel{
		ID:              e.ID,
		PlaygroundID:    e.PlaygroundID,
		UserID:          e.UserID,
		CodeSnapshot:    e.CodeSnapshot,
		Language:        string(e.Language),
		Output:          e.Output,
		Status:          string(e.Status),
		ExecutionTimeMs: e.ExecutionTimeMs,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
