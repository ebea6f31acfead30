package dto

import (
	"time"

	"codergrounds/internal/domain/playground"
)

// CreatePlaygroundRequest represents the request to create a playground
type CreatePlaygroundRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	Visibility  string `json:"visibility" binding:"omitempty,oneof=public private unlisted"`
}

// UpdatePlaygroundRequest represents the request to update a playground
type UpdatePlaygroundRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
	Visibility  *string `json:"visibility,omitempty" binding:"omitempty,oneof=public private unlisted"`
}

// ListPlaygroundsRequest represents the request to list playgrounds
type ListPlaygroundsRequest struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"page_size" form:"page_size"`
}

// CreateFileRequest represents the request to add a file to a playground
type CreateFileRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Content string `json:"content"`
	Type    string `json:"type" binding:"required,oneof=javascript typescript python css html json markdown plaintext"`
}

// UpdateFileRequest represents the request to update a file
type UpdateFileRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Content *string `json:"content,omitempty"`
	Order   *int    `json:"order,omitempty" binding:"omitempty,min=0"`
}

// ExecuteCodeRequest represents the request to run code in a playground
type ExecuteCodeRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language" binding:"required,oneof=javascript typescript python"`
}

// PlaygroundResponse is the public projection of a playground
type PlaygroundResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Visibility  string    `json:"visibility"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FileResponse is the public projection of a file
type FileResponse struct {
	ID           string    `json:"id"`
	PlaygroundID string    `json:"playground_id"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	Type         string    `json:"type"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ExecutionResponse is the public projection of an execution
type ExecutionResponse struct {
	ID              string    `json:"id"`
	PlaygroundID    string    `json:"playground_id"`
	Language        string    `json:"language"`
	Output          string    `json:"output,omitempty"`
	Status          string    `json:"status"`
	ExecutionTimeMs int       `json:"execution_time_ms"`
	CreatedAt       time.Time `json:"created_at"`
}

// PlaygroundDetailResponse bundles a playground with its files
type PlaygroundDetailResponse struct {
	PlaygroundResponse
	Files []*FileResponse `json:"files"`
}

// ToPlaygroundResponse converts a domain playground to its public projection
func ToPlaygroundResponse(pg *playground.Playground) *PlaygroundResponse {
	if pg == nil {
		return nil
	}
	return &PlaygroundResponse{
		ID:          pg.ID,
		UserID:      pg.UserID,
		Name:        pg.Name,
		Description: pg.Description,
		Visibility:  string(pg.Visibility),
		CreatedAt:   pg.CreatedAt,
		UpdatedAt:   pg.UpdatedAt,
	}
}

// ToFileResponse converts a domain file to its public projection
func ToFileResponse(f *playground.File) *FileResponse {
	if f == nil {
		return nil
	}
	return &FileResponse{
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

// ToExecutionResponse converts a domain execution to its public projection
func ToExecutionResponse(e *playground.Execution) *ExecutionResponse {
	if e == nil {
		return nil
	}
	return &ExecutionResponse{
		ID:              e.ID,
		PlaygroundID:    e.PlaygroundID,
		Language:        string(e.Language),
		Output:          e.Output,
		Status:          string(e.Status),
		ExecutionTimeMs: e.ExecutionTimeMs,
		CreatedAt:       e.CreatedAt,
	}
}
