package playground

import "time"

// ExecutionStatus tracks a code run through its lifecycle.
type ExecutionStatus string

const (
	ExecutionStatusQueued    ExecutionStatus = "queued"
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusFailed    ExecutionStatus = "failed"
	ExecutionStatusTimeout   ExecutionStatus = "timeout"
)

// Language identifies the runtime a snapshot executes under.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguagePython     Language = "python"
)

// IsValid reports whether l is a supported execution language.
func (l Language) IsValid() bool {
	switch l {
	case LanguageJavaScript, LanguageTypeScript, LanguagePython:
		return true
	}
	return false
}

// Execution is a recorded code run. UserID is nil for anonymous runs against
// public playgrounds. CodeSnapshot preserves the code exactly as submitted,
// decoupled from later file edits.
type Execution struct {
	ID              string
	PlaygroundID    string
	UserID          *string
	CodeSnapshot    string
	Language        Language
	Output          string
	Status          ExecutionStatus
	ExecutionTimeMs int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
