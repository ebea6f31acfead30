package playground

import "context"

// ListFilter represents filtering and pagination options for playground list.
type ListFilter struct {
	UserID     string
	Visibility Visibility
	Page       int
	PageSize   int
}

// Repository defines the interface for playground data operations.
// Lookup methods return (nil, nil) when no row matches.
type Repository interface {
	// Create creates a new playground
	Create(ctx context.Context, pg *Playground) error

	// GetByID retrieves a playground by ID
	GetByID(ctx context.Context, id string) (*Playground, error)

	// List retrieves a paginated list of playgrounds
	List(ctx context.Context, filter ListFilter) ([]*Playground, int64, error)

	// Update updates an existing playground
	Update(ctx context.Context, pg *Playground) error

	// Delete soft deletes a playground and its files
	Delete(ctx context.Context, id string) error
}

// FileRepository defines the interface for file data operations.
type FileRepository interface {
	// Create creates a new file
	Create(ctx context.Context, f *File) error

	// GetByID retrieves a file by ID
	GetByID(ctx context.Context, id string) (*File, error)

	// ListByPlayground retrieves all files of a playground ordered by position
	ListByPlayground(ctx context.Context, playgroundID string) ([]*File, error)

	// MaxOrder returns the highest order value among the playground's files
	MaxOrder(ctx context.Context, playgroundID string) (int, error)

	// Update updates an existing file
	Update(ctx context.Context, f *File) error

	// Delete soft deletes a file
	Delete(ctx context.Context, id string) error
}

// ExecutionRepository defines the interface for execution data operations.
type ExecutionRepository interface {
	// Create creates a new execution record
	Create(ctx context.Context, e *Execution) error

	// GetByID retrieves an execution by ID
	GetByID(ctx context.Context, id string) (*Execution, error)

	// ListByPlayground retrieves recent executions of a playground
	ListByPlayground(ctx context.Context, playgroundID string, limit int) ([]*Execution, error)

	// Update updates an execution record
	Update(ctx context.Context, e *Execution) error
}
