package playground

import "time"

// Visibility controls who can view a playground.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityUnlisted Visibility = "unlisted"
)

// IsValid reports whether v is a known visibility value.
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityUnlisted:
		return true
	}
	return false
}

// Playground is a user-owned workspace holding files and executions.
type Playground struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Visibility  Visibility
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether the playground belongs to the given user.
func (p *Playground) IsOwnedBy(userID string) bool {
	return p.UserID == userID
}

// IsVisibleTo reports whether the given user may read the playground.
// Public and unlisted playgrounds are readable by anyone with the ID.
func (p *Playground) IsVisibleTo(userID string) bool {
	if p.Visibility != VisibilityPrivate {
		return true
	}
	return p.IsOwnedBy(userID)
}
