package domain

import "time"

// InteractionKind is the outcome a user recorded for a location
type InteractionKind string

// interaction kinds
const (
	InteractionMatch     InteractionKind = "match"
	InteractionRejection InteractionKind = "rejection"
)

// Interaction associates a user with a location and an outcome
type Interaction struct {
	UserID     string
	LocationID string
	Kind       InteractionKind
	CreatedAt  time.Time
}
