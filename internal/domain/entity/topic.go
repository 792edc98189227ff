package entity

import (
	"github.com/google/uuid"
)

// Topic represents a named broadcast group that devices subscribe to.
// Topics are created lazily on first reference and never auto-deleted.
type Topic struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the topic.
	Name        string    `json:"name"`        // Unique topic name.
	Description string    `json:"description"` // Optional human-readable description.
}
