package entity

import "time"

// BlockEdge is a directed block. Visibility filtering treats the edge
// as mutual: either direction hides both parties from each other.
type BlockEdge struct {
	ID        string    `json:"id"`
	BlockerID string    `json:"blocker_id"`
	BlockedID string    `json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}
