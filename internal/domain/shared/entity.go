package shared

import "time"

// BaseEntity carries the identity and timestamps every stored record has.
// IDs are assigned by the database and never change.
type BaseEntity struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

