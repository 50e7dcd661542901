package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the fields shared by every persisted record. The
// identifier is assigned once at construction and never changes; timestamps
// are string-encoded ISO-8601 because that is the encoding the store already
// holds for existing rows.
type BaseEntity struct {
	ID        string `json:"id" db:"id"`
	CreatedAt string `json:"createdAt" db:"created_at"`
	UpdatedAt string `json:"updatedAt" db:"updated_at"`
}

// NewBaseEntity returns a base with a fresh identifier and "now" timestamps.
func NewBaseEntity() BaseEntity {
	now := NowISO()
	return BaseEntity{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Stamp refreshes the updated timestamp. Called on every update commit.
func (b *BaseEntity) Stamp() {
	b.UpdatedAt = NowISO()
}

// NowISO returns the current UTC time in the store's timestamp encoding.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
