// Package domain contains the core catalog entities for the Pressroom publishing server.
package domain

import "time"

// Kind is the record-kind discriminator used to scope queries.
type Kind string

// Record kinds stored in the catalog.
const (
	KindBook    Kind = "book"
	KindJournal Kind = "journal"
	KindAuthor  Kind = "author"
	KindAsset   Kind = "asset"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Record provides common fields for every stored document.
// The store is the single source of truth; ID and timestamps are assigned on create.
type Record struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
}

// Touch updates the UpdatedAt timestamp to the current time.
// Call this whenever the underlying entity changes.
func (r *Record) Touch() {
	r.UpdatedAt = time.Now()
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
// Call this when creating a new entity.
func (r *Record) InitTimestamps() {
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
}
