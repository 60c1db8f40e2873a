// Package search provides full-text search functionality using Bleve.
// It enables federated, ranked search across books, journals, and authors.
// This is distinct from the exact substring filter used by list pages: the
// catalog services stay authoritative for list results, while this index
// serves the search endpoint.
package search

import (
	"github.com/pressroomapp/pressroom-server/internal/domain"
)

// DocType represents the type of document in the unified index.
type DocType string

// Document types for the search index.
const (
	DocTypeBook    DocType = "book"
	DocTypeJournal DocType = "journal"
	DocTypeAuthor  DocType = "author"
)

// Document is the unified document structure for the Bleve index.
// All searchable entities are indexed as Documents with type discrimination.
type Document struct {
	// Identity
	ID   string  `json:"id"`
	Type DocType `json:"type"` // Discriminator for result grouping

	// Primary searchable text (title for books/journals, name for authors)
	Name string `json:"name"`

	// Secondary searchable text (description, or bio for authors)
	Description string `json:"description,omitempty"`

	// Exact-match filters
	Lang   string `json:"lang,omitempty"`
	Status string `json:"status"`

	// Numeric fields for sorting
	Year      int   `json:"year,omitempty"`
	CreatedAt int64 `json:"created_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *Document) ToMap() map[string]any {
	m := map[string]any{
		"id":         d.ID,
		"type":       string(d.Type),
		"name":       d.Name,
		"status":     d.Status,
		"created_at": d.CreatedAt,
	}
	if d.Description != "" {
		m["description"] = d.Description
	}
	if d.Lang != "" {
		m["lang"] = d.Lang
	}
	if d.Year != 0 {
		m["year"] = d.Year
	}
	return m
}

// FromBook builds the index document for a book.
func FromBook(b *domain.Book) *Document {
	return &Document{
		ID:          b.ID,
		Type:        DocTypeBook,
		Name:        b.Title,
		Description: b.Description,
		Lang:        b.Lang.String(),
		Status:      b.PublishStatus.String(),
		CreatedAt:   b.CreatedAt.UnixMilli(),
	}
}

// FromJournal builds the index document for a journal.
func FromJournal(j *domain.Journal) *Document {
	return &Document{
		ID:          j.ID,
		Type:        DocTypeJournal,
		Name:        j.Title,
		Description: j.Description,
		Lang:        j.Lang.String(),
		Status:      j.PublishStatus.String(),
		Year:        j.Year,
		CreatedAt:   j.CreatedAt.UnixMilli(),
	}
}

// FromAuthor builds the index document for an author.
func FromAuthor(a *domain.Author) *Document {
	return &Document{
		ID:          a.ID,
		Type:        DocTypeAuthor,
		Name:        a.Name,
		Description: a.Bio,
		Status:      a.PublishStatus.String(),
		CreatedAt:   a.CreatedAt.UnixMilli(),
	}
}
