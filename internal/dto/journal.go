package dto

import "github.com/pressroomapp/pressroom-server/internal/domain"

// Journal is the client-facing representation of a journal issue.
type Journal struct {
	*domain.Journal

	// Resolved URL for the issue's PDF document, populated by Enricher
	DocumentURL string `json:"document_url,omitempty"`
}
