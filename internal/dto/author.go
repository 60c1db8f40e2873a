package dto

import "github.com/pressroomapp/pressroom-server/internal/domain"

// Author is the client-facing representation of an author.
type Author struct {
	*domain.Author

	// Resolved URL for the profile picture, populated by Enricher
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
}
