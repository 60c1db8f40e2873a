// Package dto provides Data Transfer Objects for API responses.
//
// DTOs contain denormalized fields for immediate client rendering while
// preserving normalized IDs for relationships. Asset references are resolved
// to servable URLs so clients never have to construct paths themselves.
package dto

import "github.com/pressroomapp/pressroom-server/internal/domain"

// AuthorSummary is the denormalized author reference embedded in book views.
// Includes just enough for a listing card without a second fetch.
type AuthorSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
}

// Book is the client-facing representation of a book.
//
// Asset ID fields from the domain model are resolved to URLs, the author
// relationship is denormalized to a summary, and the discount is
// precomputed so listing cards render without arithmetic on the client.
type Book struct {
	*domain.Book // Embeds all stored fields

	// Resolved asset URLs, populated by Enricher
	CoverFrontURL string `json:"cover_front_url,omitempty"`
	CoverBackURL  string `json:"cover_back_url,omitempty"`
	SamplePDFURL  string `json:"sample_pdf_url,omitempty"`

	// Denormalized author for immediate rendering
	Author *AuthorSummary `json:"author,omitempty"`

	// Precomputed from MRP and offer price
	DiscountPercent int `json:"discount_percent"`
}
