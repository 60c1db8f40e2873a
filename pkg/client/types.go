package client

import "time"

// Book is the wire representation of a book as served by the catalog API.
// Asset references arrive pre-resolved to URLs and the discount is
// precomputed, so callers render without further lookups.
type Book struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Lang          string    `json:"lang"`
	MRPPrice      *float64  `json:"mrp_price,omitempty"`
	OfferPrice    *float64  `json:"offer_price,omitempty"`
	AmazonLink    string    `json:"amazon_link,omitempty"`
	FlipkartLink  string    `json:"flipkart_link,omitempty"`
	AuthorID      string    `json:"author_id,omitempty"`
	PublishStatus string    `json:"publish_status"`

	CoverFrontURL   string         `json:"cover_front_url,omitempty"`
	CoverBackURL    string         `json:"cover_back_url,omitempty"`
	SamplePDFURL    string         `json:"sample_pdf_url,omitempty"`
	Author          *AuthorSummary `json:"author,omitempty"`
	DiscountPercent int            `json:"discount_percent"`
}

// AuthorSummary is the denormalized author credit embedded in book views.
type AuthorSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
}

// Journal is the wire representation of a periodical issue.
type Journal struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Lang          string    `json:"lang"`
	Month         string    `json:"month,omitempty"`
	Year          int       `json:"year,omitempty"`
	PublishStatus string    `json:"publish_status"`

	DocumentURL string `json:"document_url,omitempty"`
}

// Author is the wire representation of a writer profile.
type Author struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Name          string    `json:"name"`
	Bio           string    `json:"bio,omitempty"`
	PublishStatus string    `json:"publish_status"`

	ProfilePicURL string `json:"profile_pic_url,omitempty"`
}

// Page is one page of a listing response.
//
// HasMore is the server's full-page heuristic: the final page can report
// true and yield an empty follow-up page. Pager handles that for you.
type Page[T any] struct {
	Items   []T  `json:"items"`
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"has_more"`
}

// SearchResult is a ranked full-text search response.
type SearchResult struct {
	Query  string      `json:"query"`
	Total  uint64      `json:"total"`
	TookMs int64       `json:"took_ms"`
	Hits   []SearchHit `json:"hits"`
}

// SearchHit is one ranked match. Name carries the book/journal title or the
// author name depending on Type.
type SearchHit struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Score      float64           `json:"score"`
	Name       string            `json:"name"`
	Lang       string            `json:"lang,omitempty"`
	Year       int               `json:"year,omitempty"`
	Highlights map[string]string `json:"highlights,omitempty"`
}
