package domain

import "math"

// Book represents a published title in the catalog.
// Asset fields (CoverFront, CoverBack, SamplePDF) hold asset IDs; they are
// resolved to URLs when the book is projected into a view record.
type Book struct {
	Record
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	Lang          Language      `json:"lang"`
	MRPPrice      *float64      `json:"mrp_price,omitempty"`
	OfferPrice    *float64      `json:"offer_price,omitempty"`
	AmazonLink    string        `json:"amazon_link,omitempty"`
	FlipkartLink  string        `json:"flipkart_link,omitempty"`
	CoverFront    string        `json:"cover_front,omitempty"`
	CoverBack     string        `json:"cover_back,omitempty"`
	SamplePDF     string        `json:"sample_pdf,omitempty"`
	AuthorID      string        `json:"author_id,omitempty"`
	PublishStatus PublishStatus `json:"publish_status"`
}

// IsPublished reports whether the book is visible on public listings.
func (b *Book) IsPublished() bool {
	return b.PublishStatus == StatusPublished
}

// DiscountPercent returns the display discount as a whole percentage,
// round((1 - offer/mrp) * 100). Returns 0 when either price is missing,
// the MRP is not positive, or the offer does not undercut the MRP.
// The offer <= MRP relationship is advisory, never enforced, so bad data
// degrades to "no discount" instead of a negative badge.
func (b *Book) DiscountPercent() int {
	if b.MRPPrice == nil || b.OfferPrice == nil {
		return 0
	}
	mrp, offer := *b.MRPPrice, *b.OfferPrice
	if mrp <= 0 || offer <= 0 || offer >= mrp {
		return 0
	}
	return int(math.Round((1 - offer/mrp) * 100))
}
