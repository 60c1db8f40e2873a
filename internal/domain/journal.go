package domain

// Journal represents a periodical issue in the catalog.
// Month is a free-text label ("March", "மார்ச்") and Year a plain integer;
// issue ordering sorts on the raw values, not on calendar semantics.
type Journal struct {
	Record
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	Lang          Language      `json:"lang"`
	Month         string        `json:"month,omitempty"`
	Year          int           `json:"year,omitzero"`
	Document      string        `json:"document,omitempty"`
	PublishStatus PublishStatus `json:"publish_status"`
}

// IsPublished reports whether the journal is visible on public listings.
func (j *Journal) IsPublished() bool {
	return j.PublishStatus == StatusPublished
}
