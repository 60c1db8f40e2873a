package domain

// PublishStatus controls whether a record is visible on public listings.
type PublishStatus string

// Publish states for catalog records.
const (
	StatusDraft     PublishStatus = "draft"
	StatusPublished PublishStatus = "published"
)

// String returns the string representation of the status.
func (s PublishStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a recognized value.
func (s PublishStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished:
		return true
	default:
		return false
	}
}
