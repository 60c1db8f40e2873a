package domain

// Author represents a writer profile in the catalog.
// ProfilePic holds an asset ID, resolved to a URL at view time.
type Author struct {
	Record
	Name          string        `json:"name"`
	Bio           string        `json:"bio,omitempty"`
	ProfilePic    string        `json:"profile_pic,omitempty"`
	PublishStatus PublishStatus `json:"publish_status"`
}

// IsPublished reports whether the author is visible on public listings.
func (a *Author) IsPublished() bool {
	return a.PublishStatus == StatusPublished
}
