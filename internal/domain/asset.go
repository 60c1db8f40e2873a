package domain

// AssetKind distinguishes image assets (which get dimensions and a blurhash
// placeholder) from generic file assets.
type AssetKind string

// Asset kinds, chosen by content sniffing on upload.
const (
	AssetImage AssetKind = "image"
	AssetFile  AssetKind = "file"
)

// Asset is the metadata document for an uploaded file. The bytes themselves
// live on the filesystem; the store only holds this descriptor.
type Asset struct {
	Record
	Filename string    `json:"filename"`
	MimeType string    `json:"mime_type"`
	Kind     AssetKind `json:"kind"`
	Size     int64     `json:"size"`

	// Image-only fields.
	Width    int    `json:"width,omitzero"`
	Height   int    `json:"height,omitzero"`
	Blurhash string `json:"blurhash,omitempty"`
}

// IsImage reports whether the asset is an image.
func (a *Asset) IsImage() bool {
	return a.Kind == AssetImage
}
