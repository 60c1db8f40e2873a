package assets

import (
	"net/http"
	"strings"

	"github.com/pressroomapp/pressroom-server/internal/domain"
)

// Sniff determines an asset's kind and MIME type from its leading bytes,
// mirroring the upload dispatch the dashboard expects: anything image/* is an
// image asset, everything else (PDFs in practice) is a generic file.
func Sniff(data []byte) (domain.AssetKind, string) {
	mime := http.DetectContentType(data)

	// Strip parameters like "; charset=utf-8".
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}

	if strings.HasPrefix(mime, "image/") {
		return domain.AssetImage, mime
	}
	return domain.AssetFile, mime
}
