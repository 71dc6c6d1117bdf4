package browserutil

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imageMIMETypes maps image.DecodeConfig format names to MIME types.
var imageMIMETypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"webp": "image/webp",
}

// DetectMIMEType guesses the MIME type of payload for use with GetDataURI.
// Images are identified by decoding their header; anything else goes
// through net/http content sniffing. The result never contains spaces, so
// it can be placed in a data URI as is.
func DetectMIMEType(payload []byte) string {
	if _, format, err := image.DecodeConfig(bytes.NewReader(payload)); err == nil {
		if t, ok := imageMIMETypes[format]; ok {
			return t
		}
	}
	return strings.ReplaceAll(http.DetectContentType(payload), " ", "")
}
