// Package browserutil holds small helpers a browser host uses around its
// views: building data URIs, describing navigation errors and raising
// alerts in a view.
//
// GetDataURI and GetErrorString are pure and safe from any goroutine.
// Alert forwards to the host, which presents the dialog on its UI thread.
package browserutil

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataScheme   = "data:"
	base64Marker = ";base64,"
)

// ErrNotDataURI is returned by ParseDataURI for input that is not a
// base64 data URI.
var ErrNotDataURI = errors.New("browserutil: not a base64 data URI")

// GetDataURI returns payload as a data URI of the given MIME type:
//
//	data:<mimeType>;base64,<payload in standard base64>
//
// The MIME type is used verbatim. An empty payload yields a URI with an
// empty data segment.
func GetDataURI(payload []byte, mimeType string) string {
	var sb strings.Builder
	sb.Grow(len(dataScheme) + len(mimeType) + len(base64Marker) + base64.StdEncoding.EncodedLen(len(payload)))
	sb.WriteString(dataScheme)
	sb.WriteString(mimeType)
	sb.WriteString(base64Marker)
	sb.WriteString(base64.StdEncoding.EncodeToString(payload))
	return sb.String()
}

// GetDataURIString is GetDataURI for text payloads.
func GetDataURIString(payload, mimeType string) string {
	return GetDataURI([]byte(payload), mimeType)
}

// ParseDataURI splits a URI produced by GetDataURI back into its payload
// and MIME type.
func ParseDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, dataScheme)
	if !ok {
		return nil, "", ErrNotDataURI
	}
	// The MIME type is free-form and may itself contain the marker; the
	// base64 payload never does.
	i := strings.LastIndex(rest, base64Marker)
	if i < 0 {
		return nil, "", ErrNotDataURI
	}
	mimeType, encoded := rest[:i], rest[i+len(base64Marker):]
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("browserutil: decode data URI payload: %w", err)
	}
	return payload, mimeType, nil
}
