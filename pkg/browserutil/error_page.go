package browserutil

import (
	"html"
	"strconv"
	"strings"
)

// ErrorPageURI returns a text/html data URI describing a failed navigation.
// Hosts load it into the view in place of the page that failed.
func ErrorPageURI(failedURL string, code ErrorCode) string {
	return GetDataURIString(errorPageHTML(failedURL, code), "text/html")
}

func errorPageHTML(failedURL string, code ErrorCode) string {
	var sb strings.Builder
	sb.WriteString(`<html><head><meta charset="utf-8"><title>Page failed to load</title></head>`)
	sb.WriteString(`<body bgcolor="white"><h2>Failed to load URL `)
	sb.WriteString(html.EscapeString(failedURL))
	sb.WriteString(` with error `)
	sb.WriteString(html.EscapeString(GetErrorString(code)))
	sb.WriteString(` (`)
	sb.WriteString(strconv.Itoa(int(code)))
	sb.WriteString(`).</h2></body></html>`)
	return sb.String()
}
