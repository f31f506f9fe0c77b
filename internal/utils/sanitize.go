package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicy  = bluemonday.UGCPolicy()
	stripTagsPolicy = bluemonday.StripTagsPolicy()
)

// SanitizeRichText keeps the safe markup subset of an authored rich-text
// body (the sub-service "details" editor emits HTML).
func SanitizeRichText(s string) string {
	return richTextPolicy.Sanitize(s)
}

// StripHTML reduces markup to plain text and collapses whitespace
func StripHTML(s string) string {
	s = stripTagsPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
