package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe identifier from a title: lowercase, accents
// folded to ASCII, every run of non-alphanumerics collapsed to a single
// hyphen, edge hyphens trimmed. Pure and deterministic.
func Slugify(title string) string {
	s := strings.ToLower(title)
	if folded, _, err := transform.String(foldTransformer, s); err == nil {
		s = folded
	}

	var sb strings.Builder
	prevHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				sb.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.Trim(sb.String(), "-")
}
