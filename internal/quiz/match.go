package quiz

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Match reports whether input equals expected after Unicode NFC
// normalisation, trimming, collapsing inner whitespace and case folding
func Match(input, expected string) bool {
	return strings.EqualFold(normalize(input), normalize(expected))
}

func normalize(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
