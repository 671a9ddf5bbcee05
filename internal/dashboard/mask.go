package dashboard

import (
	"strings"
	"unicode/utf8"

	"github.com/dwizi/dandi/internal/keyclient"
)

const (
	MaskChar   = "*"
	maskMaxLen = 40
)

// Mask hides value behind MaskChar, capped at 40 characters so long
// secrets do not leak their length.
func Mask(value string) string {
	n := utf8.RuneCountInString(value)
	if n > maskMaxLen {
		n = maskMaxLen
	}
	return strings.Repeat(MaskChar, n)
}

func Display(key keyclient.APIKey, visible bool) string {
	if visible {
		return key.Value
	}
	return Mask(key.Value)
}
