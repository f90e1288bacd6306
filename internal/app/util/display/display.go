// Package display formats record fields for people.
package display

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// DefaultTruncateLength is the preview length used in listings.
const DefaultTruncateLength = 100

// FormatDuration renders seconds as m:ss. Zero (unknown) renders as "".
func FormatDuration(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return ""
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Truncate shortens text to max runes, appending "..." when cut.
func Truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + "..."
}
