// Package report renders project storage usage as threshold-colored,
// display-width-aligned text.
package report

import (
	"fmt"
	"strings"
)

// sizeUnits are the ascending 1024-based units. PB is terminal: values
// past TB are printed in PB without further division.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize converts a byte count to a human-readable string. Zero
// formats as exactly "0 B"; everything else gets two decimals.
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}

	size := float64(bytes)
	for _, unit := range sizeUnits {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.2f PB", size)
}

// DisplayWidth returns the terminal column width of text. Characters in
// the CJK Unified Ideographs block (U+4E00..U+9FFF) occupy two columns;
// everything else counts as one.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		if r >= 0x4e00 && r <= 0x9fff {
			width += 2
		} else {
			width++
		}
	}
	return width
}

// Alignment selects which side of the text Pad fills.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Pad fills text with spaces up to the target display width. Text already
// at or past the target is returned unchanged; there is no truncation.
// Center alignment puts the smaller half of the padding on the left.
func Pad(text string, width int, align Alignment) string {
	padding := width - DisplayWidth(text)
	if padding <= 0 {
		return text
	}

	switch align {
	case AlignRight:
		return strings.Repeat(" ", padding) + text
	case AlignCenter:
		left := padding / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
	default:
		return text + strings.Repeat(" ", padding)
	}
}
