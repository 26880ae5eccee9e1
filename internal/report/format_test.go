package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero is the bare literal", bytes: 0, expected: "0 B"},
		{name: "one byte", bytes: 1, expected: "1.00 B"},
		{name: "just below a kilobyte", bytes: 1023, expected: "1023.00 B"},
		{name: "exactly one kilobyte", bytes: 1024, expected: "1.00 KB"},
		{name: "one and a half kilobytes", bytes: 1536, expected: "1.50 KB"},
		{name: "exactly one megabyte", bytes: 1024 * 1024, expected: "1.00 MB"},
		{name: "exactly one gigabyte", bytes: 1024 * 1024 * 1024, expected: "1.00 GB"},
		{name: "exactly one terabyte", bytes: 1024 * 1024 * 1024 * 1024, expected: "1.00 TB"},
		{name: "petabytes are reached by falling through", bytes: 1024 * 1024 * 1024 * 1024 * 1024, expected: "1.00 PB"},
		{name: "petabyte is the terminal unit", bytes: 1024 * 1024 * 1024 * 1024 * 1024 * 2048, expected: "2048.00 PB"},
		{name: "three thousand bytes", bytes: 3000, expected: "2.93 KB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatSize(tc.bytes))
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty string", text: "", expected: 0},
		{name: "pure ASCII counts characters", text: "hello", expected: 5},
		{name: "CJK ideographs count double", text: "仓库名称", expected: 8},
		{name: "mixed ASCII and CJK", text: "repo仓库x", expected: 9},
		{name: "digits and punctuation are narrow", text: "90.00%", expected: 6},
		{name: "first ideograph of the block is wide", text: string(rune(0x4e00)), expected: 2},
		{name: "last ideograph of the block is wide", text: string(rune(0x9fff)), expected: 2},
		{name: "just past the block is narrow", text: string(rune(0xa000)), expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DisplayWidth(tc.text))
		})
	}
}

func TestPad(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		width    int
		align    Alignment
		expected string
	}{
		{name: "left append", text: "ab", width: 5, align: AlignLeft, expected: "ab   "},
		{name: "right prepend", text: "ab", width: 5, align: AlignRight, expected: "   ab"},
		{name: "center puts smaller half left", text: "ab", width: 5, align: AlignCenter, expected: " ab  "},
		{name: "CJK text pads by display width", text: "类型", width: 12, align: AlignLeft, expected: "类型        "},
		{name: "exact width is unchanged", text: "abcde", width: 5, align: AlignLeft, expected: "abcde"},
		{name: "overflow is not truncated", text: "abcdefgh", width: 5, align: AlignLeft, expected: "abcdefgh"},
		{name: "overflowing CJK is not truncated", text: "仓库名称", width: 6, align: AlignRight, expected: "仓库名称"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Pad(tc.text, tc.width, tc.align)
			assert.Equal(t, tc.expected, got)

			// Width law: the padded result occupies max(width, original).
			want := tc.width
			if w := DisplayWidth(tc.text); w > want {
				want = w
			}
			assert.Equal(t, want, DisplayWidth(got))
		})
	}
}
