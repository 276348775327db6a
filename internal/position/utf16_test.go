package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF16ToByteOffset(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		utf16Col   int
		expectByte int
	}{
		{name: "empty string", s: "", utf16Col: 0, expectByte: 0},
		{name: "ASCII only", s: "<div class>", utf16Col: 4, expectByte: 4},
		{name: "beyond end", s: "p10", utf16Col: 100, expectByte: 3},
		{name: "negative offset", s: "hello", utf16Col: -1, expectByte: 0},
		{
			name:       "emoji counts as two units",
			s:          "👍 ul>li",
			utf16Col:   2,
			expectByte: 4,
		},
		{
			name:       "CJK characters are one unit, three bytes",
			s:          "颜色",
			utf16Col:   2,
			expectByte: 6,
		},
		{
			name:       "inside surrogate pair clamps to rune start",
			s:          "a👍b",
			utf16Col:   2,
			expectByte: 1,
		},
		{
			name:       "invalid UTF-8 byte counts as one unit",
			s:          "div\xFFspan",
			utf16Col:   5,
			expectByte: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectByte, UTF16ToByteOffset(tt.s, tt.utf16Col))
		})
	}
}

func TestStringLengthUTF16(t *testing.T) {
	assert.Equal(t, 0, StringLengthUTF16(""))
	assert.Equal(t, 5, StringLengthUTF16("hello"))
	assert.Equal(t, 2, StringLengthUTF16("👍"))
	assert.Equal(t, 4, StringLengthUTF16("颜色👍"))
}

func TestOffsetAt(t *testing.T) {
	content := "<ul>\n  <li>颜色</li>\n</ul>"

	tests := []struct {
		name      string
		line      int
		character int
		want      int
	}{
		{name: "document start", line: 0, character: 0, want: 0},
		{name: "end of first line", line: 0, character: 4, want: 4},
		{name: "character past line end clamps", line: 0, character: 40, want: 4},
		{name: "second line indent", line: 1, character: 2, want: 7},
		{name: "after multibyte text", line: 1, character: 8, want: 17},
		{name: "last line", line: 2, character: 5, want: len(content)},
		{name: "line past end clamps", line: 9, character: 0, want: len(content)},
		{name: "negative line", line: -1, character: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OffsetAt(content, tt.line, tt.character))
		})
	}
}
