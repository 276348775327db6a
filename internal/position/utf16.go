package position

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// UTF16ToByteOffset converts a UTF-16 code unit offset within a single line to a byte offset.
// LSP positions use UTF-16 code units, but Go strings are UTF-8 byte sequences.
// Characters above U+FFFF count as 2 UTF-16 units; a target falling inside such a
// surrogate pair clamps to the start of the rune.
func UTF16ToByteOffset(s string, utf16Col int) int {
	if utf16Col <= 0 {
		return 0
	}

	units := 0
	byteOffset := 0

	for byteOffset < len(s) && units < utf16Col {
		r, size := utf8.DecodeRuneInString(s[byteOffset:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 byte counts as a single unit
			byteOffset++
			units++
			continue
		}

		runeUTF16Len := utf16.RuneLen(r)
		if runeUTF16Len == 2 && units+1 == utf16Col {
			break
		}

		units += runeUTF16Len
		byteOffset += size
	}

	return byteOffset
}

// StringLengthUTF16 returns the length of a string in UTF-16 code units.
func StringLengthUTF16(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// OffsetAt converts an LSP position (zero-based line, UTF-16 character) to a byte
// offset into content. Positions past the end of a line clamp to the line end;
// lines past the end of the document clamp to len(content).
func OffsetAt(content string, line, character int) int {
	if line < 0 {
		return 0
	}

	lineStart := 0
	for i := 0; i < line; i++ {
		nl := strings.IndexByte(content[lineStart:], '\n')
		if nl < 0 {
			return len(content)
		}
		lineStart += nl + 1
	}

	lineEnd := len(content)
	if nl := strings.IndexByte(content[lineStart:], '\n'); nl >= 0 {
		lineEnd = lineStart + nl
	}

	return lineStart + UTF16ToByteOffset(content[lineStart:lineEnd], character)
}
