// Package fix provides text edits, rewrite rules, and the deterministic
// fix applier that turns accepted issues into rewritten source.
package fix

// TextEdit represents a single text replacement in a source file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Line holds byte-offset metadata for one source line.
type Line struct {
	// Number is the 1-based line number.
	Number int

	// StartOffset is the byte index of the first character of the line.
	StartOffset int

	// EndOffset is the byte index just past the line text, excluding the
	// line terminator.
	EndOffset int

	// NextOffset is the byte index of the start of the following line
	// (past the terminator), or len(content) for the last line.
	NextOffset int
}

// SplitLines builds line metadata for source content. Both LF and CRLF
// terminators are handled.
func SplitLines(content string) []Line {
	if len(content) == 0 {
		return nil
	}

	var lines []Line
	start := 0
	num := 1

	for idx := 0; idx < len(content); idx++ {
		if content[idx] != '\n' {
			continue
		}
		end := idx
		if idx > 0 && content[idx-1] == '\r' {
			end = idx - 1
		}
		lines = append(lines, Line{
			Number:      num,
			StartOffset: start,
			EndOffset:   end,
			NextOffset:  idx + 1,
		})
		start = idx + 1
		num++
	}

	// Final line without a trailing newline.
	if start < len(content) {
		lines = append(lines, Line{
			Number:      num,
			StartOffset: start,
			EndOffset:   len(content),
			NextOffset:  len(content),
		})
	}

	return lines
}

// Text returns the text of the line within content, without terminator.
func (l Line) Text(content string) string {
	return content[l.StartOffset:l.EndOffset]
}
