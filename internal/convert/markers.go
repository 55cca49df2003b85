package convert

import "strings"

// Percent-format marker grammar. A marker line starts a new cell; the
// [markdown] qualifier anywhere on the marker line selects a markdown
// cell, otherwise the cell is code.
const (
	// Marker opens a code cell when it starts a line.
	Marker = "# %%"
	// MarkdownMarker opens a markdown cell.
	MarkdownMarker = "# %% [markdown]"
	// markdownTag is the qualifier checked on a marker line.
	markdownTag = "[markdown]"
	// commentPrefix escapes markdown content lines.
	commentPrefix = "#"
)

// isMarkerLine reports whether line opens a new cell. Markers match
// only at the start of the line, with no leading whitespace tolerance.
func isMarkerLine(line string) bool {
	return strings.HasPrefix(line, Marker)
}

// isMarkdownMarker reports whether a marker line opens a markdown cell.
// The qualifier is matched anywhere on the line, so trailing text after
// the marker can still select markdown.
func isMarkdownMarker(line string) bool {
	return strings.Contains(line, markdownTag)
}

// splitLines splits text into physical lines, treating CRLF as a
// single line break and dropping the phantom empty line a trailing
// newline would otherwise produce. Empty text has no lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// stripTrailingBlank removes trailing whitespace and blank lines from
// the end of a blob. Leading content is never touched.
func stripTrailingBlank(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}

// stripCommentPrefix undoes one layer of markdown line escaping.
// "# text" → "text"; "#text" → "text" (prefix plus any following
// whitespace dropped); anything else is kept unchanged.
func stripCommentPrefix(line string) string {
	if strings.HasPrefix(line, commentPrefix+" ") {
		return line[len(commentPrefix)+1:]
	}
	if strings.HasPrefix(line, commentPrefix) {
		return strings.TrimLeft(line[len(commentPrefix):], " \t")
	}
	return line
}
