package convert

import (
	"strings"

	"github.com/gerunddev/cellbridge/internal/notebook"
)

// cellAccumulator is the scan state for the cell currently being
// collected: its kind and the content lines seen since its marker.
// A zero accumulator has no open cell.
type cellAccumulator struct {
	kind  string
	lines []string
}

// open starts a new cell of the given kind with an empty buffer.
func (a *cellAccumulator) open(kind string) {
	a.kind = kind
	a.lines = nil
}

// add appends a content line to the open cell's buffer. Lines buffered
// before any cell is open are discarded by flush.
func (a *cellAccumulator) add(line string) {
	a.lines = append(a.lines, line)
}

// flush materializes the open cell onto cells and resets the
// accumulator. With no cell open it is a no-op, which is what silently
// drops any content that appeared before the first marker.
func (a *cellAccumulator) flush(cells []notebook.Cell) []notebook.Cell {
	switch a.kind {
	case notebook.Markdown:
		stripped := make([]string, len(a.lines))
		for i, line := range a.lines {
			stripped[i] = stripCommentPrefix(line)
		}
		source := stripTrailingBlank(strings.Join(stripped, "\n"))
		cells = append(cells, notebook.NewMarkdownCell(source))

	case notebook.Code:
		source := stripTrailingBlank(strings.Join(a.lines, "\n"))
		cells = append(cells, notebook.NewCodeCell(source))
	}

	a.kind = ""
	a.lines = nil
	return cells
}

// ScriptToNotebook parses percent-format script text into a notebook.
//
// Every line starting with "# %%" opens a new cell: markdown when the
// [markdown] qualifier appears on that marker line, code otherwise.
// All other lines belong to the most recently opened cell. Markdown
// content has one layer of comment escaping removed; code content is
// taken verbatim. Trailing blank lines are trimmed from each cell's
// source. Content before the first marker is discarded.
func ScriptToNotebook(text string) *notebook.Notebook {
	var cells []notebook.Cell
	var acc cellAccumulator

	for _, line := range splitLines(text) {
		if isMarkerLine(line) {
			cells = acc.flush(cells)
			if isMarkdownMarker(line) {
				acc.open(notebook.Markdown)
			} else {
				acc.open(notebook.Code)
			}
			continue
		}
		acc.add(line)
	}
	cells = acc.flush(cells)

	return notebook.New(cells)
}
