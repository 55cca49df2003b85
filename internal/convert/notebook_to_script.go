// Package convert implements the bidirectional transformation between
// Jupyter notebooks and percent-format scripts (# %% markers). Both
// directions are pure: they never touch the filesystem and never fail,
// reporting recoverable problems through a warning side channel.
package convert

import (
	"fmt"
	"strings"

	"github.com/gerunddev/cellbridge/internal/notebook"
)

// Warning records a non-fatal problem encountered during conversion,
// such as a cell type the percent format cannot represent.
type Warning struct {
	CellIndex int
	CellType  string
}

// String returns the user-facing diagnostic for the warning.
func (w Warning) String() string {
	return fmt.Sprintf("skipping unsupported cell type %q (cell %d)", w.CellType, w.CellIndex)
}

// NotebookToScript converts a notebook into percent-format script text.
//
// Markdown cells become a "# %% [markdown]" marker followed by their
// source with every line comment-escaped ("# line", or a bare "#" for
// blank lines). Code cells become a "# %%" marker followed by their
// source verbatim. Each cell is followed by one blank separator line,
// and the whole blob ends with exactly one trailing newline.
//
// Cells of any other type are dropped from the output and reported as
// warnings; conversion always continues.
//
// Known limitation: markdown lines that themselves start with "# %%"
// are not escaped, so they read back as a cell boundary.
func NotebookToScript(nb *notebook.Notebook) (string, []Warning) {
	var lines []string
	var warnings []Warning

	for i, cell := range nb.Cells {
		switch cell.Type {
		case notebook.Markdown:
			lines = append(lines, MarkdownMarker)
			for _, line := range splitLines(cell.Source) {
				if strings.TrimSpace(line) == "" {
					lines = append(lines, commentPrefix)
				} else {
					lines = append(lines, commentPrefix+" "+line)
				}
			}
			lines = append(lines, "")

		case notebook.Code:
			lines = append(lines, Marker)
			lines = append(lines, splitLines(cell.Source)...)
			lines = append(lines, "")

		default:
			warnings = append(warnings, Warning{CellIndex: i, CellType: cell.Type})
		}
	}

	return stripTrailingBlank(strings.Join(lines, "\n")) + "\n", warnings
}
