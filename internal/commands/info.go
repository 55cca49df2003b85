package commands

import (
	"fmt"
	"strings"

	"github.com/gerunddev/cellbridge/internal/notebook"
	"github.com/gerunddev/cellbridge/internal/styles"
)

// Info prints a per-cell summary of a notebook or percent script.
func Info(args []string) {
	if len(args) != 1 {
		fail("usage: cellbridge info <input>")
	}

	input := args[0]
	if err := validateInput(input); err != nil {
		fail(err.Error())
	}

	nb, err := loadDocument(input)
	if err != nil {
		fail(err.Error())
	}

	fmt.Println(styles.TitleStyle.Render(input))
	fmt.Println(styles.HeaderStyle.Render(fmt.Sprintf("%-5s %-10s %6s  %s", "CELL", "TYPE", "LINES", "FIRST LINE")))

	var code, markdown, other int
	for i, cell := range nb.Cells {
		style := styles.WarningStyle
		switch cell.Type {
		case notebook.Code:
			code++
			style = styles.CodeStyle
		case notebook.Markdown:
			markdown++
			style = styles.MarkdownStyle
		default:
			other++
		}

		fmt.Printf("%-5d %s %6d  %s\n",
			i,
			style.Render(fmt.Sprintf("%-10s", cell.Type)),
			countLines(cell.Source),
			styles.NormalTextStyle.Render(firstLine(cell.Source)))
	}

	summary := fmt.Sprintf("%d cells: %d code, %d markdown", len(nb.Cells), code, markdown)
	if other > 0 {
		summary += fmt.Sprintf(", %d other", other)
	}
	fmt.Println(styles.DimStyle.Render(summary))
}

// countLines counts source lines, ignoring a trailing newline.
func countLines(source string) int {
	if source == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(source, "\n"), "\n") + 1
}

// firstLine returns the first source line, truncated for display.
// Truncation counts runes so multi-byte characters are never split.
func firstLine(source string) string {
	line, _, _ := strings.Cut(source, "\n")
	runes := []rune(line)
	if len(runes) > 60 {
		return string(runes[:57]) + "..."
	}
	return line
}
