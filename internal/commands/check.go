package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gerunddev/cellbridge/internal/config"
	"github.com/gerunddev/cellbridge/internal/convert"
	"github.com/gerunddev/cellbridge/internal/diff"
	"github.com/gerunddev/cellbridge/internal/notebook"
	"github.com/gerunddev/cellbridge/internal/styles"
)

// Check verifies that a file survives a round trip through the other
// format. Scripts are decoded then re-encoded and diffed against the
// original text; notebooks are encoded then decoded and compared cell
// by cell. Exits non-zero when the round trip loses anything beyond
// trailing whitespace.
func Check(args []string) {
	if len(args) != 1 {
		fail("usage: cellbridge check <input>")
	}

	input := args[0]
	if err := validateInput(input); err != nil {
		fail(err.Error())
	}

	cfg, err := config.Load()
	if err != nil {
		fail("failed to load config: " + err.Error())
	}

	log, cleanup := newLogger(cfg)
	defer cleanup()

	var clean bool
	if filepath.Ext(input) == scriptExt {
		clean = checkScript(input)
	} else {
		clean = checkNotebook(input)
	}

	log.RoundTrip(input, clean)
	if !clean {
		os.Exit(1)
	}
	fmt.Println(styles.SuccessStyle.Render("✓ " + input + " round-trips cleanly"))
}

// checkScript decodes and re-encodes a percent script, printing a
// unified diff when the round trip is not clean.
func checkScript(input string) bool {
	data, err := os.ReadFile(input)
	if err != nil {
		fail(err.Error())
	}

	nb := convert.ScriptToNotebook(string(data))
	reencoded, _ := convert.NotebookToScript(nb)

	d := diff.Unified(input, "round-trip", normalize(string(data)), normalize(reencoded))
	if d == "" {
		return true
	}

	fmt.Println(styles.WarningStyle.Render("! round trip changes " + input + ":"))
	fmt.Print(d)
	return false
}

// checkNotebook encodes and decodes a notebook, comparing the ordered
// (type, source) cell sequence. Cells the script format cannot carry
// are reported and excluded from the comparison.
func checkNotebook(input string) bool {
	nb, err := notebook.Read(input)
	if err != nil {
		fail(err.Error())
	}

	script, warnings := convert.NotebookToScript(nb)
	for _, w := range warnings {
		fmt.Println(styles.WarningStyle.Render("! " + w.String() + ": not representable in percent format"))
	}

	back := convert.ScriptToNotebook(script)

	var expected []notebook.Cell
	for _, c := range nb.Cells {
		if c.Type == notebook.Code || c.Type == notebook.Markdown {
			expected = append(expected, c)
		}
	}

	if len(back.Cells) != len(expected) {
		fmt.Println(styles.WarningStyle.Render(fmt.Sprintf("! cell count changed: %d → %d", len(expected), len(back.Cells))))
		return false
	}

	clean := len(warnings) == 0
	for i, want := range expected {
		got := back.Cells[i]
		if got.Type != want.Type || got.Source != strings.TrimRight(want.Source, " \t\r\n") {
			fmt.Println(styles.WarningStyle.Render(fmt.Sprintf("! cell %d changed (%s)", i, want.Type)))
			clean = false
		}
	}
	return clean
}

// normalize trims trailing whitespace per line and trailing blank
// lines, the only differences a clean round trip is allowed to
// introduce.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}
