package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerunddev/cellbridge/internal/config"
	"github.com/gerunddev/cellbridge/internal/convert"
	"github.com/gerunddev/cellbridge/internal/notebook"
	"github.com/gerunddev/cellbridge/internal/styles"
)

// Convert converts one input file to the opposite format. The input
// extension selects the direction: .ipynb encodes to a percent script,
// .py decodes to a notebook. The output path defaults to the input
// path with its extension swapped.
func Convert(args []string) {
	force := false
	var paths []string
	for _, arg := range args {
		switch arg {
		case "--force", "-f":
			force = true
		default:
			paths = append(paths, arg)
		}
	}

	if len(paths) < 1 || len(paths) > 2 {
		fail("usage: cellbridge convert [--force] <input> [output]")
	}

	input := paths[0]
	if err := validateInput(input); err != nil {
		fail(err.Error())
	}

	output := deriveOutputPath(input)
	if len(paths) == 2 {
		output = paths[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fail("failed to load config: " + err.Error())
	}

	if !force && !cfg.Overwrite {
		if _, err := os.Stat(output); err == nil {
			fail(fmt.Sprintf("output file already exists: %s (use --force to overwrite)", output))
		}
	}

	log, cleanup := newLogger(cfg)
	defer cleanup()

	var cells int
	if filepath.Ext(input) == notebookExt {
		nb, err := notebook.Read(input)
		if err != nil {
			log.ReadError(input, err)
			fail(err.Error())
		}

		script, warnings := convert.NotebookToScript(nb)
		for _, w := range warnings {
			fmt.Println(styles.WarningStyle.Render("! " + w.String()))
			log.CellSkipped(w.CellIndex, w.CellType)
		}

		if err := os.WriteFile(output, []byte(script), 0644); err != nil {
			log.WriteError(output, err)
			fail(err.Error())
		}
		cells = len(nb.Cells) - len(warnings)
	} else {
		data, err := os.ReadFile(input)
		if err != nil {
			log.ReadError(input, err)
			fail(err.Error())
		}

		nb := convert.ScriptToNotebook(string(data))
		if err := nb.Write(output); err != nil {
			log.WriteError(output, err)
			fail(err.Error())
		}
		cells = len(nb.Cells)
	}

	log.Converted(input, output, cells)
	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ %s → %s (%d cells)", input, output, cells)))
}
