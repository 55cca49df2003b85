package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/cellbridge/internal/config"
	"github.com/gerunddev/cellbridge/internal/convert"
	"github.com/gerunddev/cellbridge/internal/logger"
	"github.com/gerunddev/cellbridge/internal/notebook"
	"github.com/gerunddev/cellbridge/internal/styles"
)

// Supported input extensions
const (
	notebookExt = ".ipynb"
	scriptExt   = ".py"
)

// validateInput enforces the usage contract: the input file must exist
// and carry one of the two supported extensions. Returns a user-facing
// error naming the offending path or extension.
func validateInput(path string) error {
	ext := filepath.Ext(path)
	if ext != notebookExt && ext != scriptExt {
		return fmt.Errorf("unsupported extension %q: input must be a %s or %s file", ext, notebookExt, scriptExt)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", path)
		}
		return err
	}

	return nil
}

// deriveOutputPath swaps the input extension for the opposite format's
// extension: foo.ipynb → foo.py, foo.py → foo.ipynb.
func deriveOutputPath(input string) string {
	if strings.HasSuffix(input, notebookExt) {
		return strings.TrimSuffix(input, notebookExt) + scriptExt
	}
	return strings.TrimSuffix(input, scriptExt) + notebookExt
}

// loadDocument reads either supported format into a notebook.
func loadDocument(path string) (*notebook.Notebook, error) {
	if filepath.Ext(path) == notebookExt {
		return notebook.Read(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return convert.ScriptToNotebook(string(data)), nil
}

// newLogger builds the command logger from config: file-backed at the
// configured level, or a discard logger when the log file cannot be
// opened. The returned cleanup closes the file.
func newLogger(cfg *config.Config) (*logger.Logger, func()) {
	l, cleanup, err := logger.NewFileLogger(cfg.LogFile)
	if err != nil {
		return logger.Discard(), func() {}
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err == nil {
		l.SetLevel(level)
	}
	l.ConfigLoaded(config.ConfigPath(), cfg.LogLevel)
	return l, cleanup
}

// fail prints a styled error message and terminates with exit code 1.
func fail(msg string) {
	fmt.Println(styles.ErrorStyle.Render("✗ " + msg))
	os.Exit(1)
}
