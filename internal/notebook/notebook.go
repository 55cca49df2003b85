// Package notebook reads and writes Jupyter notebook containers
// (nbformat 4 JSON). It exposes the ordered cell list the converters
// operate on and hides the container's metadata plumbing.
package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Cell types found in an nbformat container.
const (
	Code     = "code"
	Markdown = "markdown"
	Raw      = "raw"
)

// Cell is one unit of a notebook: a type discriminator and its source
// text. Source is the joined multi-line text, not the container's
// line-array form.
type Cell struct {
	Type   string
	ID     string
	Source string
}

// Notebook is an ordered sequence of cells. Order is the notebook's
// top-to-bottom reading order and is preserved exactly.
type Notebook struct {
	Cells []Cell
}

// New creates a notebook from an ordered cell list.
func New(cells []Cell) *Notebook {
	return &Notebook{Cells: cells}
}

// NewCodeCell constructs a fresh code cell with a generated id.
func NewCodeCell(source string) Cell {
	return Cell{Type: Code, ID: uuid.NewString(), Source: source}
}

// NewMarkdownCell constructs a fresh markdown cell with a generated id.
func NewMarkdownCell(source string) Cell {
	return Cell{Type: Markdown, ID: uuid.NewString(), Source: source}
}

// rawNotebook mirrors the on-disk nbformat 4 layout.
type rawNotebook struct {
	Cells         []rawCell      `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
}

// rawCell keeps source as raw JSON because the container allows both a
// plain string and an array of line strings.
type rawCell struct {
	CellType string          `json:"cell_type"`
	ID       string          `json:"id,omitempty"`
	Source   json.RawMessage `json:"source"`
}

// codeCellJSON is the serialized form of a code cell. Execution count
// and outputs are always reset: this tool does not preserve outputs.
type codeCellJSON struct {
	CellType       string         `json:"cell_type"`
	ExecutionCount any            `json:"execution_count"`
	ID             string         `json:"id"`
	Metadata       map[string]any `json:"metadata"`
	Outputs        []any          `json:"outputs"`
	Source         []string       `json:"source"`
}

// textCellJSON is the serialized form of any cell without outputs:
// markdown, raw, and unknown types keep their own cell_type.
type textCellJSON struct {
	CellType string         `json:"cell_type"`
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
	Source   []string       `json:"source"`
}

// Read loads a notebook file and returns its ordered cell list.
// Container decode failures are returned as-is apart from naming the
// offending path.
func Read(path string) (*Notebook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw rawNotebook
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse notebook %s: %w", path, err)
	}

	cells := make([]Cell, 0, len(raw.Cells))
	for _, rc := range raw.Cells {
		source, err := decodeSource(rc.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to parse notebook %s: %w", path, err)
		}
		cells = append(cells, Cell{Type: rc.CellType, ID: rc.ID, Source: source})
	}

	return New(cells), nil
}

// Write serializes the notebook to path as nbformat 4.5 JSON. Cells
// without an id get one so the output validates against nbformat 4.5.
func (nb *Notebook) Write(path string) error {
	out := rawDocument(nb)

	data, err := json.MarshalIndent(out, "", " ")
	if err != nil {
		return fmt.Errorf("failed to marshal notebook: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write notebook %s: %w", path, err)
	}

	return nil
}

// rawDocument builds the serializable container for a notebook.
func rawDocument(nb *Notebook) map[string]any {
	cells := make([]any, 0, len(nb.Cells))
	for _, c := range nb.Cells {
		id := c.ID
		if id == "" {
			id = uuid.NewString()
		}
		switch c.Type {
		case Code:
			cells = append(cells, codeCellJSON{
				CellType:       Code,
				ExecutionCount: nil,
				ID:             id,
				Metadata:       map[string]any{},
				Outputs:        []any{},
				Source:         encodeSource(c.Source),
			})
		default:
			cells = append(cells, textCellJSON{
				CellType: c.Type,
				ID:       id,
				Metadata: map[string]any{},
				Source:   encodeSource(c.Source),
			})
		}
	}

	return map[string]any{
		"cells":          cells,
		"metadata":       map[string]any{},
		"nbformat":       4,
		"nbformat_minor": 5,
	}
}

// decodeSource accepts both source encodings the container allows:
// a single string, or an array of line strings carrying their own
// newlines.
func decodeSource(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var lines []string
	if err := json.Unmarshal(raw, &lines); err != nil {
		return "", fmt.Errorf("invalid cell source: %w", err)
	}
	return strings.Join(lines, ""), nil
}

// encodeSource splits source into the line-array form, each line
// keeping its trailing newline. Empty source becomes an empty array.
func encodeSource(source string) []string {
	if source == "" {
		return []string{}
	}
	lines := strings.SplitAfter(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
