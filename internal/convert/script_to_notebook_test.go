package convert

import (
	"testing"

	"github.com/gerunddev/cellbridge/internal/notebook"
)

// cellPair is the observable part of a decoded cell.
type cellPair struct {
	kind   string
	source string
}

func decodePairs(text string) []cellPair {
	nb := ScriptToNotebook(text)
	pairs := make([]cellPair, len(nb.Cells))
	for i, c := range nb.Cells {
		pairs[i] = cellPair{kind: c.Type, source: c.Source}
	}
	return pairs
}

func TestScriptToNotebook(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []cellPair
	}{
		{
			name:  "single code cell",
			input: "# %%\nx = 1\nprint(x)\n",
			expected: []cellPair{
				{notebook.Code, "x = 1\nprint(x)"},
			},
		},
		{
			name:  "single markdown cell",
			input: "# %% [markdown]\n# # Title\n#\n# Some text\n",
			expected: []cellPair{
				{notebook.Markdown, "# Title\n\nSome text"},
			},
		},
		{
			name:  "mixed cells keep order",
			input: "# %%\nimport os\n\n# %% [markdown]\n# Notes\n\n# %%\nos.getcwd()\n",
			expected: []cellPair{
				{notebook.Code, "import os"},
				{notebook.Markdown, "Notes"},
				{notebook.Code, "os.getcwd()"},
			},
		},
		{
			name:  "empty code cell",
			input: "# %%\n\n# %%\ny = 2\n",
			expected: []cellPair{
				{notebook.Code, ""},
				{notebook.Code, "y = 2"},
			},
		},
		{
			name:  "marker at end of input flushes an empty cell",
			input: "# %%\nx = 1\n\n# %%\n",
			expected: []cellPair{
				{notebook.Code, "x = 1"},
				{notebook.Code, ""},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []cellPair{},
		},
		{
			name:  "trailing blank lines trimmed from cell source",
			input: "# %%\nx = 1\n\n\n\n",
			expected: []cellPair{
				{notebook.Code, "x = 1"},
			},
		},
		{
			name:  "blank markdown lines preserved inside the cell",
			input: "# %% [markdown]\n# a\n#\n# b\n",
			expected: []cellPair{
				{notebook.Markdown, "a\n\nb"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := decodePairs(tt.input)
			if len(actual) != len(tt.expected) {
				t.Fatalf("Got %d cells, want %d: %+v", len(actual), len(tt.expected), actual)
			}
			for i := range actual {
				if actual[i] != tt.expected[i] {
					t.Errorf("Cell %d = %+v, want %+v", i, actual[i], tt.expected[i])
				}
			}
		})
	}
}

func TestMarkerRecognition(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		isMarker bool
		kind     string
	}{
		{
			name:     "plain code marker",
			line:     "# %%",
			isMarker: true,
			kind:     notebook.Code,
		},
		{
			name:     "markdown marker",
			line:     "# %% [markdown]",
			isMarker: true,
			kind:     notebook.Markdown,
		},
		{
			name:     "marker with ignored trailing content",
			line:     "# %% setup cell",
			isMarker: true,
			kind:     notebook.Code,
		},
		{
			name:     "qualifier anywhere on the marker line selects markdown",
			line:     "# %% cell two [markdown]",
			isMarker: true,
			kind:     notebook.Markdown,
		},
		{
			name:     "leading whitespace is not a marker",
			line:     "  # %%",
			isMarker: false,
		},
		{
			name:     "plain comment is not a marker",
			line:     "# percent",
			isMarker: false,
		},
		{
			name:     "marker token mid-line is not a marker",
			line:     "print('# %%')",
			isMarker: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isMarkerLine(tt.line); got != tt.isMarker {
				t.Fatalf("isMarkerLine(%q) = %v, want %v", tt.line, got, tt.isMarker)
			}
			if !tt.isMarker {
				return
			}
			wantMarkdown := tt.kind == notebook.Markdown
			if got := isMarkdownMarker(tt.line); got != wantMarkdown {
				t.Errorf("isMarkdownMarker(%q) = %v, want %v", tt.line, got, wantMarkdown)
			}
		})
	}
}

func TestStripCommentPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "prefix with space",
			input:    "# some text",
			expected: "some text",
		},
		{
			name:     "bare prefix",
			input:    "#",
			expected: "",
		},
		{
			name:     "prefix without space",
			input:    "#text",
			expected: "text",
		},
		{
			name:     "prefix with tab",
			input:    "#\ttext",
			expected: "text",
		},
		{
			name:     "only one space dropped after the prefix",
			input:    "#  indented",
			expected: " indented",
		},
		{
			name:     "double prefix loses one layer",
			input:    "# # Heading",
			expected: "# Heading",
		},
		{
			name:     "malformed line kept unchanged",
			input:    "no prefix here",
			expected: "no prefix here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := stripCommentPrefix(tt.input)
			if actual != tt.expected {
				t.Errorf("stripCommentPrefix(%q) = %q, want %q", tt.input, actual, tt.expected)
			}
		})
	}
}

func TestScriptToNotebookCRLF(t *testing.T) {
	// CRLF is one line break: no \r may survive into cell sources, and
	// interior markers carrying \r still open cells
	input := "# %%\r\nx = 1\r\ny = 2\r\n\r\n# %% [markdown]\r\n# note\r\n"

	pairs := decodePairs(input)

	expected := []cellPair{
		{notebook.Code, "x = 1\ny = 2"},
		{notebook.Markdown, "note"},
	}
	if len(pairs) != len(expected) {
		t.Fatalf("Got %d cells, want %d: %+v", len(pairs), len(expected), pairs)
	}
	for i := range pairs {
		if pairs[i] != expected[i] {
			t.Errorf("Cell %d = %+v, want %+v", i, pairs[i], expected[i])
		}
	}
}

func TestPreMarkerContentDiscarded(t *testing.T) {
	input := "#!/usr/bin/env python\n# a stray comment\nstray = True\n\n# %%\nx = 1\n"

	pairs := decodePairs(input)

	if len(pairs) != 1 {
		t.Fatalf("Got %d cells, want 1: %+v", len(pairs), pairs)
	}
	if pairs[0] != (cellPair{notebook.Code, "x = 1"}) {
		t.Errorf("First cell = %+v, want code cell from first marker", pairs[0])
	}
}

func TestMalformedMarkdownLineKept(t *testing.T) {
	// A markdown content line missing its comment prefix is taken as-is
	input := "# %% [markdown]\n# escaped\nunescaped\n"

	pairs := decodePairs(input)

	if len(pairs) != 1 {
		t.Fatalf("Got %d cells, want 1", len(pairs))
	}
	if pairs[0].source != "escaped\nunescaped" {
		t.Errorf("Source = %q, want malformed line kept unchanged", pairs[0].source)
	}
}

func TestDecodedCellsGetIDs(t *testing.T) {
	nb := ScriptToNotebook("# %%\nx = 1\n")
	if len(nb.Cells) != 1 {
		t.Fatalf("Got %d cells, want 1", len(nb.Cells))
	}
	if nb.Cells[0].ID == "" {
		t.Error("Decoded cell has no id")
	}
}
