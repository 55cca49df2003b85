// Package diff renders unified diffs for round-trip verification.
package diff

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Unified computes a unified diff between two text blobs. fromName and
// toName label the two sides in the diff header. An empty result means
// the blobs are identical.
func Unified(fromName, toName, from, to string) string {
	edits := myers.ComputeEdits(span.URIFromPath(fromName), from, to)
	if len(edits) == 0 {
		return ""
	}
	return fmt.Sprint(gotextdiff.ToUnified(fromName, toName, from, edits))
}
