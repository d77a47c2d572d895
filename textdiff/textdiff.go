// Package textdiff renders human readable diffs of documents.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jot-format/jot/debug"
	"github.com/signadot/jot-format/jot/encode"
	"github.com/signadot/jot-format/jot/ir"
)

// Strings diffs two texts, rendering insertions and deletions with
// terminal colors.
func Strings(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs)
}

// Values diffs the pretty encodings of two trees. Equal trees diff to
// the empty string.
func Values(from, to *ir.Value) (string, error) {
	if ir.Equal(from, to) {
		return "", nil
	}
	fs, err := encode.String(from, encode.EncodePretty(true))
	if err != nil {
		return "", err
	}
	ts, err := encode.String(to, encode.EncodePretty(true))
	if err != nil {
		return "", err
	}
	if debug.Diff() {
		debug.Logf("diff %d bytes against %d bytes\n", len(fs), len(ts))
	}
	return Strings(fs, ts), nil
}
