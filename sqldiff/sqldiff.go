// Package sqldiff reports textual differences between the expansions of two
// wire blobs.  Comparing expanded command text rather than blob bytes makes
// the diff insensitive to param order and wire formatting, showing only
// changes that alter the command a consumer would run.
package sqldiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/ddl-format/go-ddl/expand"
	"github.com/signadot/ddl-format/go-ddl/ir"
)

// Diffs computes the edit script between the expansions of two trees.
func Diffs(a, b *ir.Node) ([]diffmatchpatch.Diff, error) {
	at, err := expand.Expand(a)
	if err != nil {
		return nil, err
	}
	bt, err := expand.Expand(b)
	if err != nil {
		return nil, err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(at, bt, false)
	return dmp.DiffCleanupSemantic(diffs), nil
}

// DiffsJSON computes the edit script between the expansions of two wire
// blobs.
func DiffsJSON(a, b []byte) ([]diffmatchpatch.Diff, error) {
	an, err := expandBlob(a)
	if err != nil {
		return nil, err
	}
	bn, err := expandBlob(b)
	if err != nil {
		return nil, err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(an, bn, false)
	return dmp.DiffCleanupSemantic(diffs), nil
}

// Equal reports whether two wire blobs expand to identical command text.
func Equal(a, b []byte) (bool, error) {
	at, err := expandBlob(a)
	if err != nil {
		return false, err
	}
	bt, err := expandBlob(b)
	if err != nil {
		return false, err
	}
	return at == bt, nil
}

// Pretty renders an edit script with terminal colors.
func Pretty(diffs []diffmatchpatch.Diff) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(diffs)
}

// Unified renders an edit script as plain text with -/+ markers, one hunk
// per changed span.
func Unified(diffs []diffmatchpatch.Diff) string {
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("-[")
			b.WriteString(d.Text)
			b.WriteString("]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("+[")
			b.WriteString(d.Text)
			b.WriteString("]")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func expandBlob(d []byte) (string, error) {
	return expand.JSON(d)
}
