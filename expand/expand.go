// Package expand turns a deparse tree (or its wire blob) back into a
// fully-qualified, executable command string.
//
// Expansion is the inverse of encoding plus rendering: a node's format string
// is scanned left to right, literal text is copied, and each %{name[:sep]}C
// placeholder is replaced with its param rendered per the conversion
// specifier.  A node marked not-present contributes nothing, and at the top
// level runs of whitespace outside quoted spans are collapsed, so vanished
// optional clauses leave no gaps.
//
// All failures are immediate and total: no partial command text is ever
// returned.
package expand

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ddl-format/go-ddl/debug"
	"github.com/signadot/ddl-format/go-ddl/fmtspec"
	"github.com/signadot/ddl-format/go-ddl/ir"
	"github.com/signadot/ddl-format/go-ddl/parse"
)

type state struct {
	maxDepth  int
	parseOpts []parse.ParseOption
}

type Option func(*state)

// MaxDepth overrides the nesting ceiling.
func MaxDepth(n int) Option {
	return func(st *state) { st.maxDepth = n }
}

// ParseOpts configures the wire decoding performed by JSON.
func ParseOpts(opts ...parse.ParseOption) Option {
	return func(st *state) { st.parseOpts = opts }
}

// Expand renders node to command text.
func Expand(node *ir.Node, opts ...Option) (string, error) {
	st := &state{maxDepth: ir.MaxDepth}
	for _, opt := range opts {
		opt(st)
	}
	if debug.Expand() {
		debug.Logf("expand fmt %q\n", node.Format)
	}
	out, err := expandNode(node, 0, st)
	if err != nil {
		return "", err
	}
	return collapseSpace(out), nil
}

// JSON decodes a wire blob and expands it.
func JSON(d []byte, opts ...Option) (string, error) {
	st := &state{maxDepth: ir.MaxDepth}
	for _, opt := range opts {
		opt(st)
	}
	node, err := parse.Parse(d, st.parseOpts...)
	if err != nil {
		return "", err
	}
	return Expand(node, opts...)
}

// expandNode renders one node against its own format string.  Not-present
// nodes, and nodes without any format, contribute nothing.
func expandNode(node *ir.Node, depth int, st *state) (string, error) {
	if depth > st.maxDepth {
		return "", fmt.Errorf("%w: beyond %d levels", ErrTooDeep, st.maxDepth)
	}
	if !node.Present {
		return "", nil
	}
	if !node.HasFormat || node.Format == "" {
		return "", nil
	}
	b := &strings.Builder{}
	sc := fmtspec.NewScanner(node.Format)
	for {
		seg, err := sc.Next()
		if err != nil {
			return "", err
		}
		if seg == nil {
			return b.String(), nil
		}
		if seg.Placeholder == nil {
			b.WriteString(seg.Literal)
			continue
		}
		ph := seg.Placeholder
		val := node.Get(ph.Name)
		if val == nil {
			return "", fmt.Errorf("%w: %q in %q", ErrUnknownField, ph.Name, node.Format)
		}
		out, err := renderValue(val, ph, depth, st)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
}

// renderValue renders one param under a placeholder's conversion specifier.
// Null contributes nothing under any specifier; arrays render each element
// under the same specifier and join the non-empty pieces with the
// placeholder's separator.
func renderValue(val *ir.Value, ph *fmtspec.Placeholder, depth int, st *state) (string, error) {
	switch val.Type {
	case ir.NullType:
		return "", nil
	case ir.ArrayType:
		return renderArray(val, ph, depth, st)
	}
	switch ph.Conv {
	case fmtspec.ConvRaw:
		return renderRaw(val, ph, depth, st)
	case fmtspec.ConvIdentifier:
		s, err := stringValue(val, ph)
		if err != nil {
			return "", err
		}
		return identifier(s), nil
	case fmtspec.ConvLiteral:
		s, err := stringValue(val, ph)
		if err != nil {
			return "", err
		}
		return literal(s), nil
	case fmtspec.ConvNumber:
		return renderNumber(val, ph)
	case fmtspec.ConvDottedName:
		return renderQualName(val, ph)
	case fmtspec.ConvTypeName:
		return renderTypeName(val, ph)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownConversion, ph.Conv)
	}
}

func renderArray(val *ir.Value, ph *fmtspec.Placeholder, depth int, st *state) (string, error) {
	pieces := make([]string, 0, len(val.Values))
	for _, ev := range val.Values {
		if ev.Type == ir.ArrayType {
			return "", fmt.Errorf("%w: nested array under %q", ErrTypeMismatch, ph.Raw)
		}
		out, err := renderValue(ev, ph, depth, st)
		if err != nil {
			return "", err
		}
		if out == "" {
			continue
		}
		pieces = append(pieces, out)
	}
	return strings.Join(pieces, ph.Sep), nil
}

func renderRaw(val *ir.Value, ph *fmtspec.Placeholder, depth int, st *state) (string, error) {
	switch val.Type {
	case ir.StringType:
		return val.String, nil
	case ir.ObjectType:
		return expandNode(val.Object, depth+1, st)
	default:
		return "", mismatch(val, ph)
	}
}

func renderNumber(val *ir.Value, ph *fmtspec.Placeholder) (string, error) {
	switch val.Type {
	case ir.IntType:
		return strconv.FormatInt(val.Int64, 10), nil
	case ir.FloatType:
		return strconv.FormatFloat(val.Float64, 'g', -1, 64), nil
	default:
		return "", mismatch(val, ph)
	}
}

func stringValue(val *ir.Value, ph *fmtspec.Placeholder) (string, error) {
	if val.Type != ir.StringType {
		return "", mismatch(val, ph)
	}
	return val.String, nil
}

func mismatch(val *ir.Value, ph *fmtspec.Placeholder) error {
	return fmt.Errorf("%w: %s value under %q", ErrTypeMismatch, val.Type, ph.Raw)
}
