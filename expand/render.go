package expand

import (
	"fmt"
	"strings"

	"github.com/signadot/ddl-format/go-ddl/fmtspec"
	"github.com/signadot/ddl-format/go-ddl/ir"
	"github.com/signadot/ddl-format/go-ddl/quote"
)

func identifier(s string) string {
	return quote.Identifier(s)
}

func literal(s string) string {
	return quote.Literal(s)
}

// renderQualName renders a %{..}D param: a node carrying schemaname and
// objname strings.  An empty schema renders the bare object name; both parts
// are identifier-quoted.
func renderQualName(val *ir.Value, ph *fmtspec.Placeholder) (string, error) {
	node, err := nodeValue(val, ph)
	if err != nil {
		return "", err
	}
	if !node.Present {
		return "", nil
	}
	schema, err := nodeString(node, "schemaname", ph)
	if err != nil {
		return "", err
	}
	name, err := nodeString(node, "objname", ph)
	if err != nil {
		return "", err
	}
	if schema == "" {
		return identifier(name), nil
	}
	return identifier(schema) + "." + identifier(name), nil
}

// renderTypeName renders a %{..}T param: a node carrying schemaname,
// typename, typmod strings and a typarray bool.  The schema part is
// identifier-quoted; the type name and typmod come from the producer already
// in their final spelling (standard type names arrive as fixed keywords and
// must not be re-quoted).
func renderTypeName(val *ir.Value, ph *fmtspec.Placeholder) (string, error) {
	node, err := nodeValue(val, ph)
	if err != nil {
		return "", err
	}
	if !node.Present {
		return "", nil
	}
	schema, err := nodeString(node, "schemaname", ph)
	if err != nil {
		return "", err
	}
	typename, err := nodeString(node, "typename", ph)
	if err != nil {
		return "", err
	}
	typmod, err := nodeString(node, "typmod", ph)
	if err != nil {
		return "", err
	}
	isArray, err := nodeBool(node, "typarray", ph)
	if err != nil {
		return "", err
	}
	b := &strings.Builder{}
	if schema != "" {
		b.WriteString(identifier(schema))
		b.WriteString(".")
	}
	b.WriteString(typename)
	b.WriteString(typmod)
	if isArray {
		b.WriteString("[]")
	}
	return b.String(), nil
}

func nodeValue(val *ir.Value, ph *fmtspec.Placeholder) (*ir.Node, error) {
	if val.Type != ir.ObjectType {
		return nil, mismatch(val, ph)
	}
	return val.Object, nil
}

func nodeString(node *ir.Node, name string, ph *fmtspec.Placeholder) (string, error) {
	v := node.Get(name)
	if v == nil {
		return "", fmt.Errorf("%w: %q under %q", ErrUnknownField, name, ph.Raw)
	}
	if v.Type != ir.StringType {
		return "", fmt.Errorf("%w: %s %q under %q", ErrTypeMismatch, v.Type, name, ph.Raw)
	}
	return v.String, nil
}

func nodeBool(node *ir.Node, name string, ph *fmtspec.Placeholder) (bool, error) {
	v := node.Get(name)
	if v == nil {
		return false, fmt.Errorf("%w: %q under %q", ErrUnknownField, name, ph.Raw)
	}
	if v.Type != ir.BoolType {
		return false, fmt.Errorf("%w: %s %q under %q", ErrTypeMismatch, v.Type, name, ph.Raw)
	}
	return v.Bool, nil
}

// collapseSpace rewrites runs of whitespace outside quoted spans to a single
// space and trims the ends.  Suppressed optional clauses leave gaps in the
// expanded text; this closes them without touching quoted content.
func collapseSpace(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s))
	var inSingle, inDouble bool
	pendingSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !inSingle && !inDouble {
			switch c {
			case ' ', '\t', '\n', '\r':
				pendingSpace = true
				continue
			}
		}
		switch c {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteByte(c)
	}
	return b.String()
}
