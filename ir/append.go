package ir

import (
	"fmt"
	"strings"

	"github.com/signadot/ddl-format/go-ddl/fmtspec"
)

// Put inserts a named param directly, rejecting duplicates.  The "present"
// param also refreshes the cached presence flag so it survives construction,
// the wire, and decoding identically.  Producers normally use Attach; Put is
// for fixed param sets (NewVA) and for decoders.
func (n *Node) Put(name string, v *Value) error {
	if n.has(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
	if name == PresentName && v.Type == BoolType {
		n.Present = v.Bool
	}
	n.Names = append(n.Names, name)
	n.Values = append(n.Values, v)
	return nil
}

// appendFormat grows the node's format string with the raw placeholder text,
// separating it from existing text with a single space.  Bare nodes have no
// format to grow.
func (n *Node) appendFormat(subFmt string) {
	if !n.HasFormat {
		return
	}
	if len(n.Format) > 0 && !strings.HasSuffix(n.Format, " ") {
		n.Format += " "
	}
	n.Format += subFmt
}

// Attach parses subFmt as a %{name[:sep]}C placeholder, appends its raw text
// to the node's format, and records name -> v.
func (n *Node) Attach(subFmt string, v *Value) error {
	name, err := fmtspec.FieldName(subFmt)
	if err != nil {
		return err
	}
	if n.has(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
	n.appendFormat(subFmt)
	return n.Put(name, v)
}

// AttachString attaches a string param.
func (n *Node) AttachString(subFmt, v string) error {
	return n.Attach(subFmt, FromString(v))
}

// AttachInt attaches an integer param.
func (n *Node) AttachInt(subFmt string, v int64) error {
	return n.Attach(subFmt, FromInt(v))
}

// AttachNull attaches a null param.
func (n *Node) AttachNull(subFmt string) error {
	return n.Attach(subFmt, Null())
}

// AttachArray attaches an array param.  An empty array is a no-op: neither
// the format nor the params change, so possibly-empty optional clauses vanish
// from the output entirely instead of leaving a dangling keyword.
func (n *Node) AttachArray(subFmt string, elems []*Value) error {
	if len(elems) == 0 {
		return nil
	}
	return n.Attach(subFmt, FromSlice(elems))
}

// AttachNode attaches a child node param.  Optional clauses attach their
// child unconditionally; a child built with SetPresent(false) is suppressed
// at expansion time.
func (n *Node) AttachNode(subFmt string, child *Node) error {
	return n.Attach(subFmt, FromNode(child))
}

// SetPresent records the node's presence flag as an explicit param, without
// growing the format.  Producers use it to mark a clause, or a whole command,
// as semantically absent.
func (n *Node) SetPresent(v bool) {
	n.Present = v
	if pv := n.Get(PresentName); pv != nil {
		pv.Type = BoolType
		pv.Bool = v
		return
	}
	n.Names = append(n.Names, PresentName)
	n.Values = append(n.Values, FromBool(v))
}
