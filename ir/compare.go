package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally: format, then
// presence, then params pairwise in attachment order.  The result will be 0
// if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.HasFormat != b.HasFormat {
		if !a.HasFormat {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Format, b.Format); c != 0 {
		return c
	}
	if a.Present != b.Present {
		if !a.Present {
			return -1
		}
		return 1
	}
	n := min(len(a.Names), len(b.Names))
	for i := 0; i < n; i++ {
		if c := strings.Compare(a.Names[i], b.Names[i]); c != 0 {
			return c
		}
		if c := CompareValue(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Names), len(b.Names))
}

// CompareValue compares two values: by type rank, then by content.
func CompareValue(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(rank(a.Type), rank(b.Type)); c != 0 {
		return c
	}
	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatType:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		n := min(len(a.Values), len(b.Values))
		for i := 0; i < n; i++ {
			if c := CompareValue(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Values), len(b.Values))
	case ObjectType:
		return Compare(a.Object, b.Object)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int < Float < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case FloatType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}
