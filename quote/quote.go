// Package quote renders SQL identifiers and string literals for expanded
// commands.  The rules are session-independent: whether a name gets quoted
// depends only on its spelling and the reserved keyword table, never on any
// server or locale setting.
package quote

import "strings"

// NeedsQuote reports whether v cannot appear as a bare identifier: it is
// empty, starts with something other than a lowercase letter or underscore,
// contains characters outside [a-z0-9_], or is a reserved keyword.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	c := v[0]
	if c != '_' && (c < 'a' || c > 'z') {
		return true
	}
	for i := 1; i < len(v); i++ {
		c := v[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			continue
		}
		return true
	}
	return IsReserved(v)
}

// Identifier returns v quoted as a SQL identifier: bare when possible,
// otherwise wrapped in double quotes with embedded double quotes doubled.
func Identifier(v string) string {
	if !NeedsQuote(v) {
		return v
	}
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(v[i])
	}
	b.WriteByte('"')
	return b.String()
}

// Literal returns v as a SQL string literal: wrapped in single quotes with
// embedded single quotes doubled.  Backslashes are not escaped; output
// follows standard-conforming string rules, not C-style escapes.
func Literal(v string) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(v); i++ {
		if v[i] == '\'' {
			b.WriteByte('\'')
		}
		b.WriteByte(v[i])
	}
	b.WriteByte('\'')
	return b.String()
}
