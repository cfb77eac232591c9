// Package fmtspec implements the %{name[:sep]}C placeholder syntax used in
// deparse format strings.  The builder uses it to derive field names from
// attached placeholders; the expander uses it to walk a full format string.
package fmtspec

import (
	"fmt"
	"strings"
)

// Conversion selects how a field value is rendered during expansion.
type Conversion byte

const (
	ConvRaw        Conversion = 's' // verbatim text, no quoting
	ConvIdentifier Conversion = 'I' // quoted SQL identifier
	ConvLiteral    Conversion = 'L' // quoted SQL string literal
	ConvNumber     Conversion = 'n' // bare number
	ConvDottedName Conversion = 'D' // schema-qualified name object
	ConvTypeName   Conversion = 'T' // schema-qualified type name object
)

func (c Conversion) Valid() bool {
	switch c {
	case ConvRaw, ConvIdentifier, ConvLiteral, ConvNumber, ConvDottedName, ConvTypeName:
		return true
	}
	return false
}

func (c Conversion) String() string {
	return string(byte(c))
}

// Placeholder is one parsed %{name[:sep]}C occurrence.
type Placeholder struct {
	Name   string
	Sep    string
	HasSep bool
	Conv   Conversion
	Raw    string
}

// FieldName extracts the field name from a placeholder fragment such as
// "%{cache}s" or "%{definition: }s".  Attachment only needs the name; the
// conversion specifier is validated at expansion time.
func FieldName(subFmt string) (string, error) {
	start := strings.IndexByte(subFmt, '{')
	if start < 0 {
		return "", fmt.Errorf("%w: no field in %q", ErrMalformed, subFmt)
	}
	rest := subFmt[start+1:]
	end := strings.IndexAny(rest, ":}")
	if end < 0 {
		return "", fmt.Errorf("%w: unterminated field in %q", ErrMalformed, subFmt)
	}
	name := rest[:end]
	if name == "" {
		return "", fmt.Errorf("%w: empty field in %q", ErrMalformed, subFmt)
	}
	return name, nil
}

// Segment is either a run of literal text or a single placeholder.
type Segment struct {
	Literal     string
	Placeholder *Placeholder
}

// Scanner walks a format string left to right, yielding literal runs and
// placeholders.  "%%" yields a literal "%"; a "%" not followed by "{" is
// literal text.
type Scanner struct {
	src string
	pos int
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next segment, or nil at the end of the format string.
func (s *Scanner) Next() (*Segment, error) {
	if s.pos >= len(s.src) {
		return nil, nil
	}
	if strings.HasPrefix(s.src[s.pos:], "%%") {
		s.pos += 2
		return &Segment{Literal: "%"}, nil
	}
	if strings.HasPrefix(s.src[s.pos:], "%{") {
		return s.placeholder()
	}
	// literal run up to the next possible placeholder start
	end := s.pos + 1
	for end < len(s.src) && s.src[end] != '%' {
		end++
	}
	lit := s.src[s.pos:end]
	s.pos = end
	return &Segment{Literal: lit}, nil
}

func (s *Scanner) placeholder() (*Segment, error) {
	start := s.pos
	i := s.pos + 2 // past "%{"
	nameStart := i
	for i < len(s.src) && s.src[i] != ':' && s.src[i] != '}' {
		i++
	}
	if i >= len(s.src) {
		return nil, fmt.Errorf("%w: unterminated %q", ErrMalformed, s.src[start:])
	}
	ph := &Placeholder{Name: s.src[nameStart:i]}
	if ph.Name == "" {
		return nil, fmt.Errorf("%w: empty field name at %q", ErrMalformed, s.src[start:])
	}
	if s.src[i] == ':' {
		i++
		sepStart := i
		for i < len(s.src) && s.src[i] != '}' {
			i++
		}
		if i >= len(s.src) {
			return nil, fmt.Errorf("%w: unterminated %q", ErrMalformed, s.src[start:])
		}
		ph.Sep = s.src[sepStart:i]
		ph.HasSep = true
	}
	i++ // past "}"
	if i >= len(s.src) {
		return nil, fmt.Errorf("%w: missing conversion in %q", ErrMalformed, s.src[start:])
	}
	ph.Conv = Conversion(s.src[i])
	i++
	ph.Raw = s.src[start:i]
	if !ph.Conv.Valid() {
		return nil, fmt.Errorf("%w: %q in %q", ErrUnknownConversion, ph.Conv, ph.Raw)
	}
	s.pos = i
	return &Segment{Placeholder: ph}, nil
}
