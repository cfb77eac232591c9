package expand

import (
	"errors"

	"github.com/signadot/ddl-format/go-ddl/fmtspec"
	"github.com/signadot/ddl-format/go-ddl/ir"
)

var (
	// ErrUnknownField: a placeholder references a param the blob does not
	// carry.  Always a corrupted or hand-tampered blob; never substituted
	// with empty text.
	ErrUnknownField = errors.New("unknown field")

	// ErrTypeMismatch: a param's type is incompatible with the conversion
	// specifier applied to it.
	ErrTypeMismatch = errors.New("type mismatch")

	ErrMalformedPlaceholder = fmtspec.ErrMalformed
	ErrUnknownConversion    = fmtspec.ErrUnknownConversion
	ErrTooDeep              = ir.ErrTooDeep
)
