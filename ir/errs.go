package ir

import (
	"errors"

	"github.com/signadot/ddl-format/go-ddl/fmtspec"
)

var (
	ErrDuplicateField       = errors.New("duplicate field")
	ErrMalformedPlaceholder = fmtspec.ErrMalformed
	ErrTooDeep              = errors.New("tree nested too deeply")
)

// MaxDepth bounds tree nesting for decoding and expansion.  Real command
// trees are a handful of levels deep; anything beyond this is a hand-crafted
// blob and gets a clear error instead of a blown stack.
const MaxDepth = 128
