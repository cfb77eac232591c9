package parse

import "errors"

var (
	ErrParse        = errors.New("parse error")
	ErrUnterminated = errors.New("unterminated string")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUTF8      = errors.New("bad utf8")
)
