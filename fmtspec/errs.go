package fmtspec

import "errors"

var (
	ErrMalformed         = errors.New("malformed placeholder")
	ErrUnknownConversion = errors.New("unknown conversion specifier")
)
