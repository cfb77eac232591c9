package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/ddl-format/go-ddl/ir"
	"github.com/signadot/ddl-format/go-ddl/parse"

	"github.com/scott-cotton/cli"
)

func getBlobFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// getish resolves an argument that is either inline text or a file path,
// per the -s and -f flags.  With neither flag set, the argument is taken
// as inline text.
func getish(s, f bool, cc *cli.Context, arg string) ([]byte, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader
	if f {
		switch arg {
		case "-":
			r = cc.In
		default:
			af, err := os.Open(arg)
			if err != nil {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			defer af.Close()
			r = af
		}
	} else {
		r = strings.NewReader(arg)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return d, nil
}
