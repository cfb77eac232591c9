// Package parse decodes wire blobs back into deparse trees.
//
// The decoder is a hand-rolled JSON tokenizer and recursive descent parser
// rather than encoding/json: param order is part of the wire contract, and
// the stdlib object decoding cannot preserve it.  YAML input (hand-written
// fixtures, review output fed back in) is accepted as well.
package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/ddl-format/go-ddl/debug"
	"github.com/signadot/ddl-format/go-ddl/ir"
)

// Parse decodes one blob into a tree.  The top level of a blob is always a
// node object.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: ir.MaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if debug.Parse() {
		debug.Logf("parse %s: %d bytes\n", pOpts.format, len(d))
	}
	if pOpts.format.IsYAML() {
		return parseYAML(d, pOpts)
	}
	lx := newLexer(d)
	tok, err := lx.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tLCurl {
		return nil, lx.errf("blob must be an object, got %s", tok.kind)
	}
	node, err := parseNode(lx, 0, pOpts)
	if err != nil {
		return nil, err
	}
	tok, err = lx.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tEOF {
		return nil, lx.errf("trailing input after blob")
	}
	return node, nil
}

// parseNode parses an object body; the opening '{' is already consumed.
func parseNode(lx *lexer, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, fmt.Errorf("%w: beyond %d levels", ir.ErrTooDeep, opts.maxDepth)
	}
	node := ir.NewBare()
	first := true
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tRCurl {
			return node, nil
		}
		if !first {
			if tok.kind != tComma {
				return nil, lx.errf("expected ',' or '}', got %s", tok.kind)
			}
			tok, err = lx.next()
			if err != nil {
				return nil, err
			}
		}
		first = false
		if tok.kind != tString {
			return nil, lx.errf("expected object key, got %s", tok.kind)
		}
		key := tok.text
		tok, err = lx.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tColon {
			return nil, lx.errf("expected ':', got %s", tok.kind)
		}
		val, err := parseValue(lx, depth, opts)
		if err != nil {
			return nil, err
		}
		if err := setParam(node, key, val); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}
}

// setParam assembles a decoded key/value into a node, giving the reserved
// "fmt" key its format-string meaning.  Shared with the YAML decoder.
func setParam(node *ir.Node, key string, val *ir.Value) error {
	if key == "fmt" {
		if val.Type != ir.StringType {
			return fmt.Errorf("fmt key must be a string, got %s", val.Type)
		}
		if node.HasFormat {
			return fmt.Errorf("duplicate fmt key")
		}
		node.Format = val.String
		node.HasFormat = true
		return nil
	}
	return node.Put(key, val)
}

func parseValue(lx *lexer, depth int, opts *parseOpts) (*ir.Value, error) {
	tok, err := lx.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tLCurl:
		child, err := parseNode(lx, depth+1, opts)
		if err != nil {
			return nil, err
		}
		return ir.FromNode(child), nil
	case tLSquare:
		return parseArray(lx, depth, opts)
	case tString:
		return ir.FromString(tok.text), nil
	case tNumber:
		return parseNumber(lx, tok)
	case tTrue:
		return ir.FromBool(true), nil
	case tFalse:
		return ir.FromBool(false), nil
	case tNull:
		return ir.Null(), nil
	default:
		return nil, lx.errf("expected value, got %s", tok.kind)
	}
}

func parseArray(lx *lexer, depth int, opts *parseOpts) (*ir.Value, error) {
	elems := []*ir.Value{}
	first := true
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tRSquare {
			return ir.FromSlice(elems), nil
		}
		if !first {
			if tok.kind != tComma {
				return nil, lx.errf("expected ',' or ']', got %s", tok.kind)
			}
		} else {
			lx.unread(tok)
		}
		first = false
		val, err := parseValue(lx, depth, opts)
		if err != nil {
			return nil, err
		}
		elems = append(elems, val)
	}
}

func parseNumber(lx *lexer, tok token) (*ir.Value, error) {
	if i, err := strconv.ParseInt(tok.text, 10, 64); err == nil {
		return ir.FromInt(i), nil
	}
	f, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return nil, lx.errf("bad number %q", tok.text)
	}
	return ir.FromFloat(f), nil
}
