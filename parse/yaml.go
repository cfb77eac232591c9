package parse

import (
	"fmt"

	"github.com/signadot/ddl-format/go-ddl/ir"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// parseYAML decodes a YAML rendering of a blob through the goccy AST, which
// preserves mapping order like the JSON decoder does.
func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	return yamlNode(f.Docs[0].Body, 0, opts)
}

func yamlNode(n ast.Node, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, fmt.Errorf("%w: beyond %d levels", ir.ErrTooDeep, opts.maxDepth)
	}
	node := ir.NewBare()
	pairs, err := yamlPairs(n)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		key, err := yamlKey(p.Key)
		if err != nil {
			return nil, err
		}
		val, err := yamlValue(p.Value, depth, opts)
		if err != nil {
			return nil, err
		}
		if err := setParam(node, key, val); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}
	return node, nil
}

func yamlPairs(n ast.Node) ([]*ast.MappingValueNode, error) {
	switch t := n.(type) {
	case *ast.MappingNode:
		return t.Values, nil
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{t}, nil
	default:
		return nil, fmt.Errorf("%w: blob must be a mapping, got %s", ErrParse, n.Type())
	}
}

func yamlKey(k ast.MapKeyNode) (string, error) {
	if sn, ok := k.(*ast.StringNode); ok {
		return sn.Value, nil
	}
	return "", fmt.Errorf("%w: non-string key %q", ErrParse, k.String())
}

func yamlValue(n ast.Node, depth int, opts *parseOpts) (*ir.Value, error) {
	switch t := n.(type) {
	case *ast.StringNode:
		return ir.FromString(t.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(t.Value.Value), nil
	case *ast.IntegerNode:
		switch v := t.Value.(type) {
		case int64:
			return ir.FromInt(v), nil
		case uint64:
			return ir.FromInt(int64(v)), nil
		case int:
			return ir.FromInt(int64(v)), nil
		default:
			return nil, fmt.Errorf("%w: bad integer %q", ErrParse, t.String())
		}
	case *ast.FloatNode:
		return ir.FromFloat(t.Value), nil
	case *ast.BoolNode:
		return ir.FromBool(t.Value), nil
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.SequenceNode:
		elems := make([]*ir.Value, 0, len(t.Values))
		for _, en := range t.Values {
			ev, err := yamlValue(en, depth, opts)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ev)
		}
		return ir.FromSlice(elems), nil
	case *ast.MappingNode, *ast.MappingValueNode:
		child, err := yamlNode(n, depth+1, opts)
		if err != nil {
			return nil, err
		}
		return ir.FromNode(child), nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml node %s", ErrParse, n.Type())
	}
}
