// Package match evaluates boolean predicates over deparse trees.
//
// A predicate is an expression over the tree's params: the format string is
// bound to "fmt", the presence flag to "present", and every param to its own
// name, with sub-trees appearing as nested maps.  Predicates select which
// blobs a pipeline stage applies to, for example which patches fire during a
// replay.
package match

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/ddl-format/go-ddl/debug"
	"github.com/signadot/ddl-format/go-ddl/ir"
	"github.com/signadot/ddl-format/go-ddl/parse"
)

var (
	// ErrCompile: the predicate source does not compile.
	ErrCompile = errors.New("cannot compile predicate")

	// ErrEval: the predicate failed at evaluation time, for example by
	// indexing a param that is not a sub-tree.
	ErrEval = errors.New("cannot evaluate predicate")
)

// A Matcher is one compiled predicate, safe for use from multiple
// goroutines.
type Matcher struct {
	src  string
	prog *vm.Program
}

// Compile compiles a predicate.  The result must be boolean; anything else
// is rejected here rather than at evaluation time.
func Compile(src string) (*Matcher, error) {
	prog, err := expr.Compile(src,
		expr.Env(map[string]any{}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, src, err)
	}
	return &Matcher{src: src, prog: prog}, nil
}

// Source returns the predicate source text.
func (m *Matcher) Source() string {
	return m.src
}

// Match evaluates the predicate against one tree.
func (m *Matcher) Match(node *ir.Node) (bool, error) {
	env := envOf(node)
	res, err := expr.Run(m.prog, env)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrEval, m.src, err)
	}
	ok, isBool := res.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %q: non-boolean result %T", ErrEval, m.src, res)
	}
	if debug.Match() {
		debug.Logf("match %q -> %t\n", m.src, ok)
	}
	return ok, nil
}

// MatchJSON decodes a wire blob and evaluates the predicate against it.
func (m *Matcher) MatchJSON(d []byte) (bool, error) {
	node, err := parse.Parse(d)
	if err != nil {
		return false, err
	}
	return m.Match(node)
}

// envOf flattens a tree into the evaluation environment.  Param names map
// directly to converted values, so predicates read like
// "name.objname == 'orders' && !if_exists.present".
func envOf(node *ir.Node) map[string]any {
	env := make(map[string]any, len(node.Names)+2)
	if node.HasFormat {
		env["fmt"] = node.Format
	}
	env["present"] = node.Present
	for i, name := range node.Names {
		env[name] = envValue(node.Values[i])
	}
	return env
}

func envValue(v *ir.Value) any {
	switch v.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return v.Bool
	case ir.IntType:
		return v.Int64
	case ir.FloatType:
		return v.Float64
	case ir.StringType:
		return v.String
	case ir.ArrayType:
		vs := make([]any, len(v.Values))
		for i, ev := range v.Values {
			vs[i] = envValue(ev)
		}
		return vs
	case ir.ObjectType:
		return envOf(v.Object)
	}
	return nil
}
