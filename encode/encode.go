package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/ddl-format/go-ddl/format"
	"github.com/signadot/ddl-format/go-ddl/ir"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	depth, indent int
	wire          bool

	format format.Format

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the configured format.  The default is pretty
// JSON; EncodeWire selects the compact canonical wire form.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encodeNode(node, w, es); err != nil {
		return err
	}
	if !es.wire {
		return writeString(w, "\n")
	}
	return nil
}

// String encodes node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	b := &strings.Builder{}
	if err := Encode(node, b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func encodeNode(node *ir.Node, w io.Writer, es *EncState) error {
	nKeys := len(node.Names)
	if node.HasFormat {
		nKeys++
	}
	if nKeys == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	i := 0
	if node.HasFormat {
		if err := encodeKey(w, es, ir.StringType, "fmt"); err != nil {
			return err
		}
		if err := encodeString(node.Format, w, es); err != nil {
			return err
		}
		i++
	}
	for pi, name := range node.Names {
		if i > 0 {
			if err := writeComma(w, es); err != nil {
				return err
			}
		}
		val := node.Values[pi]
		if err := encodeKey(w, es, val.Type, name); err != nil {
			return err
		}
		if err := encodeValue(val, w, es); err != nil {
			return err
		}
		i++
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}")
}

func encodeKey(w io.Writer, es *EncState, vType ir.Type, name string) error {
	if err := writeNL(w, es); err != nil {
		return err
	}
	key := quoteJSON(name)
	if es.Color != nil {
		key = es.Color(vType, FieldColor, key)
	}
	if err := writeString(w, key); err != nil {
		return err
	}
	sep := ":"
	if !es.wire {
		sep = ": "
	}
	if es.Color != nil {
		sep = es.Color(vType, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeComma(w io.Writer, es *EncState) error {
	sep := ","
	if es.Color != nil {
		sep = es.Color(es.colorType, SepColor, sep)
	}
	return writeString(w, sep)
}

func encodeValue(v *ir.Value, w io.Writer, es *EncState) error {
	es.colorType = v.Type
	switch v.Type {
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	case ir.BoolType:
		return writeValue(w, es, ir.BoolType, strconv.FormatBool(v.Bool))
	case ir.IntType:
		return writeValue(w, es, ir.IntType, strconv.FormatInt(v.Int64, 10))
	case ir.FloatType:
		return writeValue(w, es, ir.FloatType, strconv.FormatFloat(v.Float64, 'g', -1, 64))
	case ir.StringType:
		return encodeString(v.String, w, es)
	case ir.ArrayType:
		return encodeArray(v, w, es)
	case ir.ObjectType:
		return encodeNode(v.Object, w, es)
	default:
		panic("type")
	}
}

func writeValue(w io.Writer, es *EncState, t ir.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return writeString(w, v)
}

func encodeString(v string, w io.Writer, es *EncState) error {
	return writeValue(w, es, ir.StringType, quoteJSON(v))
}

func encodeArray(v *ir.Value, w io.Writer, es *EncState) error {
	if len(v.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, ev := range v.Values {
		if i > 0 {
			if err := writeComma(w, es); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeValue(ev, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

// YAML rendering, via an ordered map slice so param order survives review.

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(yamlNode(node))
	if err != nil {
		return fmt.Errorf("cannot render yaml: %w", err)
	}
	return writeString(w, string(d))
}

func yamlNode(node *ir.Node) yaml.MapSlice {
	res := yaml.MapSlice{}
	if node.HasFormat {
		res = append(res, yaml.MapItem{Key: "fmt", Value: node.Format})
	}
	for i, name := range node.Names {
		res = append(res, yaml.MapItem{Key: name, Value: yamlValue(node.Values[i])})
	}
	return res
}

func yamlValue(v *ir.Value) any {
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
		res := make([]any, len(v.Values))
		for i, ev := range v.Values {
			res[i] = yamlValue(ev)
		}
		return res
	case ir.ObjectType:
		return yamlNode(v.Object)
	default:
		panic("type")
	}
}
