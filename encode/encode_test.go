package encode

import (
	"testing"

	"github.com/signadot/ddl-format/go-ddl/format"
	"github.com/signadot/ddl-format/go-ddl/ir"
)

func dropNode(t *testing.T) *ir.Node {
	t.Helper()
	n, err := ir.NewVA("DROP %{objtype}s %{name}D",
		ir.Param{Name: "objtype", Value: ir.FromString("TABLE")},
		ir.Param{Name: "name", Value: ir.FromNode(ir.NewQualName("public", "orders"))},
	)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEncodeWireFmtFirst(t *testing.T) {
	got, err := String(dropNode(t), EncodeWire(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"fmt":"DROP %{objtype}s %{name}D","objtype":"TABLE","name":{"schemaname":"public","objname":"orders"}}`
	if got != want {
		t.Errorf("wire = %s, want %s", got, want)
	}
}

func TestEncodePretty(t *testing.T) {
	n := ir.New("x")
	if err := n.AttachInt("%{a}n", 1); err != nil {
		t.Fatal(err)
	}
	got, err := String(n)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"fmt\": \"x\",\n  \"a\": 1\n}\n"
	if got != want {
		t.Errorf("pretty = %q, want %q", got, want)
	}
}

func TestEncodeBareNode(t *testing.T) {
	got, err := String(ir.NewBare(), EncodeWire(true))
	if err != nil {
		t.Fatal(err)
	}
	if got != "{}" {
		t.Errorf("bare = %s", got)
	}
}

func TestEncodeValues(t *testing.T) {
	n := ir.NewBare()
	n.Put("b", ir.FromBool(true))
	n.Put("f", ir.FromFloat(2.5))
	n.Put("z", ir.Null())
	n.Put("a", ir.FromSlice(ir.Strings("x", "y")))
	n.Put("e", ir.FromSlice(nil))
	got, err := String(n, EncodeWire(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":true,"f":2.5,"z":null,"a":["x","y"],"e":[]}`
	if got != want {
		t.Errorf("wire = %s, want %s", got, want)
	}
}

func TestEncodeStringEscapes(t *testing.T) {
	n := ir.NewBare()
	n.Put("s", ir.FromString("a\"b\\c\nd"))
	got, err := String(n, EncodeWire(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"s":"a\"b\\c\nd"}`
	if got != want {
		t.Errorf("wire = %s, want %s", got, want)
	}
}

func TestEncodeYAML(t *testing.T) {
	n := ir.New("x")
	if err := n.AttachInt("%{a}n", 1); err != nil {
		t.Fatal(err)
	}
	got, err := String(n, EncodeFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	want := "fmt: x\na: 1\n"
	if got != want {
		t.Errorf("yaml = %q, want %q", got, want)
	}
}
