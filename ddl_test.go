package ddl

import (
	"strings"
	"testing"

	"github.com/signadot/ddl-format/go-ddl/ir"
)

func TestDropProducer(t *testing.T) {
	p := NewDropProducer()
	blob, err := EncodeToJSON(p, &DropCommand{
		Kind:     TableObject,
		Schema:   "public",
		Name:     "orders",
		IfExists: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"fmt":"DROP %{objtype}s %{if_exists}s %{name}D %{cascade}s",` +
		`"objtype":"TABLE",` +
		`"name":{"schemaname":"public","objname":"orders"},` +
		`"if_exists":{"fmt":"IF EXISTS","present":true},` +
		`"cascade":{"fmt":"CASCADE","present":false}}`
	if string(blob) != want {
		t.Errorf("blob = %s, want %s", blob, want)
	}
	text, err := ExpandJSONToText(blob)
	if err != nil {
		t.Fatal(err)
	}
	if text != "DROP TABLE IF EXISTS public.orders" {
		t.Errorf("text = %q", text)
	}
}

func TestDropProducerCascade(t *testing.T) {
	blob, err := EncodeToJSON(NewDropProducer(), &DropCommand{
		Kind:    SchemaObject,
		Name:    "app",
		Cascade: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	text, err := ExpandJSONToText(blob)
	if err != nil {
		t.Fatal(err)
	}
	if text != "DROP SCHEMA app CASCADE" {
		t.Errorf("text = %q", text)
	}
}

func TestCreateTableProducer(t *testing.T) {
	blob, err := EncodeToJSON(NewCreateTableProducer(), &CreateTableCommand{
		Schema:      "public",
		Name:        "orders",
		IfNotExists: true,
		Columns: []ColumnDef{
			{
				Name:    "id",
				Type:    TypeRef{Name: "integer"},
				NotNull: true,
			},
			{
				Name:    "total",
				Type:    TypeRef{Name: "numeric", Typmod: "(10,2)"},
				Default: "0",
			},
			{
				Name: "tags",
				Type: TypeRef{Name: "text", IsArray: true},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	text, err := ExpandJSONToText(blob)
	if err != nil {
		t.Fatal(err)
	}
	want := "CREATE TABLE IF NOT EXISTS public.orders " +
		"(id integer NOT NULL, total numeric(10,2) DEFAULT 0, tags text[])"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestProducerDeclines(t *testing.T) {
	blob, err := EncodeToJSON(NewDropProducer(), "not a drop")
	if err != nil {
		t.Fatal(err)
	}
	if blob != nil {
		t.Errorf("declined command produced a blob: %s", blob)
	}
}

func TestNotPresentCommandSkipped(t *testing.T) {
	p := ProducerFunc(func(cmd any) (*ir.Node, error) {
		n := ir.New("DROP TABLE t")
		n.SetPresent(false)
		return n, nil
	})
	blob, err := EncodeToJSON(p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if blob != nil {
		t.Errorf("not-present command produced a blob: %s", blob)
	}
}

func TestPatch(t *testing.T) {
	blob, err := EncodeToJSON(NewDropProducer(), &DropCommand{
		Kind:     TableObject,
		Schema:   "public",
		Name:     "orders",
		IfExists: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	patch := []byte(`[
		{"op": "replace", "path": "/name/schemaname", "value": "sandbox"},
		{"op": "replace", "path": "/cascade/present", "value": true}
	]`)
	patched, err := Patch(blob, patch)
	if err != nil {
		t.Fatal(err)
	}
	text, err := ExpandJSONToText(patched)
	if err != nil {
		t.Fatal(err)
	}
	if text != "DROP TABLE IF EXISTS sandbox.orders CASCADE" {
		t.Errorf("text = %q", text)
	}
}

func TestPatchBad(t *testing.T) {
	blob := []byte(`{"fmt":"DROP TABLE t"}`)
	if _, err := Patch(blob, []byte(`not json`)); err == nil {
		t.Error("bad patch accepted")
	}
	if _, err := Patch(blob, []byte(`[{"op":"replace","path":"/nope","value":1}]`)); err == nil {
		t.Error("patch of missing path accepted")
	}
}

func TestCanonical(t *testing.T) {
	pretty := []byte("{\n  \"fmt\": \"DROP TABLE %{name}D\",\n  \"name\": {\n    \"schemaname\": \"public\",\n    \"objname\": \"t\"\n  }\n}\n")
	got, err := Canonical(pretty)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"fmt":"DROP TABLE %{name}D","name":{"schemaname":"public","objname":"t"}}`
	if string(got) != want {
		t.Errorf("canonical = %s, want %s", got, want)
	}
	if _, err := Canonical([]byte(`[]`)); err == nil {
		t.Error("non-object blob accepted")
	}
}

func TestDecode(t *testing.T) {
	node, err := Decode([]byte(`{"fmt":"DROP TABLE t","present":false}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Present {
		t.Error("present flag lost in decode")
	}
	if !strings.HasPrefix(node.Format, "DROP") {
		t.Errorf("format = %q", node.Format)
	}
}
