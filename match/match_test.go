package match

import (
	"errors"
	"testing"

	"github.com/signadot/ddl-format/go-ddl/parse"
)

const dropBlob = `{"fmt":"DROP %{objtype}s %{if_exists}s %{name}D",` +
	`"objtype":"TABLE",` +
	`"if_exists":{"fmt":"IF EXISTS","present":true},` +
	`"name":{"schemaname":"public","objname":"orders"}}`

func TestMatch(t *testing.T) {
	tests := []struct {
		Src string
		Ok  bool
	}{
		{Src: `objtype == "TABLE"`, Ok: true},
		{Src: `objtype == "VIEW"`, Ok: false},
		{Src: `name.objname == "orders" && name.schemaname == "public"`, Ok: true},
		{Src: `if_exists.present`, Ok: true},
		{Src: `fmt startsWith "DROP"`, Ok: true},
		{Src: `objtype in ["TABLE", "SEQUENCE"]`, Ok: true},
		{Src: `missing == nil`, Ok: true},
	}
	for _, tc := range tests {
		m, err := Compile(tc.Src)
		if err != nil {
			t.Errorf("%q: %v", tc.Src, err)
			continue
		}
		ok, err := m.MatchJSON([]byte(dropBlob))
		if err != nil {
			t.Errorf("%q: %v", tc.Src, err)
			continue
		}
		if ok != tc.Ok {
			t.Errorf("%q: got %t, want %t", tc.Src, ok, tc.Ok)
		}
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`objtype ==`); !errors.Is(err, ErrCompile) {
		t.Errorf("got %v, want ErrCompile", err)
	}
	// non-boolean results are rejected at compile time
	if _, err := Compile(`"just a string"`); !errors.Is(err, ErrCompile) {
		t.Errorf("got %v, want ErrCompile", err)
	}
}

func TestMatchNode(t *testing.T) {
	node, err := parse.Parse([]byte(dropBlob))
	if err != nil {
		t.Fatal(err)
	}
	m, err := Compile(`objtype == "TABLE"`)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := m.Match(node)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("no match")
	}
	if m.Source() != `objtype == "TABLE"` {
		t.Errorf("source = %q", m.Source())
	}
}

func TestMatchJSONBadBlob(t *testing.T) {
	m, err := Compile(`true`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.MatchJSON([]byte(`not a blob`)); err == nil {
		t.Error("bad blob accepted")
	}
}
