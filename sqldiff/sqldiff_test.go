package sqldiff

import (
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	dropOrders = `{"fmt":"DROP TABLE %{name}D","name":{"schemaname":"public","objname":"orders"}}`
	dropUsers  = `{"fmt":"DROP TABLE %{name}D","name":{"schemaname":"public","objname":"app_users"}}`
)

func TestEqual(t *testing.T) {
	eq, err := Equal([]byte(dropOrders), []byte(dropOrders))
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("identical blobs differ")
	}
	eq, err = Equal([]byte(dropOrders), []byte(dropUsers))
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Error("different blobs compare equal")
	}
}

func TestEqualIgnoresWireLayout(t *testing.T) {
	pretty := "{\n  \"fmt\": \"DROP TABLE %{name}D\",\n  \"name\": {\n    \"schemaname\": \"public\",\n    \"objname\": \"orders\"\n  }\n}\n"
	eq, err := Equal([]byte(dropOrders), []byte(pretty))
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("layout-only difference reported as a change")
	}
}

func TestDiffsJSON(t *testing.T) {
	diffs, err := DiffsJSON([]byte(dropOrders), []byte(dropUsers))
	if err != nil {
		t.Fatal(err)
	}
	var ins, del bool
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			ins = true
		case diffmatchpatch.DiffDelete:
			del = true
		}
	}
	if !ins || !del {
		t.Errorf("expected an edit script, got %+v", diffs)
	}
	out := Unified(diffs)
	if !strings.Contains(out, "DROP TABLE public.") {
		t.Errorf("unified output: %q", out)
	}
	if !strings.Contains(out, "+[") || !strings.Contains(out, "-[") {
		t.Errorf("unified output lacks markers: %q", out)
	}
}

func TestDiffsError(t *testing.T) {
	if _, err := DiffsJSON([]byte(dropOrders), []byte(`garbage`)); err == nil {
		t.Error("bad blob accepted")
	}
}
