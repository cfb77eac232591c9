package ir

import "testing"

func TestCompare(t *testing.T) {
	mk := func() *Node {
		n := New("DROP %{objtype}s %{name}D")
		n.Put("objtype", FromString("TABLE"))
		n.Put("name", FromNode(NewQualName("public", "orders")))
		return n
	}
	a, b := mk(), mk()
	if c := Compare(a, b); c != 0 {
		t.Errorf("Compare(equal) = %d", c)
	}
	b.Format = "DROP %{objtype}s"
	if c := Compare(a, b); c == 0 {
		t.Error("Compare ignores format")
	}
}

func TestCompareParamOrder(t *testing.T) {
	a, b := NewBare(), NewBare()
	a.Put("x", FromInt(1))
	a.Put("y", FromInt(2))
	b.Put("y", FromInt(2))
	b.Put("x", FromInt(1))
	if c := Compare(a, b); c == 0 {
		t.Error("Compare ignores param order")
	}
}

func TestComparePresence(t *testing.T) {
	a, b := New("CASCADE"), New("CASCADE")
	b.SetPresent(false)
	if c := Compare(a, b); c == 0 {
		t.Error("Compare ignores presence")
	}
}

func TestCompareValueRanks(t *testing.T) {
	vals := []*Value{
		Null(),
		FromBool(true),
		FromInt(3),
		FromFloat(2.5),
		FromString("s"),
		FromSlice(Strings("a")),
		FromNode(NewBare()),
	}
	for i := range vals {
		for j := range vals {
			c := CompareValue(vals[i], vals[j])
			switch {
			case i < j && c >= 0:
				t.Errorf("CompareValue(%d, %d) = %d, want < 0", i, j, c)
			case i > j && c <= 0:
				t.Errorf("CompareValue(%d, %d) = %d, want > 0", i, j, c)
			case i == j && c != 0:
				t.Errorf("CompareValue(%d, %d) = %d, want 0", i, j, c)
			}
		}
	}
}
