package quote

import "testing"

func TestIdentifier(t *testing.T) {
	tests := []struct {
		In, Out string
	}{
		{"orders", "orders"},
		{"_private", "_private"},
		{"order_2", "order_2"},
		{"Order Table", `"Order Table"`},
		{"2fast", `"2fast"`},
		{"select", `"select"`},
		{"table", `"table"`},
		{"tables", "tables"},
		{`say "hi"`, `"say ""hi"""`},
		{"", `""`},
	}
	for _, tc := range tests {
		if got := Identifier(tc.In); got != tc.Out {
			t.Errorf("Identifier(%q) = %q, want %q", tc.In, got, tc.Out)
		}
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		In, Out string
	}{
		{"hello", "'hello'"},
		{"O'Brien", "'O''Brien'"},
		{"", "''"},
		{`back\slash`, `'back\slash'`},
	}
	for _, tc := range tests {
		if got := Literal(tc.In); got != tc.Out {
			t.Errorf("Literal(%q) = %q, want %q", tc.In, got, tc.Out)
		}
	}
}

func TestIsReserved(t *testing.T) {
	for _, kw := range []string{"select", "from", "where", "table", "user"} {
		if !IsReserved(kw) {
			t.Errorf("IsReserved(%q) = false", kw)
		}
	}
	for _, kw := range []string{"orders", "selects", "tabled"} {
		if IsReserved(kw) {
			t.Errorf("IsReserved(%q) = true", kw)
		}
	}
}
