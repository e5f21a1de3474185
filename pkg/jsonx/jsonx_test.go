package jsonx

import "testing"

func TestParseInvalidIsEmpty(t *testing.T) {
	r := Parse([]byte("<html>oops</html>"))
	if r.Exists() {
		t.Fatalf("expected empty result for invalid json")
	}
	if rows := Rows(r); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestRowsLocatesWrappers(t *testing.T) {
	cases := []string{
		`[{"a":1},{"a":2}]`,
		`{"data":[{"a":1},{"a":2}]}`,
		`{"results":[{"a":1},{"a":2}]}`,
		`{"data":{"rows":[{"a":1},{"a":2}]}}`,
	}
	for _, c := range cases {
		rows := Rows(Parse([]byte(c)))
		if len(rows) != 2 {
			t.Fatalf("%s: got %d rows", c, len(rows))
		}
	}
}

func TestFloatAcceptsNumericStrings(t *testing.T) {
	doc := Parse([]byte(`{"a":"1.5","b":2,"c":"12.5%","d":"x","e":null}`))
	if v, ok := Float(doc.Get("a")); !ok || v != 1.5 {
		t.Fatalf("a: got %v %v", v, ok)
	}
	if v := FloatOr(doc.Get("b"), 0); v != 2 {
		t.Fatalf("b: got %v", v)
	}
	if v := FloatOr(doc.Get("c"), 0); v != 12.5 {
		t.Fatalf("c: got %v", v)
	}
	if v := FloatOr(doc.Get("d"), -1); v != -1 {
		t.Fatalf("d: expected default, got %v", v)
	}
	if v := FloatOr(doc.Get("missing"), -1); v != -1 {
		t.Fatalf("missing: expected default, got %v", v)
	}
}

func TestFirstSkipsNulls(t *testing.T) {
	doc := Parse([]byte(`{"title":null,"headline":"Fed holds"}`))
	if got := StringOr(First(doc, "title", "headline"), Placeholder); got != "Fed holds" {
		t.Fatalf("got %q", got)
	}
	if got := StringOr(First(doc, "summary"), Placeholder); got != Placeholder {
		t.Fatalf("expected placeholder, got %q", got)
	}
}

func TestFloatsSkipsNonNumeric(t *testing.T) {
	got := Floats(Parse([]byte(`[1,"2",null,"x",3.5]`)))
	if len(got) != 3 || got[2] != 3.5 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Floats(Parse([]byte(`{"a":1}`))); len(got) != 0 {
		t.Fatalf("expected empty slice for non-array")
	}
}

func TestBoolOr(t *testing.T) {
	doc := Parse([]byte(`{"a":true,"b":"false","c":0,"d":"maybe"}`))
	if !BoolOr(doc.Get("a"), false) || BoolOr(doc.Get("b"), true) || BoolOr(doc.Get("c"), true) {
		t.Fatalf("unexpected bool parse")
	}
	if !BoolOr(doc.Get("d"), true) {
		t.Fatalf("expected default for unparseable")
	}
}
