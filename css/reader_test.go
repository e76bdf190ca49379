package css_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/tomsutton1984/lost/css"
)

func TestReader_Ruleset(t *testing.T) {
	r := css.NewReader(zap.NewNop())

	sheet := r.Read([]byte(`.grid { margin: 0 auto; max-width: 1140px; }`))

	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if rules[0].Selector != ".grid" {
		t.Errorf("selector = %q, want .grid", rules[0].Selector)
	}
	if len(rules[0].Decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(rules[0].Decls))
	}
	if rules[0].Decls[0].Property != "margin" || rules[0].Decls[0].Value != "0 auto" {
		t.Errorf("first declaration = %v", rules[0].Decls[0])
	}
	if v, ok := rules[0].Get("max-width"); !ok || v != "1140px" {
		t.Errorf("max-width = %q, %v", v, ok)
	}
}

func TestReader_DeclarationOrderPreserved(t *testing.T) {
	r := css.NewReader(nil)

	sheet := r.Read([]byte(`a { z-index: 1; color: red; border: 0; }`))

	rules := sheet.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	want := []string{"z-index", "color", "border"}
	for i, d := range rules[0].Decls {
		if d.Property != want[i] {
			t.Errorf("declaration %d = %q, want %q", i, d.Property, want[i])
		}
	}
}

func TestReader_MediaBlock(t *testing.T) {
	r := css.NewReader(zap.NewNop())

	input := `@media (min-width: 700px) { .half { width: 50%; } .full { width: 100%; } }`
	sheet := r.Read([]byte(input), "test.css")

	if len(sheet.Items) != 1 || sheet.Items[0].MediaBlock == nil {
		t.Fatalf("expected a single media block, got %+v", sheet.Items)
	}
	mb := sheet.Items[0].MediaBlock
	if mb.Query != "(min-width: 700px)" {
		t.Errorf("query = %q", mb.Query)
	}
	if len(mb.Rules) != 2 {
		t.Fatalf("expected 2 nested rules, got %d", len(mb.Rules))
	}
	if mb.Rules[1].Selector != ".full" {
		t.Errorf("second selector = %q, want .full", mb.Rules[1].Selector)
	}
}

func TestReader_SkipsUnsupportedAtRules(t *testing.T) {
	r := css.NewReader(zap.NewNop())

	input := `@import url("x.css");
@font-face { font-family: "F"; }
p { color: blue; }`
	sheet := r.Read([]byte(input))

	if len(sheet.Rules()) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules()))
	}
	if len(sheet.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(sheet.Warnings), sheet.Warnings)
	}
}

func TestReader_RoundTrip(t *testing.T) {
	r := css.NewReader(zap.NewNop())

	input := `.a {
  width: 50%;
}

.b {
  color: red;
}
`
	sheet := r.Read([]byte(input))
	if got := sheet.String(); got != input {
		t.Errorf("round trip =\n%s\nwant\n%s", got, input)
	}
}
