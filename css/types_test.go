package css_test

import (
	"strings"
	"testing"

	"github.com/tomsutton1984/lost/css"
)

func TestStylesheet_String(t *testing.T) {
	sheet := &css.Stylesheet{}
	sheet.AppendComment("generated")
	sheet.Append(css.Rule{
		Selector: ".quarter",
		Decls: []css.Declaration{
			{"width", "calc(99.99% * (1/4) - (30px - 30px * (1/4)))"},
		},
	})
	sheet.Append(css.Rule{
		Selector: ".quarter:nth-child(4n)",
		Decls: []css.Declaration{
			{"margin-right", "0"},
			{"float", "right"},
		},
	})

	expected := `/* generated */

.quarter {
  width: calc(99.99% * (1/4) - (30px - 30px * (1/4)));
}

.quarter:nth-child(4n) {
  margin-right: 0;
  float: right;
}
`
	if got := sheet.String(); got != expected {
		t.Errorf("String() =\n%s\nwant\n%s", got, expected)
	}
}

func TestStylesheet_DeclarationOrder(t *testing.T) {
	// cycle rules rely on declaration order surviving serialization
	sheet := &css.Stylesheet{}
	sheet.Append(css.Rule{
		Selector: "a",
		Decls: []css.Declaration{
			{"float", "left"},
			{"margin-right", "30px"},
			{"clear", "none"},
		},
	})

	out := sheet.String()
	f := strings.Index(out, "float")
	m := strings.Index(out, "margin-right")
	c := strings.Index(out, "clear")
	if !(f < m && m < c) {
		t.Errorf("declarations reordered:\n%s", out)
	}
}

func TestStylesheet_MediaBlock(t *testing.T) {
	sheet := &css.Stylesheet{}
	sheet.AppendMedia("(min-width: 700px)", []css.Rule{
		{Selector: ".half", Decls: []css.Declaration{{"width", "50%"}}},
	})

	expected := `@media (min-width: 700px) {
  .half {
    width: 50%;
  }
}
`
	if got := sheet.String(); got != expected {
		t.Errorf("String() =\n%s\nwant\n%s", got, expected)
	}
}

func TestRule_Get(t *testing.T) {
	r := css.Rule{
		Selector: "a",
		Decls: []css.Declaration{
			{"width", "10px"},
			{"width", "20px"},
		},
	}
	if v, ok := r.Get("width"); !ok || v != "20px" {
		t.Errorf("Get(width) = %q, %v; want 20px, true", v, ok)
	}
	if _, ok := r.Get("height"); ok {
		t.Error("Get(height) = true, want false")
	}
}
