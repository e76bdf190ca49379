package grid_test

import (
	"testing"

	"github.com/tomsutton1984/lost/calc"
	"github.com/tomsutton1984/lost/common"
	"github.com/tomsutton1984/lost/frac"
	"github.com/tomsutton1984/lost/grid"
)

func TestMasonryWrap_Float(t *testing.T) {
	rules := grid.MasonryWrap(".wall", grid.Options{Gutter: calc.MustGutter("30px")})

	if len(rules) != 3 {
		t.Fatalf("expected wrapper plus clearfix, got %d rules", len(rules))
	}
	if v, _ := rules[0].Get("margin-left"); v != "-15px" {
		t.Errorf("margin-left = %q, want -15px", v)
	}
	if v, _ := rules[0].Get("margin-right"); v != "-15px" {
		t.Errorf("margin-right = %q, want -15px", v)
	}
	if rules[1].Selector != ".wall::before" || rules[2].Selector != ".wall::after" {
		t.Errorf("clearfix selectors = %q, %q", rules[1].Selector, rules[2].Selector)
	}
}

func TestMasonryWrap_Flex(t *testing.T) {
	rules := grid.MasonryWrap(".wall", grid.Options{
		Gutter: calc.MustGutter("30px"),
		Mode:   common.LayoutModeFlex,
	})

	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if v, _ := rules[0].Get("display"); v != "flex" {
		t.Errorf("display = %q, want flex", v)
	}
	if v, _ := rules[0].Get("flex-flow"); v != "row wrap" {
		t.Errorf("flex-flow = %q, want row wrap", v)
	}
}

func TestMasonryColumn_Float(t *testing.T) {
	rules := grid.MasonryColumn(".brick", frac.MustParse("1/3"), grid.Options{
		Gutter: calc.MustGutter("30px"),
	})

	expected := `.brick {
  float: left;
  width: calc(99.99% * (1/3) - 30px);
  margin-left: 15px;
  margin-right: 15px;
}
`
	if got := render(rules); got != expected {
		t.Errorf("MasonryColumn() =\n%s\nwant\n%s", got, expected)
	}
}

func TestMasonryColumn_ZeroGutter(t *testing.T) {
	rules := grid.MasonryColumn(".brick", frac.MustParse("1/3"), grid.Options{})

	if v, _ := rules[0].Get("width"); v != "calc(99.999999% * (1/3))" {
		t.Errorf("width = %q", v)
	}
	if _, ok := rules[0].Get("margin-left"); ok {
		t.Error("zero gutter masonry column should not carry side margins")
	}
}
