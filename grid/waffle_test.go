package grid_test

import (
	"testing"

	"github.com/tomsutton1984/lost/calc"
	"github.com/tomsutton1984/lost/common"
	"github.com/tomsutton1984/lost/frac"
	"github.com/tomsutton1984/lost/grid"
)

func TestWaffle_Float(t *testing.T) {
	rules := grid.Waffle(".tile", frac.MustParse("1/3"), grid.Options{
		Gutter: calc.MustGutter("30px"),
	})

	expected := `.tile {
  width: calc(99.99% * (1/3) - (30px - 30px * (1/3)));
  height: calc(99.99% * (1/3) - (30px - 30px * (1/3)));
}

.tile:nth-child(1n) {
  float: left;
  margin-right: 30px;
  margin-bottom: 30px;
  clear: none;
}

.tile:nth-child(3n) {
  margin-right: 0;
  float: right;
}

.tile:nth-last-child(-n + 3) {
  margin-bottom: 0;
}

.tile:nth-child(3n + 1) {
  clear: both;
}
`
	if got := render(rules); got != expected {
		t.Errorf("Waffle() =\n%s\nwant\n%s", got, expected)
	}
}

func TestWaffle_Flex(t *testing.T) {
	rules := grid.Waffle(".tile", frac.MustParse("1/2"), grid.Options{
		Gutter: calc.MustGutter("10px"),
		Mode:   common.LayoutModeFlex,
	})

	if len(rules) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(rules))
	}
	if v, _ := rules[0].Get("flex"); v != "0 0 auto" {
		t.Errorf("flex = %q, want 0 0 auto", v)
	}
	w, _ := rules[0].Get("width")
	h, _ := rules[0].Get("height")
	if w != h {
		t.Errorf("width %q and height %q differ", w, h)
	}
}

func TestWaffle_ZeroGutter(t *testing.T) {
	rules := grid.Waffle(".tile", frac.MustParse("1/4"), grid.Options{})

	for _, r := range rules {
		if _, ok := r.Get("margin-right"); ok {
			t.Errorf("rule %q carries a gutter margin", r.Selector)
		}
		if _, ok := r.Get("margin-bottom"); ok {
			t.Errorf("rule %q carries a gutter margin", r.Selector)
		}
	}
}
