package grid_test

import (
	"testing"

	"github.com/tomsutton1984/lost/calc"
	"github.com/tomsutton1984/lost/common"
	"github.com/tomsutton1984/lost/frac"
	"github.com/tomsutton1984/lost/grid"
)

func TestOffset_Row(t *testing.T) {
	opts := grid.Options{Gutter: calc.MustGutter("30px")}

	rules := grid.Offset(".push", frac.MustParse("1/4"), common.AxisRow, opts)
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	want := "calc(99.99% * (1/4) - (30px - 30px * (1/4)) + 60px)"
	if v, _ := rules[0].Get("margin-right"); v != want {
		t.Errorf("margin-right = %q, want %q", v, want)
	}

	rules = grid.Offset(".pull", frac.MustParse("-1/4"), common.AxisRow, opts)
	want = "calc(99.99% * (1/4) - (30px - 30px * (1/4)) + 30px)"
	if v, _ := rules[0].Get("margin-left"); v != want {
		t.Errorf("margin-left = %q, want %q", v, want)
	}
}

func TestOffset_Zero(t *testing.T) {
	opts := grid.Options{Gutter: calc.MustGutter("30px")}

	rules := grid.Offset(".reset", frac.MustParse("0/4"), common.AxisRow, opts)
	if v, _ := rules[0].Get("margin-left"); v != "0" {
		t.Errorf("margin-left = %q, want 0", v)
	}
	if v, _ := rules[0].Get("margin-right"); v != "30px" {
		t.Errorf("margin-right = %q, want 30px", v)
	}
}

func TestOffset_RowRtl(t *testing.T) {
	opts := grid.Options{
		Gutter:    calc.MustGutter("30px"),
		Direction: common.DirectionRtl,
	}

	rules := grid.Offset(".push", frac.MustParse("1/4"), common.AxisRow, opts)
	if _, ok := rules[0].Get("margin-right"); ok {
		t.Error("rtl offset should mirror margin-right to margin-left")
	}
	if _, ok := rules[0].Get("margin-left"); !ok {
		t.Error("expected mirrored margin-left")
	}
}

func TestOffset_Column(t *testing.T) {
	opts := grid.Options{
		Gutter:    calc.MustGutter("30px"),
		Direction: common.DirectionRtl,
	}

	// vertical offsets ignore direction
	rules := grid.Offset(".pull", frac.MustParse("-1/4"), common.AxisColumn, opts)
	want := "calc(99.99% * (1/4) - (30px - 30px * (1/4)) + 60px)"
	if v, _ := rules[0].Get("margin-top"); v != want {
		t.Errorf("margin-top = %q, want %q", v, want)
	}
}

func TestMove_Row(t *testing.T) {
	opts := grid.Options{Gutter: calc.MustGutter("30px")}

	rules := grid.Move(".swap", frac.MustParse("1/3"), common.AxisRow, opts)
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if v, _ := rules[0].Get("position"); v != "relative" {
		t.Errorf("position = %q, want relative", v)
	}
	want := "calc(99.99% * (1/3) - (30px - 30px * (1/3)) + 30px)"
	if v, _ := rules[0].Get("left"); v != want {
		t.Errorf("left = %q, want %q", v, want)
	}
}

func TestMove_RowRtl(t *testing.T) {
	opts := grid.Options{
		Gutter:    calc.MustGutter("30px"),
		Direction: common.DirectionRtl,
	}

	rules := grid.Move(".swap", frac.MustParse("1/3"), common.AxisRow, opts)
	if _, ok := rules[0].Get("left"); ok {
		t.Error("rtl move should anchor right, not left")
	}
	if _, ok := rules[0].Get("right"); !ok {
		t.Error("expected right anchor")
	}
}

func TestMove_Column(t *testing.T) {
	opts := grid.Options{Gutter: calc.MustGutter("30px")}

	rules := grid.Move(".swap", frac.MustParse("-1/3"), common.AxisColumn, opts)
	want := "calc(99.99% * (-1/3) - (30px - 30px * (-1/3)) + 30px)"
	if v, _ := rules[0].Get("top"); v != want {
		t.Errorf("top = %q, want %q", v, want)
	}
}
