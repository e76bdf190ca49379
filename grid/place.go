package grid

import (
	"strings"

	"github.com/tomsutton1984/lost/calc"
	"github.com/tomsutton1984/lost/common"
	"github.com/tomsutton1984/lost/css"
	"github.com/tomsutton1984/lost/frac"
)

// Offset reserves fraction sized space beside the selector by growing
// one of its margins. The side follows the numerator sign; a zero
// numerator resets a previously offset item.
func Offset(sel string, f frac.Fraction, axis common.Axis, opts Options) []css.Rule {
	r := rule(sel)
	for _, p := range calc.Offset(f, axis, opts.Gutter) {
		r.Decls = append(r.Decls, decl(mirrorProperty(p.Property, axis, opts), p.Value))
	}
	return []css.Rule{r}
}

// Move shifts the selector visually without changing its place in
// source order. Applied in signed pairs it swaps two items.
func Move(sel string, f frac.Fraction, axis common.Axis, opts Options) []css.Rule {
	p := calc.Move(f, axis, opts.Gutter)
	return []css.Rule{rule(sel,
		decl("position", "relative"),
		decl(mirrorProperty(p.Property, axis, opts), p.Value),
	)}
}

// mirrorProperty flips horizontal side properties for right-to-left
// layouts. Vertical properties pass through untouched.
func mirrorProperty(property string, axis common.Axis, opts Options) string {
	if axis != common.AxisRow || !opts.Direction.Mirrored() {
		return property
	}
	switch {
	case strings.HasSuffix(property, "left"):
		return strings.TrimSuffix(property, "left") + "right"
	case strings.HasSuffix(property, "right"):
		return strings.TrimSuffix(property, "right") + "left"
	}
	return property
}
