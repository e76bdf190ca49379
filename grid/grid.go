// Package grid emits complete CSS rule sets for fraction based layout
// mixins: columns, rows, waffles, offsets, moves, masonry wrappers,
// centering, alignment and the flexbox plumbing around them. Every
// emitter returns ordered css.Rule slices ready to be appended to a
// stylesheet; nothing here touches the filesystem.
package grid

import (
	"github.com/tomsutton1984/lost/calc"
	"github.com/tomsutton1984/lost/common"
	"github.com/tomsutton1984/lost/css"
	"github.com/tomsutton1984/lost/frac"
)

// Options carries the knobs shared by all emitters.
type Options struct {
	// Gutter is the spacing between adjacent items.
	Gutter calc.Gutter
	// Direction selects which side is the leading one.
	Direction common.Direction
	// Mode switches between float and flexbox output.
	Mode common.LayoutMode
	// Cycle overrides how many items make a full line. Zero means the
	// fraction's denominator decides.
	Cycle int
}

// cycleFor resolves the effective cycle for a fraction.
func (o Options) cycleFor(f frac.Fraction) int {
	if o.Cycle > 0 {
		return o.Cycle
	}
	return f.Cycle()
}

// sides returns the leading and trailing horizontal side names for the
// configured direction.
func (o Options) sides() (lead, trail string) {
	if o.Direction == common.DirectionRtl {
		return "right", "left"
	}
	return "left", "right"
}

func decl(property, value string) css.Declaration {
	return css.Declaration{Property: property, Value: value}
}

func rule(selector string, decls ...css.Declaration) css.Rule {
	return css.Rule{Selector: selector, Decls: decls}
}
