// Package calc builds deferred CSS calc() expressions from parsed
// fractions. The formulas are emitted symbolically and never resolved:
// the true container size is unknown until render time, so every value
// this package produces is evaluated later by the presentation engine.
package calc

import (
	"fmt"

	"github.com/tomsutton1984/lost/common"
	"github.com/tomsutton1984/lost/frac"
)

// Gutter is the fixed spacing between adjacent grid items. The zero
// gutter disables gutter math entirely and switches size formulas to
// the simpler near-100% scalar form.
type Gutter struct {
	raw  string
	size frac.Number
}

// None is the zero gutter.
var None = Gutter{raw: "0"}

// ParseGutter parses a gutter specification: either the literal "0" or
// a size with a unit suffix such as "30px" or "2em".
func ParseGutter(text string) (Gutter, error) {
	if text == "" || text == "0" {
		return None, nil
	}
	n, err := frac.ParseNumber(text)
	if err != nil {
		return Gutter{}, fmt.Errorf("gutter %q: %w", text, err)
	}
	return Gutter{raw: text, size: n}, nil
}

// MustGutter is ParseGutter for static literals; it panics on error.
func MustGutter(text string) Gutter {
	g, err := ParseGutter(text)
	if err != nil {
		panic(err)
	}
	return g
}

// IsZero reports whether gutter math is disabled.
func (g Gutter) IsZero() bool {
	return g.raw == "" || g.raw == "0" || g.size.Value == 0
}

// String returns the gutter literal as written.
func (g Gutter) String() string {
	if g.raw == "" {
		return "0"
	}
	return g.raw
}

// Times renders the k-fold gutter as a literal size ("30px" x 2 gives
// "60px"). Offsets clear whole gutters, so the multiple is resolved
// numerically while the container-relative part stays symbolic.
func (g Gutter) Times(k float64) string {
	return g.size.Times(k).String()
}

// Half renders half the gutter, used by the masonry emitters.
func (g Gutter) Half() string {
	return g.Times(0.5)
}

// The percentage scalars deliberately undershoot 100%: rendering
// engines round sub-pixel values and a full 100% sum can wrap the last
// item onto the next line. The zero-gutter form can afford a much
// smaller epsilon because no gutter arithmetic compounds the error.
const (
	scalar       = "99.99%"
	scalarSimple = "99.999999%"
)

// sized builds the size formula over an already rendered fraction text,
// optionally clearing additional whole gutters.
func sized(text string, g Gutter, gutters float64) string {
	if g.IsZero() {
		return "calc(" + scalarSimple + " * " + text + ")"
	}
	expr := scalar + " * " + text + " - (" + g.String() + " - " + g.String() + " * " + text + ")"
	if gutters > 0 {
		expr += " + " + g.Times(gutters)
	}
	return "calc(" + expr + ")"
}

// Size builds the deferred width/height expression for a fraction of
// the container. With a non-zero gutter every item gives up one gutter
// and gets the unused gutter fraction back, so N items of 1/N plus the
// N-1 gutters between them sum to exactly one full container.
func Size(f frac.Fraction, g Gutter) string {
	return sized(f.Text(), g, 0)
}

// MasonryWidth builds the size expression for a masonry column, where
// whole gutters sit on the element's own sides instead of between
// items, so the width gives up one full gutter.
func MasonryWidth(f frac.Fraction, g Gutter) string {
	if g.IsZero() {
		return sized(f.Text(), g, 0)
	}
	return "calc(" + scalar + " * " + f.Text() + " - " + g.String() + ")"
}

// Placement binds a property name to a deferred expression value.
type Placement struct {
	Property string
	Value    string
}

// Offset reserves space on one side of an item. The side follows the
// numerator sign: positive pushes the trailing side clearing two
// gutters (its own and the next item's), negative pushes the leading
// side, and zero resets a previously offset item back to baseline.
func Offset(f frac.Fraction, axis common.Axis, g Gutter) []Placement {
	lead, trail := "margin-left", "margin-right"
	if axis == common.AxisColumn {
		lead, trail = "margin-top", "margin-bottom"
	}

	switch f.Sign() {
	case 0:
		return []Placement{{lead, "0"}, {trail, g.String()}}
	case 1:
		return []Placement{{trail, sized(f.Text(), g, 2)}}
	default:
		// The row branch clears a single gutter while the column branch
		// clears two. Asymmetric on purpose, see the offset tests.
		gutters := 1.0
		if axis == common.AxisColumn {
			gutters = 2
		}
		return []Placement{{lead, sized(f.AbsText(), g, gutters)}}
	}
}

// Move shifts an item in source order without altering its footprint.
// It always anchors the position property of the leading edge and
// always clears a single gutter: callers apply it in signed pairs
// (+f and -f) to swap two items visually.
func Move(f frac.Fraction, axis common.Axis, g Gutter) Placement {
	prop := "left"
	if axis == common.AxisColumn {
		prop = "top"
	}
	return Placement{prop, sized(f.Text(), g, 1)}
}
