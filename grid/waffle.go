package grid

import (
	"fmt"

	"github.com/tomsutton1984/lost/calc"
	"github.com/tomsutton1984/lost/css"
	"github.com/tomsutton1984/lost/frac"
)

// Waffle lays out the selector as a two dimensional block grid: each
// item takes the same fraction of both the width and the height of its
// container. The cycle strips the trailing gutter horizontally and the
// last full row strips the bottom gutter.
func Waffle(sel string, f frac.Fraction, opts Options) []css.Rule {
	lead, trail := opts.sides()
	cycle := opts.cycleFor(f)
	g := opts.Gutter
	size := calc.Size(f, g)

	base := rule(sel)
	if opts.Mode.Flexbox() {
		base.Decls = append(base.Decls, decl("flex", "0 0 auto"))
	}
	base.Decls = append(base.Decls,
		decl("width", size),
		decl("height", size),
	)
	rules := []css.Rule{base}

	if opts.Mode.Flexbox() {
		if !g.IsZero() {
			rules = append(rules,
				rule(sel+":nth-child(1n)",
					decl("margin-"+trail, g.String()),
					decl("margin-bottom", g.String()),
				),
				rule(fmt.Sprintf("%s:nth-child(%dn)", sel, cycle), decl("margin-"+trail, "0")),
				rule(fmt.Sprintf("%s:nth-last-child(-n + %d)", sel, cycle), decl("margin-bottom", "0")),
			)
		}
		return rules
	}

	every := rule(sel+":nth-child(1n)", decl("float", lead))
	if !g.IsZero() {
		every.Decls = append(every.Decls,
			decl("margin-"+trail, g.String()),
			decl("margin-bottom", g.String()),
		)
	}
	every.Decls = append(every.Decls, decl("clear", "none"))
	rules = append(rules, every)

	cycleLast := rule(fmt.Sprintf("%s:nth-child(%dn)", sel, cycle))
	if !g.IsZero() {
		cycleLast.Decls = append(cycleLast.Decls, decl("margin-"+trail, "0"))
	}
	cycleLast.Decls = append(cycleLast.Decls, decl("float", trail))
	rules = append(rules, cycleLast)

	if !g.IsZero() {
		rules = append(rules,
			rule(fmt.Sprintf("%s:nth-last-child(-n + %d)", sel, cycle), decl("margin-bottom", "0")),
		)
	}
	rules = append(rules,
		rule(fmt.Sprintf("%s:nth-child(%dn + 1)", sel, cycle), decl("clear", "both")),
	)
	return rules
}
