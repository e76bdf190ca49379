package grid

import (
	"fmt"

	"github.com/tomsutton1984/lost/calc"
	"github.com/tomsutton1984/lost/css"
	"github.com/tomsutton1984/lost/frac"
)

// Column lays out the selector as a horizontal grid element occupying
// the given fraction of its row. Float mode emits the full cycle
// machinery: every item floats to the leading side and carries a
// trailing gutter, the last item in each cycle drops the gutter and
// floats to the trailing side, and the first item of each cycle clears
// the line above it. Flex mode leaves flow to the container and only
// manages width and gutters.
func Column(sel string, f frac.Fraction, opts Options) []css.Rule {
	lead, trail := opts.sides()
	cycle := opts.cycleFor(f)
	g := opts.Gutter

	base := rule(sel)
	if opts.Mode.Flexbox() {
		base.Decls = append(base.Decls, decl("flex", "0 0 auto"))
	}
	base.Decls = append(base.Decls, decl("width", calc.Size(f, g)))
	rules := []css.Rule{base}

	if opts.Mode.Flexbox() {
		if !g.IsZero() {
			rules = append(rules,
				rule(sel+":nth-child(1n)", decl("margin-"+trail, g.String())),
				rule(sel+":last-child", decl("margin-"+trail, "0")),
				rule(fmt.Sprintf("%s:nth-child(%dn)", sel, cycle), decl("margin-"+trail, "0")),
			)
		}
		return rules
	}

	every := rule(sel+":nth-child(1n)", decl("float", lead))
	if !g.IsZero() {
		every.Decls = append(every.Decls, decl("margin-"+trail, g.String()))
	}
	every.Decls = append(every.Decls, decl("clear", "none"))
	rules = append(rules, every)

	if !g.IsZero() {
		rules = append(rules, rule(sel+":last-child", decl("margin-"+trail, "0")))
	}

	cycleLast := rule(fmt.Sprintf("%s:nth-child(%dn)", sel, cycle))
	if !g.IsZero() {
		cycleLast.Decls = append(cycleLast.Decls, decl("margin-"+trail, "0"))
	}
	cycleLast.Decls = append(cycleLast.Decls, decl("float", trail))
	rules = append(rules,
		cycleLast,
		rule(fmt.Sprintf("%s:nth-child(%dn + 1)", sel, cycle), decl("clear", "both")),
	)
	return rules
}
