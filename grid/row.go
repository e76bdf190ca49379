package grid

import (
	"github.com/tomsutton1984/lost/calc"
	"github.com/tomsutton1984/lost/css"
	"github.com/tomsutton1984/lost/frac"
)

// Row lays out the selector as a vertical grid element occupying the
// given fraction of its container's height. Rows stack, so the gutter
// sits on the bottom edge and the last row drops it.
func Row(sel string, f frac.Fraction, opts Options) []css.Rule {
	g := opts.Gutter

	base := rule(sel)
	if opts.Mode.Flexbox() {
		base.Decls = append(base.Decls, decl("flex", "0 0 auto"))
	}
	base.Decls = append(base.Decls,
		decl("width", "100%"),
		decl("height", calc.Size(f, g)),
	)
	if !g.IsZero() {
		base.Decls = append(base.Decls, decl("margin-bottom", g.String()))
	}

	rules := []css.Rule{base}
	if !g.IsZero() {
		rules = append(rules, rule(sel+":last-child", decl("margin-bottom", "0")))
	}
	return rules
}
