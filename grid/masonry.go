package grid

import (
	"github.com/tomsutton1984/lost/calc"
	"github.com/tomsutton1984/lost/css"
	"github.com/tomsutton1984/lost/frac"
)

// MasonryWrap prepares a container for masonry columns. The wrapper
// bleeds half a gutter on both sides so that the columns' own side
// margins line the content back up with the surrounding layout.
func MasonryWrap(sel string, opts Options) []css.Rule {
	g := opts.Gutter

	r := rule(sel)
	if opts.Mode.Flexbox() {
		r.Decls = append(r.Decls,
			decl("display", "flex"),
			decl("flex-flow", "row wrap"),
		)
	}
	if !g.IsZero() {
		half := "-" + g.Half()
		r.Decls = append(r.Decls,
			decl("margin-left", half),
			decl("margin-right", half),
		)
	}

	rules := []css.Rule{r}
	if !opts.Mode.Flexbox() {
		rules = append(rules, Clearfix(sel)...)
	}
	return rules
}

// MasonryColumn sizes a column inside a masonry wrapper. Unlike a
// plain column the gutter is split in half onto the element's own
// sides, so every item in the cycle looks the same and no nth-child
// stripping is needed.
func MasonryColumn(sel string, f frac.Fraction, opts Options) []css.Rule {
	g := opts.Gutter

	r := rule(sel)
	if opts.Mode.Flexbox() {
		r.Decls = append(r.Decls, decl("flex", "0 0 auto"))
	} else {
		lead, _ := opts.sides()
		r.Decls = append(r.Decls, decl("float", lead))
	}
	r.Decls = append(r.Decls, decl("width", calc.MasonryWidth(f, g)))
	if !g.IsZero() {
		half := g.Half()
		r.Decls = append(r.Decls,
			decl("margin-left", half),
			decl("margin-right", half),
		)
	}
	return []css.Rule{r}
}
