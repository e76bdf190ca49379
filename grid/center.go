package grid

import "github.com/tomsutton1984/lost/css"

// Center horizontally centers a container at an optional maximum width
// with optional side padding. Float mode clears the floated children
// with clearfix pseudo elements, flex mode wraps them instead.
func Center(sel, maxWidth, padding string, opts Options) []css.Rule {
	r := rule(sel)
	if opts.Mode.Flexbox() {
		r.Decls = append(r.Decls,
			decl("display", "flex"),
			decl("flex-flow", "row wrap"),
		)
	}
	if maxWidth != "" {
		r.Decls = append(r.Decls, decl("max-width", maxWidth))
	}
	r.Decls = append(r.Decls,
		decl("margin-left", "auto"),
		decl("margin-right", "auto"),
	)
	if padding != "" {
		r.Decls = append(r.Decls,
			decl("padding-left", padding),
			decl("padding-right", padding),
		)
	}

	rules := []css.Rule{r}
	if !opts.Mode.Flexbox() {
		rules = append(rules, Clearfix(sel)...)
	}
	return rules
}
