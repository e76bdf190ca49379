package grid

import "github.com/tomsutton1984/lost/css"

// defaultEditColor is a translucent blue that stays readable over most
// page backgrounds.
const defaultEditColor = "rgba(0, 0, 255, 0.1)"

// Edit paints every descendant of the selector with a translucent
// background so grid placement can be inspected visually. An empty
// selector targets the whole page, an empty color uses the default.
func Edit(sel, color string) []css.Rule {
	if color == "" {
		color = defaultEditColor
	}
	target := "*"
	if sel != "" {
		target = sel + " *"
	}
	return []css.Rule{rule(target, decl("background-color", color))}
}

// Clearfix forces the selector to contain its floated children.
func Clearfix(sel string) []css.Rule {
	return []css.Rule{
		rule(sel+"::before",
			decl("content", "''"),
			decl("display", "table"),
		),
		rule(sel+"::after",
			decl("content", "''"),
			decl("display", "table"),
			decl("clear", "both"),
		),
	}
}
