package grid

import (
	"github.com/tomsutton1984/lost/common"
	"github.com/tomsutton1984/lost/css"
)

// FlexContainer turns the selector into a wrapping flex parent for
// flex mode columns or rows.
func FlexContainer(sel string, axis common.Axis) []css.Rule {
	flow := "row wrap"
	if axis == common.AxisColumn {
		flow = "column wrap"
	}
	return []css.Rule{rule(sel,
		decl("display", "flex"),
		decl("flex-flow", flow),
	)}
}
