package grid

import (
	"errors"
	"fmt"

	"github.com/tomsutton1984/lost/css"
)

// ErrUnknownLocation is returned by Align for a location name outside
// the nine position grid.
var ErrUnknownLocation = errors.New("unknown align location")

// Align positions the direct children of the selector at one of nine
// locations, or resets earlier alignment with "reset". Flex mode
// aligns through the container's justify-content and align-items;
// float mode absolutely positions the child and recenters it with a
// transform.
func Align(sel, location string, opts Options) ([]css.Rule, error) {
	if opts.Mode.Flexbox() {
		return alignFlex(sel, location)
	}
	return alignFloat(sel, location)
}

var flexAlignments = map[string][2]string{
	"top-left":      {"flex-start", "flex-start"},
	"top-center":    {"center", "flex-start"},
	"top-right":     {"flex-end", "flex-start"},
	"middle-left":   {"flex-start", "center"},
	"middle-center": {"center", "center"},
	"middle-right":  {"flex-end", "center"},
	"bottom-left":   {"flex-start", "flex-end"},
	"bottom-center": {"center", "flex-end"},
	"bottom-right":  {"flex-end", "flex-end"},
}

func alignFlex(sel, location string) ([]css.Rule, error) {
	if location == "reset" {
		return []css.Rule{rule(sel,
			decl("display", "initial"),
			decl("justify-content", "inherit"),
			decl("align-items", "inherit"),
		)}, nil
	}

	a, ok := flexAlignments[location]
	if !ok {
		return nil, fmt.Errorf("%q: %w", location, ErrUnknownLocation)
	}
	return []css.Rule{rule(sel,
		decl("display", "flex"),
		decl("justify-content", a[0]),
		decl("align-items", a[1]),
	)}, nil
}

// floatAlignments maps a location to the top, left and translate values
// of the absolutely positioned child. An empty value means the
// property stays at auto.
var floatAlignments = map[string][3]string{
	"top-left":      {"0", "0", ""},
	"top-center":    {"0", "50%", "translate(-50%, 0)"},
	"top-right":     {"0", "", ""},
	"middle-left":   {"50%", "0", "translate(0, -50%)"},
	"middle-center": {"50%", "50%", "translate(-50%, -50%)"},
	"middle-right":  {"50%", "", "translate(0, -50%)"},
	"bottom-left":   {"", "0", ""},
	"bottom-center": {"", "50%", "translate(-50%, 0)"},
	"bottom-right":  {"", "", ""},
}

func alignFloat(sel, location string) ([]css.Rule, error) {
	if location == "reset" {
		return []css.Rule{
			rule(sel, decl("position", "static")),
			rule(sel+" > *",
				decl("position", "static"),
				decl("top", "auto"),
				decl("right", "auto"),
				decl("bottom", "auto"),
				decl("left", "auto"),
				decl("transform", "none"),
			),
		}, nil
	}

	a, ok := floatAlignments[location]
	if !ok {
		return nil, fmt.Errorf("%q: %w", location, ErrUnknownLocation)
	}

	child := rule(sel+" > *", decl("position", "absolute"))
	top, left, transform := a[0], a[1], a[2]
	if top != "" {
		child.Decls = append(child.Decls, decl("top", top))
	} else {
		child.Decls = append(child.Decls, decl("bottom", "0"))
	}
	if left != "" {
		child.Decls = append(child.Decls, decl("left", left))
	} else {
		child.Decls = append(child.Decls, decl("right", "0"))
	}
	if transform != "" {
		child.Decls = append(child.Decls, decl("transform", transform))
	}

	return []css.Rule{
		rule(sel, decl("position", "relative")),
		child,
	}, nil
}
