// Package common holds enumerations shared between the configuration
// layer and the grid emitters, so that config does not have to import
// the emitters just for a handful of constants.
package common

// Axis selects which direction a grid offset or move applies to.
// ENUM(row, column)
type Axis int

// Direction is the document writing direction. It mirrors every
// left/right property the emitters produce.
// ENUM(ltr, rtl)
type Direction int

func (d Direction) Mirrored() bool {
	return d == DirectionRtl
}

// LayoutMode selects between float-based and flexbox-based rule sets.
// ENUM(float, flex)
type LayoutMode int

func (m LayoutMode) Flexbox() bool {
	return m == LayoutModeFlex
}
