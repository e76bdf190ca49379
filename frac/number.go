package frac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Unit identifies a CSS length unit suffix. The empty Unit marks a
// unitless number.
type Unit string

const (
	UnitNone    Unit = ""
	UnitPx      Unit = "px"
	UnitCm      Unit = "cm"
	UnitMm      Unit = "mm"
	UnitPercent Unit = "%"
	UnitCh      Unit = "ch"
	UnitPica    Unit = "pica"
	UnitIn      Unit = "in"
	UnitEm      Unit = "em"
	UnitRem     Unit = "rem"
	UnitPt      Unit = "pt"
	UnitPc      Unit = "pc"
	UnitEx      Unit = "ex"
	UnitVw      Unit = "vw"
	UnitVh      Unit = "vh"
	UnitVmin    Unit = "vmin"
	UnitVmax    Unit = "vmax"
)

// units is the closed suffix table. Lookup is exact-match and
// case-sensitive; an unrecognized suffix is a parse failure, never a
// silent default.
var units = map[string]Unit{
	"px":   UnitPx,
	"cm":   UnitCm,
	"mm":   UnitMm,
	"%":    UnitPercent,
	"ch":   UnitCh,
	"pica": UnitPica,
	"in":   UnitIn,
	"em":   UnitEm,
	"rem":  UnitRem,
	"pt":   UnitPt,
	"pc":   UnitPc,
	"ex":   UnitEx,
	"vw":   UnitVw,
	"vh":   UnitVh,
	"vmin": UnitVmin,
	"vmax": UnitVmax,
}

// LookupUnit resolves a unit suffix against the fixed unit table.
func LookupUnit(suffix string) (Unit, bool) {
	u, ok := units[suffix]
	return u, ok
}

var (
	// ErrMalformedFraction reports a fraction string without exactly one "/".
	ErrMalformedFraction = errors.New("malformed fraction")
	// ErrMalformedNumber reports a numeric literal without any digits.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrUnknownUnit reports a trailing suffix missing from the unit table.
	ErrUnknownUnit = errors.New("unknown unit")
)

// Number is a parsed numeric literal with an optional unit suffix.
type Number struct {
	Value float64
	Unit  Unit
}

// String renders the literal back into CSS form, trimming insignificant
// fractional zeros ("60px", "0.5em", "15%").
func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64) + string(n.Unit)
}

// Times scales the literal, keeping its unit.
func (n Number) Times(k float64) Number {
	return Number{Value: n.Value * k, Unit: n.Unit}
}

// ParseNumber scans text as a signed, optionally fractional decimal
// literal with an optional trailing unit suffix.
//
// The scan is a single left-to-right pass: "-" anywhere before the
// suffix flips the sign, the first "." switches to fractional
// accumulation, and the first character that is none of digit, "-" or
// "." ends the magnitude - everything from it onward is the unit
// suffix. The sign laxity ("1-2" parses as -12) is intentional; callers
// of the fraction grammar never produce such strings, but the behavior
// is pinned by tests.
func ParseNumber(text string) (Number, error) {
	var (
		result  float64
		divider float64
		minus   bool
		digits  bool
	)

	chars := Split(text, "")
	for i, c := range chars {
		switch {
		case c == "-":
			minus = true
		case c == ".":
			divider = 1
		case c >= "0" && c <= "9":
			digits = true
			d := float64(c[0] - '0')
			if divider == 0 {
				result = result*10 + d
			} else {
				divider *= 10
				result += d / divider
			}
		default:
			if !digits {
				return Number{}, fmt.Errorf("%q has no leading number: %w", text, ErrMalformedNumber)
			}
			suffix := strings.Join(chars[i:], "")
			unit, ok := LookupUnit(suffix)
			if !ok {
				return Number{}, fmt.Errorf("%q has suffix %q: %w", text, suffix, ErrUnknownUnit)
			}
			if minus {
				result = -result
			}
			return Number{Value: result, Unit: unit}, nil
		}
	}

	if !digits {
		return Number{}, fmt.Errorf("%q has no leading number: %w", text, ErrMalformedNumber)
	}
	if minus {
		result = -result
	}
	return Number{Value: result}, nil
}
