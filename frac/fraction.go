package frac

import (
	"fmt"
	"strings"
)

// Fraction is the parsed form of a fraction string such as "2/3":
// signed numerator, denominator and the raw texts both were parsed
// from. The raw texts are kept because size expressions embed the
// fraction symbolically rather than as a resolved quotient.
type Fraction struct {
	Numerator   Number
	Denominator Number

	rawNum string
	rawDen string
}

// Parse splits text on "/" and parses both halves as numeric literals.
// Exactly one "/" is required; anything else is a malformed fraction.
func Parse(text string) (Fraction, error) {
	parts := Split(text, "/")
	if len(parts) != 2 {
		return Fraction{}, fmt.Errorf("%q: %w", text, ErrMalformedFraction)
	}
	num, err := ParseNumber(parts[0])
	if err != nil {
		return Fraction{}, fmt.Errorf("numerator of %q: %w", text, err)
	}
	den, err := ParseNumber(parts[1])
	if err != nil {
		return Fraction{}, fmt.Errorf("denominator of %q: %w", text, err)
	}
	return Fraction{Numerator: num, Denominator: den, rawNum: parts[0], rawDen: parts[1]}, nil
}

// MustParse is Parse for static fraction literals; it panics on error.
func MustParse(text string) Fraction {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

// Cycle is the repeat period for nth-child selectors, defaulting to the
// denominator magnitude.
func (f Fraction) Cycle() int {
	return int(f.Denominator.Value)
}

// Sign reports -1, 0 or 1 according to the numerator. Zero is its own
// branch, neither positive nor negative.
func (f Fraction) Sign() int {
	switch {
	case f.Numerator.Value > 0:
		return 1
	case f.Numerator.Value < 0:
		return -1
	default:
		return 0
	}
}

// Text renders the fraction for embedding into a calc() expression.
func (f Fraction) Text() string {
	return "(" + f.rawNum + "/" + f.rawDen + ")"
}

// AbsText renders the fraction with the numerator sign stripped, used
// by the leading-side offset branch.
func (f Fraction) AbsText() string {
	return "(" + strings.TrimPrefix(f.rawNum, "-") + "/" + f.rawDen + ")"
}

// String returns the original fraction text.
func (f Fraction) String() string {
	return f.rawNum + "/" + f.rawDen
}
