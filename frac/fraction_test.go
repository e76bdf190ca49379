package frac

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		numerator   float64
		denominator float64
		cycle       int
		sign        int
	}{
		{"two thirds", "2/3", 2, 3, 3, 1},
		{"negative quarter", "-1/4", -1, 4, 4, -1},
		{"zero", "0/3", 0, 3, 3, 0},
		{"decimal numerator", "1.5/4", 1.5, 4, 4, 1},
		{"unit on numerator", "30px/3", 30, 3, 3, 1},
		{"wide", "7/12", 7, 12, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got.Numerator.Value != tt.numerator {
				t.Errorf("numerator = %v, want %v", got.Numerator.Value, tt.numerator)
			}
			if got.Denominator.Value != tt.denominator {
				t.Errorf("denominator = %v, want %v", got.Denominator.Value, tt.denominator)
			}
			if got.Cycle() != tt.cycle {
				t.Errorf("cycle = %d, want %d", got.Cycle(), tt.cycle)
			}
			if got.Sign() != tt.sign {
				t.Errorf("sign = %d, want %d", got.Sign(), tt.sign)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"no slash", "23", ErrMalformedFraction},
		{"two slashes", "1/2/3", ErrMalformedFraction},
		{"empty", "", ErrMalformedFraction},
		{"empty numerator", "/3", ErrMalformedNumber},
		{"empty denominator", "1/", ErrMalformedNumber},
		{"junk numerator", "x/3", ErrMalformedNumber},
		{"bad unit", "1banana/3", ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.input)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFraction_Text(t *testing.T) {
	f := MustParse("2/3")
	if got := f.Text(); got != "(2/3)" {
		t.Errorf("Text() = %q, want (2/3)", got)
	}

	n := MustParse("-1/4")
	if got := n.Text(); got != "(-1/4)" {
		t.Errorf("Text() = %q, want (-1/4)", got)
	}
	if got := n.AbsText(); got != "(1/4)" {
		t.Errorf("AbsText() = %q, want (1/4)", got)
	}
	if got := n.String(); got != "-1/4" {
		t.Errorf("String() = %q, want -1/4", got)
	}
}
