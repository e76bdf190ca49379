package frac

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter string
		expected  []string
	}{
		{"simple fraction", "a/b/c", "/", []string{"a", "b", "c"}},
		{"no delimiter occurrence", "abc", "/", []string{"abc"}},
		{"empty input", "", "/", []string{""}},
		{"leading delimiter", "/abc", "/", []string{"", "abc"}},
		{"trailing delimiter", "abc/", "/", []string{"abc", ""}},
		{"adjacent delimiters", "a//b", "/", []string{"a", "", "b"}},
		{"multi-char delimiter", "a--b--c", "--", []string{"a", "b", "c"}},
		{"explode", "2/3", "", []string{"2", "/", "3"}},
		{"explode empty", "", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input, tt.delimiter)
			if len(got) != len(tt.expected) {
				t.Fatalf("len = %d, want %d (%q)", len(got), len(tt.expected), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("element %d = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSplit_ExplodeRoundTrip(t *testing.T) {
	// Exploding a string of length n yields n elements which re-join
	// into the original string.
	for _, s := range []string{"", "a", "12.5px", "-1/4", "waffle"} {
		parts := Split(s, "")
		if len(parts) != len([]rune(s)) {
			t.Errorf("Split(%q, \"\") produced %d elements, want %d", s, len(parts), len([]rune(s)))
		}
		if joined := strings.Join(parts, ""); joined != s {
			t.Errorf("rejoined = %q, want %q", joined, s)
		}
	}
}

func TestSplit_ElementCount(t *testing.T) {
	// k non-overlapping occurrences of the delimiter always produce
	// exactly k+1 elements.
	tests := []struct {
		input string
		k     int
	}{
		{"a/b", 1},
		{"a/b/c/d", 3},
		{"///", 3},
		{"plain", 0},
	}
	for _, tt := range tests {
		if got := len(Split(tt.input, "/")); got != tt.k+1 {
			t.Errorf("Split(%q) produced %d elements, want %d", tt.input, got, tt.k+1)
		}
	}
}
