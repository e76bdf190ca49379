// Package frac parses fraction strings such as "2/3" or "-1/4" into
// typed numerator/denominator pairs. Splitting and string-to-number
// coercion are single-pass and deliberately lax; the expression
// builders in calc rely on the exact edge-case policy, so it is pinned
// by tests rather than delegated to stdlib parsing.
package frac

import "strings"

// Split breaks input into the ordered sequence of substrings separated
// by delimiter. An empty delimiter explodes input into its characters.
// A delimiter occurring k times non-overlapping yields exactly k+1
// elements, so the result is never empty.
func Split(input, delimiter string) []string {
	if delimiter == "" {
		out := make([]string, 0, len(input))
		for _, r := range input {
			out = append(out, string(r))
		}
		return out
	}

	var out []string
	for {
		i := strings.Index(input, delimiter)
		if i < 0 {
			return append(out, input)
		}
		out = append(out, input[:i])
		input = input[i+len(delimiter):]
	}
}
