// Package css holds a small stylesheet model: enough structure to merge
// a user-supplied base sheet with generated grid rules and to write the
// result back out. Unlike a general CSS object model it preserves rule
// and declaration order, which the nth-child cycle rules depend on.
package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single property: value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a selector with its ordered declarations.
type Rule struct {
	Selector string
	Decls    []Declaration
}

// Get returns the value of the last declaration for a property.
func (r Rule) Get(property string) (string, bool) {
	for i := len(r.Decls) - 1; i >= 0; i-- {
		if r.Decls[i].Property == property {
			return r.Decls[i].Value, true
		}
	}
	return "", false
}

// MediaBlock is a @media block with its nested rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// Item is a single top-level stylesheet item. Exactly one field is set.
type Item struct {
	Rule       *Rule
	MediaBlock *MediaBlock
	Comment    string
}

// Stylesheet is an ordered sequence of top-level items.
type Stylesheet struct {
	Items    []Item
	Warnings []string
}

// Append adds rules at the end of the sheet.
func (s *Stylesheet) Append(rules ...Rule) {
	for i := range rules {
		r := rules[i]
		s.Items = append(s.Items, Item{Rule: &r})
	}
}

// AppendComment adds a standalone comment item.
func (s *Stylesheet) AppendComment(text string) {
	s.Items = append(s.Items, Item{Comment: text})
}

// AppendMedia adds a @media block.
func (s *Stylesheet) AppendMedia(query string, rules []Rule) {
	s.Items = append(s.Items, Item{MediaBlock: &MediaBlock{Query: query, Rules: rules}})
}

// Rules returns all top-level rules in source order, not descending
// into @media blocks.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

// RulesBySelector returns all top-level rules matching the selector.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing
// io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Comment != "":
			n, err = fmt.Fprintf(w, "/* %s */\n", item.Comment)
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// blank line between items, except after the last
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Decls {
		n, err = fmt.Fprintf(w, "%s  %s: %s;\n", indent, d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i], "  ")
		total += n
		if err != nil {
			return total, err
		}
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
