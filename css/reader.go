package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Reader parses existing CSS text into the stylesheet model so that
// generated grid rules can be appended to a user's base sheet.
type Reader struct {
	log *zap.Logger
}

// NewReader creates a new CSS reader.
func NewReader(log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{log: log.Named("css-reader")}
}

// Read parses CSS text into a Stylesheet. The optional source parameter
// identifies what is being parsed for debug logging. Plain rulesets and
// @media blocks are kept; anything else is skipped with a warning so
// the caller can surface it.
func (r *Reader) Read(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		r.log.Debug("Reading CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// end of input or error
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				r.log.Debug("CSS parse error", zap.Error(err))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := string(data)
			if atRule == "@media" {
				query := joinTokens(parser.Values())
				rules := r.readBlockRules(parser)
				r.log.Debug("Read @media block", zap.String("query", query), zap.Int("rules", len(rules)))
				sheet.AppendMedia(query, rules)
			} else {
				r.skipAtRuleBlock(parser)
				sheet.Warnings = append(sheet.Warnings, "skipped at-rule: "+atRule)
				r.log.Debug("Skipping at-rule", zap.String("rule", atRule))
			}

		case css.AtRuleGrammar:
			// simple @-rule without a block (@import, @charset)
			atRule := string(data)
			sheet.Warnings = append(sheet.Warnings, "skipped at-rule: "+atRule)
			r.log.Debug("Skipping at-rule", zap.String("rule", atRule))

		case css.BeginRulesetGrammar:
			selector := selectorText(data, parser.Values())
			decls := r.readDeclarations(parser)
			sheet.Append(Rule{Selector: selector, Decls: decls})
		}
	}
}

// readDeclarations collects property declarations until the ruleset
// ends, preserving source order.
func (r *Reader) readDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			decls = append(decls, Declaration{
				Property: string(data),
				Value:    joinTokens(parser.Values()),
			})
		}
	}
}

// readBlockRules collects the rulesets nested in an @media block.
func (r *Reader) readBlockRules(parser *css.Parser) []Rule {
	var rules []Rule

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules

		case css.BeginRulesetGrammar:
			selector := selectorText(data, parser.Values())
			decls := r.readDeclarations(parser)
			rules = append(rules, Rule{Selector: selector, Decls: decls})
		}
	}
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (r *Reader) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// selectorText reconstructs the full selector from ruleset data and the
// pending value tokens.
func selectorText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}

// joinTokens rebuilds a value string from tokens, collapsing runs of
// whitespace into single spaces.
func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 && !strings.HasSuffix(parts[len(parts)-1], " ") {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
