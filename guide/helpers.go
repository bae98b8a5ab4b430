package guide

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mkestner/cfguide"
)

// ParsingError reports a symbol of an unexpected kind where only
// terminals or regex terminals are valid.
type ParsingError struct {
	Kind cfguide.SymbolKind
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("%s is invalid, only %s or %s are valid.",
		e.Kind, cfguide.Terminal, cfguide.Regex)
}

// TerminalsPattern compiles the admissible symbols into a single
// alternation pattern `((a)|(b)|…)`, suitable for samplers which mask
// generation with one regex. Terminal literals are escaped verbatim,
// including their quotes; regex contents are taken as-is.
func TerminalsPattern(symbols []*cfguide.Symbol) (string, error) {
	patterns := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		switch sym.Kind {
		case cfguide.Terminal:
			patterns = append(patterns, "("+regexp.QuoteMeta(sym.Content)+")")
		case cfguide.Regex:
			patterns = append(patterns, "("+sym.Content+")")
		default:
			return "", &ParsingError{Kind: sym.Kind}
		}
	}
	return "(" + strings.Join(patterns, "|") + ")", nil
}

// fullMatch reports whether pattern matches the whole of s.
func fullMatch(pattern, s string) (bool, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// Retrace maps the lexeme a generator actually emitted back onto one of
// the admissible symbols of a step: terminal contents must match exactly
// (quotes included), regex symbols must match the whole lexeme. When the
// lexeme fits several symbols on different paths, a warning is traced and
// one is picked with equal probability.
func (g *Guide) Retrace(lexeme string, res *Result) (*cfguide.Symbol, error) {
	var matches []*cfguide.Symbol

	for _, sym := range res.Terminals() {
		switch sym.Kind {
		case cfguide.Regex:
			ok, err := fullMatch(sym.Content, lexeme)
			if err != nil {
				return nil, err
			}
			if ok {
				matches = append(matches, sym)
			}
		case cfguide.Terminal:
			if sym.Content == lexeme {
				matches = append(matches, sym)
			}
		default:
			return nil, &ParsingError{Kind: sym.Kind}
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no admissible terminal matches %q", lexeme)
	}
	if len(matches) > 1 {
		tracer().Infof("Chosen symbol present in multiple paths, one will be picked with equal probability.")
		return matches[g.rnd.Intn(len(matches))], nil
	}
	return matches[0], nil
}
