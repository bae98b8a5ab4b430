package cfg

import (
	"fmt"
	"regexp"
	"strings"
)

// specialChars are the characters a non-terminal name must not contain.
var specialChars = regexp.MustCompile(`[@_!#$%^&*()<>?/\\|}~:]`)

func isTerminalToken(tok string) bool {
	return strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`)
}

func isRegexToken(tok string) bool {
	return strings.HasPrefix(tok, `Regex("`) && strings.HasSuffix(tok, `")`)
}

func isStructuralToken(tok string) bool {
	return len(tok) == 1 && strings.Contains(`()[]{}|`, tok)
}

// IsNonTerminalName checks the syntax of a non-terminal reference (and
// of rule names): no surrounding quotes, none of the special characters.
func IsNonTerminalName(tok string) bool {
	return tok != "" &&
		!strings.HasPrefix(tok, `"`) && !strings.HasSuffix(tok, `"`) &&
		!specialChars.MatchString(tok)
}

// isValidSymbol accepts a token iff it is a terminal literal, a
// non-terminal name, a regex literal, or a structural delimiter.
func isValidSymbol(tok string) bool {
	return isTerminalToken(tok) ||
		IsNonTerminalName(tok) ||
		isRegexToken(tok) ||
		isStructuralToken(tok)
}

func checkSymbolSyntax(tokens []string) error {
	for _, tok := range tokens {
		if !isValidSymbol(tok) {
			return &InvalidSymbolError{Symbol: tok}
		}
	}
	return nil
}

// checkDelimiters verifies delimiter balance with a position-tracking
// stack. Error messages quote the definition up to the offending token.
func checkDelimiters(tokens []string) error {
	type openDelim struct {
		index int
		token string
	}
	var stack []openDelim
	closerFor := map[string]string{")": "(", "]": "[", "}": "{"}

	for i, tok := range tokens {
		switch tok {
		case "(", "[", "{":
			stack = append(stack, openDelim{index: i, token: tok})
		case ")", "]", "}":
			if len(stack) == 0 || stack[len(stack)-1].token != closerFor[tok] {
				return &InvalidDelimitersError{
					Message: fmt.Sprintf("No opening delimiter `%s` found for `%s` in `%s <<%s>>`.",
						closerFor[tok], tok, strings.Join(tokens[:i], " "), tok),
				}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return &InvalidDelimitersError{
			Message: fmt.Sprintf("Non enclosed delimiter `%s` in `%s`.",
				top.token, strings.Join(tokens[:top.index+1], " ")),
		}
	}
	return nil
}

// checkTokens runs symbol syntax and delimiter checks on a token list.
func checkTokens(tokens []string) error {
	if err := checkSymbolSyntax(tokens); err != nil {
		return err
	}
	return checkDelimiters(tokens)
}
