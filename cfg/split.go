package cfg

import (
	"fmt"
	"strings"
)

// splitGrammar divides a multiline grammar source into name → definition
// pairs. A rule line has the form `name : rhs`; a line without a colon
// continues the most recent rule. Returned rule names preserve source
// order.
func splitGrammar(source string) (map[string]string, []string, error) {
	rules := make(map[string]string)
	var order []string
	currentRule := ""

	for _, line := range strings.Split(strings.TrimSpace(source), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !strings.Contains(line, ":") {
			if currentRule == "" {
				return nil, nil, &InvalidGrammarError{
					Message: fmt.Sprintf("Missing ':' in '%s'", line),
				}
			}
			rules[currentRule] += " " + line
			continue
		}

		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			return nil, nil, &InvalidGrammarError{
				Message: fmt.Sprintf("Invalid grammar rule: %s", line),
			}
		}

		name := strings.TrimSpace(parts[0])
		if !IsNonTerminalName(name) {
			return nil, nil, &InvalidGrammarError{
				Message: fmt.Sprintf("Invalid rule name: %s", name),
			}
		}
		if _, ok := rules[name]; ok {
			return nil, nil, &InvalidGrammarError{
				Message: fmt.Sprintf("Redefinition of grammar rule: %s", line),
			}
		}

		currentRule = name
		rules[name] = strings.TrimSpace(parts[1])
		order = append(order, name)
	}

	if _, ok := rules[StartRule]; !ok {
		return nil, nil, &InvalidGrammarError{
			Message: "The symbol 'start' is non-existant.",
		}
	}

	return rules, order, nil
}
