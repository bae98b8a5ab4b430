package cfg

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func expectGrammarError(t *testing.T, source string, fragment string) {
	t.Helper()
	_, _, err := splitGrammar(source)
	var invalid *InvalidGrammarError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected an invalid-grammar error, got %v", err)
	}
	if !strings.Contains(invalid.Message, fragment) {
		t.Errorf("expected %q in message, got %q", fragment, invalid.Message)
	}
}

func TestSplitSimpleGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	rules, order, err := splitGrammar(`
start : expression
expression : term ("+" term)
term : Regex("[0-9]+")
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	expectList(t, order, "start", "expression", "term")
	if rules["start"] != "expression" {
		t.Errorf("unexpected rhs for start: %q", rules["start"])
	}
}

func TestSplitContinuationLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	rules, _, err := splitGrammar(`
start : factor "+"
  | factor "-"

factor : Regex("[0-9]+")
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rules["start"] != `factor "+" | factor "-"` {
		t.Errorf("continuation lines must append with a space, got %q", rules["start"])
	}
}

func TestSplitMissingStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	expectGrammarError(t, `expression : term`, "The symbol 'start' is non-existant.")
}

func TestSplitMissingColon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	expectGrammarError(t, `expression term`, "Missing ':'")
}

func TestSplitMultipleColons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	expectGrammarError(t, `start : a : b`, "Invalid grammar rule:")
}

func TestSplitRedefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	expectGrammarError(t, `
start : a
a : "x"
a : "y"
`, "Redefinition of grammar rule:")
}

func TestSplitInvalidRuleName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	expectGrammarError(t, `
start : a
a@b : "x"
`, "Invalid rule name: a@b")
}

func TestCompileBuildsEveryRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	grammar, err := Compile(`
start : expression
expression : term ("+" term)
term : Regex("[0-9]+")
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"start", "expression", "term"} {
		g, ok := grammar[name]
		if !ok {
			t.Fatalf("rule %q missing from compiled grammar", name)
		}
		if g.Initials.Empty() || g.Finals.Empty() {
			t.Errorf("rule %q: incomplete graph %v", name, g)
		}
	}
}

func TestCompilePropagatesRuleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfguide.cfg")
	defer teardown()
	//
	_, err := Compile(`start : ( foo@bar )`)
	var invalid *InvalidSymbolError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected an invalid-symbol error, got %v", err)
	}
}
