/*
Package scanner tokenizes raw text against a compiled grammar's terminal
alphabet.

The admissible-terminal sets produced by package guide identify symbols;
drivers which receive whole strings from a generator first need to cut
them into lexemes matching the grammar's terminals. This package collects
every terminal literal and regex pattern of a compiled grammar and
compiles them into one DFA tokenizer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Martin Kestner

*/
package scanner

import (
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/mkestner/cfguide"
	"github.com/mkestner/cfguide/cfg"
)

// tracer traces with key 'cfguide.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cfguide.scanner")
}

// Token is one lexeme of generator output, classified against the
// grammar's terminal alphabet.
type Token struct {
	Kind    cfguide.SymbolKind // Terminal or Regex
	Content string             // the alphabet entry the lexeme matched
	Lexeme  string
	Start   int // offset of the first matched byte
	End     int // offset just behind the match
}

// alphabetEntry is one distinct terminal of a grammar.
type alphabetEntry struct {
	kind    cfguide.SymbolKind
	content string
}

// Adapter compiles a grammar's terminal alphabet into a DFA tokenizer.
type Adapter struct {
	Lexer *lexmachine.Lexer
}

// New creates an Adapter for a compiled grammar. Literal terminals are
// matched escaped, character by character; regex terminals use their
// pattern verbatim. Whitespace between lexemes is skipped.
//
// New will return an error if compiling the DFA failed.
func New(grammar cfg.Grammar) (*Adapter, error) {
	adapter := &Adapter{}
	adapter.Lexer = lexmachine.NewLexer()
	adapter.Lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	for _, entry := range alphabet(grammar) {
		pattern := entry.content
		if entry.kind == cfguide.Terminal {
			lit := strings.Trim(entry.content, `"`)
			pattern = "\\" + strings.Join(strings.Split(lit, ""), "\\")
		}
		adapter.Lexer.Add([]byte(pattern), makeToken(entry))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// alphabet walks every rule graph and collects the distinct terminal and
// regex symbols, rules in name order, symbols in walk order.
func alphabet(grammar cfg.Grammar) []alphabetEntry {
	names := make([]string, 0, len(grammar))
	for name := range grammar {
		names = append(names, name)
	}
	sort.Strings(names)

	var entries []alphabetEntry
	seen := make(map[alphabetEntry]bool)
	for _, name := range names {
		for _, sym := range cfg.Walk(grammar[name]) {
			if sym.Kind != cfguide.Terminal && sym.Kind != cfguide.Regex {
				continue
			}
			if sym.IsEOS() {
				continue
			}
			entry := alphabetEntry{kind: sym.Kind, content: sym.Content}
			if seen[entry] {
				continue
			}
			seen[entry] = true
			entries = append(entries, entry)
		}
	}
	return entries
}

// Scanner creates a scanner for a given input.
func (a *Adapter) Scanner(input string) (*Scanner, error) {
	s, err := a.Lexer.Scanner([]byte(input))
	if err != nil {
		return &Scanner{}, err
	}
	return &Scanner{scanner: s, Error: logError}, nil
}

// Scanner tokenizes one input string.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// Default error reporting function for grammar scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken returns the next lexeme, or done == true at end of input.
// Unconsumable input is reported through the error handler and skipped.
func (s *Scanner) NextToken() (tok Token, done bool) {
	t, err, eof := s.scanner.Next()
	for err != nil {
		s.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			s.scanner.TC = ui.FailTC
		}
		t, err, eof = s.scanner.Next()
	}
	if eof {
		return Token{}, true
	}
	return t.(Token), false
}

// skip is a lexer action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a lexer action which wraps a scanned match into a Token
// for one alphabet entry.
func makeToken(entry alphabetEntry) lexmachine.Action {
	return func(sc *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{
			Kind:    entry.kind,
			Content: entry.content,
			Lexeme:  string(m.Bytes),
			Start:   m.TC,
			End:     m.TC + len(m.Bytes),
		}, nil
	}
}
