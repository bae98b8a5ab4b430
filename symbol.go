package cfguide

import (
	"fmt"

	"github.com/google/uuid"
)

// --- Symbols ---------------------------------------------------------------

// SymbolKind is a category type for grammar symbols.
type SymbolKind int8

// Symbol categories. Terminals carry their quoted literal as content,
// regex symbols carry the raw (unquoted) pattern, special symbols are
// reserved for ε-markers and structural tokens.
const (
	Terminal SymbolKind = iota + 1
	NonTerminal
	Regex
	Special
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	case Regex:
		return "regex"
	case Special:
		return "special"
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// EOS is the content of ε-marker symbols. An ε-marker among a graph's
// entry points means the whole graph may be skipped; among its exit
// points it means the graph terminates without consuming further input.
const EOS = "EOS_SYMBOL"

// Symbol is a node of a symbol graph. The same surface symbol may occur
// more than once in a rule and must stay distinguishable, therefore every
// Symbol carries a fresh unique ID, minted at construction. Two Symbols
// with identical content and kind but distinct IDs are not equal.
type Symbol struct {
	Content string
	Kind    SymbolKind
	ID      uuid.UUID
}

// NewSymbol mints a Symbol with a fresh ID. Kind classification is up to
// the caller.
func NewSymbol(content string, kind SymbolKind) *Symbol {
	return &Symbol{
		Content: content,
		Kind:    kind,
		ID:      uuid.New(),
	}
}

// NewEOS mints a fresh ε-marker. ε-markers are never deduplicated across
// casts; they are told apart by ID.
func NewEOS() *Symbol {
	return NewSymbol(EOS, Special)
}

// IsEOS is true for ε-markers.
func (s *Symbol) IsEOS() bool {
	return s != nil && s.Content == EOS
}

// Equals checks component-wise equality over content, kind and ID.
func (s *Symbol) Equals(other *Symbol) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Content == other.Content && s.Kind == other.Kind && s.ID == other.ID
}

func (s *Symbol) String() string {
	if s == nil {
		return "<none>"
	}
	return s.Content
}
