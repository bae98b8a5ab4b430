package cfguide

import "testing"

func TestSymbolsMintDistinctIDs(t *testing.T) {
	a := NewSymbol("factor", NonTerminal)
	b := NewSymbol("factor", NonTerminal)
	if a.Equals(b) {
		t.Errorf("symbols from distinct constructions must not be equal")
	}
	if !a.Equals(a) {
		t.Errorf("symbol equality must be reflexive")
	}
}

func TestSymbolEqualityCoversAllFields(t *testing.T) {
	a := NewSymbol("x", Terminal)
	same := &Symbol{Content: a.Content, Kind: a.Kind, ID: a.ID}
	if !a.Equals(same) {
		t.Errorf("equal content, kind and ID must compare equal")
	}
	otherKind := &Symbol{Content: a.Content, Kind: NonTerminal, ID: a.ID}
	if a.Equals(otherKind) {
		t.Errorf("kind must take part in equality")
	}
}

func TestEOSMarkers(t *testing.T) {
	eos := NewEOS()
	if !eos.IsEOS() || eos.Kind != Special || eos.Content != EOS {
		t.Errorf("unexpected ε-marker %v (%s)", eos, eos.Kind)
	}
	if NewEOS().Equals(NewEOS()) {
		t.Errorf("ε-markers must never be deduplicated")
	}
}
