package symset

import (
	"testing"

	"github.com/mkestner/cfguide"
)

func sym(content string) *cfguide.Symbol {
	return cfguide.NewSymbol(content, cfguide.NonTerminal)
}

func TestSetInsertionOrder(t *testing.T) {
	a, b, c := sym("a"), sym("b"), sym("c")
	s := New(b, a, c)
	want := []*cfguide.Symbol{b, a, c}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSetReAddKeepsPosition(t *testing.T) {
	a, b := sym("a"), sym("b")
	s := New(a, b)
	s.Add(a)
	if got := s.Values(); got[0] != a || got[1] != b || s.Size() != 2 {
		t.Errorf("re-adding a member must not move it: %v", s)
	}
}

func TestSetIdentityMembership(t *testing.T) {
	a1 := sym("a")
	a2 := sym("a") // same content, distinct ID
	s := New(a1)
	if s.Contains(a2) {
		t.Errorf("membership must be by identity, not content")
	}
	s.Add(a2)
	if s.Size() != 2 {
		t.Errorf("expected two distinct members, got %d", s.Size())
	}
}

func TestSetDiscard(t *testing.T) {
	a, b := sym("a"), sym("b")
	s := New(a, b)
	s.Discard(a)
	if s.Contains(a) || s.Size() != 1 {
		t.Errorf("discard failed: %v", s)
	}
	s.Discard(a) // discarding a non-member is a no-op
	if s.Size() != 1 {
		t.Errorf("discarding a non-member changed the set: %v", s)
	}
}

func TestSetExtendPreservesLeftOrder(t *testing.T) {
	a, b, c, d := sym("a"), sym("b"), sym("c"), sym("d")
	left := New(a, b, c)
	right := New(d, b)
	left.Extend(right)
	want := []*cfguide.Symbol{a, b, c, d}
	got := left.Values()
	if len(got) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestSetUnionLeavesOperandsUntouched(t *testing.T) {
	a, b, c := sym("a"), sym("b"), sym("c")
	left := New(a, b)
	right := New(c)
	out := left.Union(right)
	if out.Size() != 3 || left.Size() != 2 || right.Size() != 1 {
		t.Errorf("union must not modify its operands")
	}
}

func TestSetEqualsComparesOrder(t *testing.T) {
	a, b := sym("a"), sym("b")
	if !New(a, b).Equals(New(a, b)) {
		t.Errorf("expected sets with equal order to be equal")
	}
	if New(a, b).Equals(New(b, a)) {
		t.Errorf("sets with different order must not be equal")
	}
	if New(a).Equals(New(a, b)) {
		t.Errorf("sets of different size must not be equal")
	}
}
