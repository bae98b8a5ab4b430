package symset

import (
	"bytes"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/mkestner/cfguide"
)

// Set is an insertion-ordered set of symbols. Membership is by *Symbol
// pointer: two Symbol values with equal content, kind and ID at distinct
// addresses are distinct members. Symbols of equal content minted by
// separate NewSymbol calls are therefore always distinct. The zero value
// is not usable; create sets with New.
//
// Set is a thin wrapper over a linked hash map with unit values.
type Set struct {
	m *linkedhashmap.Map
}

// New creates a Set holding the given symbols, in argument order.
func New(symbols ...*cfguide.Symbol) *Set {
	s := &Set{m: linkedhashmap.New()}
	for _, sym := range symbols {
		s.Add(sym)
	}
	return s
}

// Add inserts a symbol. Re-adding a member is a no-op and keeps its
// original position.
func (s *Set) Add(sym *cfguide.Symbol) {
	if _, ok := s.m.Get(sym); ok {
		return
	}
	s.m.Put(sym, struct{}{})
}

// Discard removes a symbol if present.
func (s *Set) Discard(sym *cfguide.Symbol) {
	s.m.Remove(sym)
}

// Contains checks membership.
func (s *Set) Contains(sym *cfguide.Symbol) bool {
	_, ok := s.m.Get(sym)
	return ok
}

// Size returns the number of members.
func (s *Set) Size() int {
	return s.m.Size()
}

// Empty is true for sets without members.
func (s *Set) Empty() bool {
	return s.m.Empty()
}

// Values returns the members in insertion order.
func (s *Set) Values() []*cfguide.Symbol {
	keys := s.m.Keys()
	syms := make([]*cfguide.Symbol, len(keys))
	for i, k := range keys {
		syms[i] = k.(*cfguide.Symbol)
	}
	return syms
}

// Each calls f for every member, in insertion order.
func (s *Set) Each(f func(*cfguide.Symbol)) {
	it := s.m.Iterator()
	for it.Next() {
		f(it.Key().(*cfguide.Symbol))
	}
}

// Extend appends the members of other which s does not already hold,
// preserving left order. It returns s.
func (s *Set) Extend(other *Set) *Set {
	if other == nil {
		return s
	}
	other.Each(func(sym *cfguide.Symbol) {
		s.Add(sym)
	})
	return s
}

// Union returns a new set holding the members of s, then the members of
// other not already present, each group in insertion order.
func (s *Set) Union(other *Set) *Set {
	out := s.Copy()
	return out.Extend(other)
}

// Copy returns a shallow copy: a fresh container over the same symbols.
func (s *Set) Copy() *Set {
	out := New()
	s.Each(func(sym *cfguide.Symbol) {
		out.Add(sym)
	})
	return out
}

// Equals compares two sets structurally, order included.
func (s *Set) Equals(other *Set) bool {
	if other == nil || s.Size() != other.Size() {
		return false
	}
	a, b := s.Values(), other.Values()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s *Set) String() string {
	var buf bytes.Buffer
	buf.WriteString("{")
	first := true
	s.Each(func(sym *cfguide.Symbol) {
		if first {
			buf.WriteString(" ")
			first = false
		} else {
			buf.WriteString(", ")
		}
		buf.WriteString(sym.String())
	})
	buf.WriteString(" }")
	return buf.String()
}
