package guide

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/mkestner/cfguide"
	"github.com/mkestner/cfguide/cfg"
	"github.com/mkestner/cfguide/symset"
)

// --- Derivation state ------------------------------------------------------

// Frame is one entry of the derivation stack: the graph of an active
// non-terminal plus the cursor within it. A nil cursor means the frame is
// about to consume from the graph's entry points; otherwise successors
// come from the cursor's adjacency.
type Frame struct {
	Graph  *cfg.SymbolGraph
	Label  string
	Cursor *cfguide.Symbol
}

// Derivation is the ordered stack of frames representing how the
// generator arrived at the current point. The stack bottom is always the
// start frame.
type Derivation struct {
	frames []*Frame
}

// Depth returns the number of active frames.
func (d *Derivation) Depth() int {
	return len(d.frames)
}

// Labels returns the frame labels, bottom first.
func (d *Derivation) Labels() []string {
	labels := make([]string, len(d.frames))
	for i, f := range d.frames {
		labels[i] = f.Label
	}
	return labels
}

// Clone copies the stack. Frames are small records; the graphs they point
// to are shared read-only, so cloning is cheap.
func (d *Derivation) Clone() *Derivation {
	frames := make([]*Frame, len(d.frames))
	for i, f := range d.frames {
		frames[i] = &Frame{Graph: f.Graph, Label: f.Label, Cursor: f.Cursor}
	}
	return &Derivation{frames: frames}
}

// Signature returns a structural hash over the stack: frame labels plus
// cursor identities. Two states with equal signatures continue the
// derivation identically.
func (d *Derivation) Signature() string {
	type frameKey struct {
		Label  string
		Cursor string
	}
	keys := make([]frameKey, len(d.frames))
	for i, f := range d.frames {
		k := frameKey{Label: f.Label}
		if f.Cursor != nil {
			k.Cursor = f.Cursor.ID.String()
		}
		keys[i] = k
	}
	hash, err := structhash.Hash(keys, 1)
	if err != nil {
		panic(fmt.Sprintf("cannot hash derivation state: %v", err))
	}
	return hash
}

func (d *Derivation) top() *Frame {
	return d.frames[len(d.frames)-1]
}

func (d *Derivation) push(f *Frame) {
	d.frames = append(d.frames, f)
}

func (d *Derivation) pop() {
	d.frames = d.frames[:len(d.frames)-1]
}

// loopChain renders the frame labels as a cycle, for warnings.
func (d *Derivation) loopChain() string {
	labels := d.Labels()
	return strings.Join(labels, " ->") + " ->" + labels[0]
}

// --- Step results ----------------------------------------------------------

// Result is the outcome of one guide step: an ordered mapping from each
// admissible next terminal to the derivation state at the point of that
// terminal. Iteration order is the order terminals were first
// encountered.
type Result struct {
	m *linkedhashmap.Map
}

func newResult() *Result {
	return &Result{m: linkedhashmap.New()}
}

// Terminals returns the admissible symbols in encounter order.
func (r *Result) Terminals() []*cfguide.Symbol {
	keys := r.m.Keys()
	syms := make([]*cfguide.Symbol, len(keys))
	for i, k := range keys {
		syms[i] = k.(*cfguide.Symbol)
	}
	return syms
}

// State returns the derivation state recorded for sym.
func (r *Result) State(sym *cfguide.Symbol) (*Derivation, bool) {
	v, ok := r.m.Get(sym)
	if !ok {
		return nil, false
	}
	return v.(*Derivation), true
}

// Len returns the number of admissible terminals.
func (r *Result) Len() int {
	return r.m.Size()
}

// Empty is true when no terminal is admissible: the derivation has ended.
func (r *Result) Empty() bool {
	return r.m.Empty()
}

func (r *Result) put(sym *cfguide.Symbol, state *Derivation) {
	r.m.Put(sym, state)
}

// --- Guide -----------------------------------------------------------------

// Guide walks a compiled grammar, enumerating admissible next terminals
// per derivation step. Create one with New, then call NextTerminals with
// (nil, nil) for the initial step and with a recorded state plus the
// chosen terminal afterwards.
type Guide struct {
	grammar cfg.Grammar
	rnd     *rand.Rand
}

// Option configures a Guide.
type Option func(*Guide)

// WithRandom sets the random source used to break ties when a lexeme
// matches several admissible symbols. Seed it for deterministic tests.
func WithRandom(rnd *rand.Rand) Option {
	return func(g *Guide) {
		g.rnd = rnd
	}
}

// New compiles a grammar source and creates a Guide for it.
func New(source string, opts ...Option) (*Guide, error) {
	grammar, err := cfg.Compile(source)
	if err != nil {
		return nil, err
	}
	return NewFromGrammar(grammar, opts...), nil
}

// NewFromGrammar creates a Guide over an already compiled grammar.
func NewFromGrammar(grammar cfg.Grammar, opts ...Option) *Guide {
	g := &Guide{
		grammar: grammar,
		rnd:     rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Grammar returns the compiled grammar the guide walks.
func (g *Guide) Grammar() cfg.Grammar {
	return g.grammar
}

// NextTerminals performs one guide step. For the initial call pass both
// arguments nil; for subsequent calls pass a state recorded in a prior
// Result plus the terminal the caller committed to. The input state is
// not mutated.
func (g *Guide) NextTerminals(state *Derivation, chosen *cfguide.Symbol) (*Result, error) {
	res := newResult()

	if state == nil {
		if chosen != nil {
			return nil, errors.New("derivation state is nil while chosen symbol is not")
		}
		start, ok := g.grammar[cfg.StartRule]
		if !ok {
			return nil, errors.New("grammar has no start rule")
		}
		fresh := &Derivation{frames: []*Frame{{Graph: start, Label: cfg.StartRule}}}
		g.step(fresh, nil, res, nil)
		return res, nil
	}

	g.step(state.Clone(), chosen, res, nil)
	return res, nil
}

// step advances one frame stack. path holds the non-terminal graph
// nodes entered during the current enumeration; no terminal is consumed
// within a single step, so reaching the same node twice closes a
// non-terminal cycle. Distinct occurrences of one rule in a definition
// carry distinct node identities and do not trip the check.
func (g *Guide) step(st *Derivation, chosen *cfguide.Symbol, res *Result, path map[*cfguide.Symbol]bool) {
	if g.closesCycle(st) {
		tracer().Infof("A loop of non-terminal symbols is found %s, path will be ignored.", st.loopChain())
		return
	}

	if chosen == nil {
		top := st.top()
		var succs *symset.Set
		if top.Cursor == nil {
			succs = top.Graph.Initials
		} else {
			succs = top.Graph.Nodes.Successors(top.Cursor)
		}
		// Successors come up empty at the end of a rule graph: either
		// the frame just popped back onto a finished non-terminal, or
		// the rule consists of a single symbol.
		if succs.Empty() {
			st.pop()
			if st.Depth() == 0 {
				return
			}
			g.step(st, nil, res, path)
			return
		}
		g.fanOut(st, succs, res, path)
		return
	}

	if chosen.IsEOS() {
		st.pop()
		if st.Depth() == 0 {
			return
		}
		g.step(st, nil, res, path)
		return
	}

	top := st.top()
	succs := top.Graph.Nodes.Successors(chosen)
	if succs.Empty() {
		st.pop()
		if st.Depth() == 0 {
			return
		}
		g.step(st, nil, res, path)
		return
	}
	top.Cursor = chosen

	g.fanOut(st, succs, res, path)
}

// fanOut processes one successor set: ε-markers skip the current frame,
// terminals are recorded with a state clone, non-terminals push a new
// frame and descend. DFS order over the ordered successor set determines
// the result's iteration order.
func (g *Guide) fanOut(st *Derivation, succs *symset.Set, res *Result, path map[*cfguide.Symbol]bool) {
	succs.Each(func(s *cfguide.Symbol) {
		switch {
		case s.IsEOS():
			next := st.Clone()
			next.pop()
			if next.Depth() == 0 {
				return
			}
			g.step(next, nil, res, path)

		case s.Kind == cfguide.NonTerminal:
			if path[s] {
				tracer().Infof("A loop of non-terminal symbols is found %s ->%s, path will be ignored.",
					strings.Join(st.Labels(), " ->"), s.Content)
				return
			}
			rule, ok := g.grammar[s.Content]
			if !ok {
				panic(&cfg.SymbolNotFoundError{
					Message: "No grammar rule for non-terminal " + s.Content + " was found.",
				})
			}
			next := st.Clone()
			// remember the resumption point before descending
			next.top().Cursor = s
			next.push(&Frame{Graph: rule, Label: s.Content})
			g.step(next, nil, res, extendPath(path, s))

		default:
			res.put(s, st.Clone())
		}
	})
}

// closesCycle implements the stack-level cycle test: the top frame
// revisits the bottom frame's rule.
func (g *Guide) closesCycle(st *Derivation) bool {
	if st.Depth() > 1 {
		return st.top().Label == st.frames[0].Label
	}
	return false
}

func extendPath(path map[*cfguide.Symbol]bool, sym *cfguide.Symbol) map[*cfguide.Symbol]bool {
	next := make(map[*cfguide.Symbol]bool, len(path)+1)
	for k := range path {
		next[k] = true
	}
	next[sym] = true
	return next
}
