package fst

import (
	"fmt"

	"github.com/npillmayer/fst/arctable"
)

// MemStore is the reference Automaton implementation: an in-memory
// transducer built by unsorted insertion and compiled by Freeze into a
// flat arc table with per-state layouts. It is mutable while loading and
// read-only afterwards; a frozen store may be shared between goroutines.
//
// Traversal works in both phases. Before Freeze arcs appear in insertion
// order, afterwards in ascending label order; the direct-addressed layout
// only exists after Freeze.
type MemStore[T comparable] struct {
	frozen  bool
	outs    Outputs[T]
	builder BuilderOutputs[T] // insert-time algebra; nil on table-backed stores
	nodes   []buildNode[T]    // build phase graph, indexed by State
	table   *arctable.Table[T]
	keys    int
	scratch []Label
	stats   StoreStats

	Identifier string // identifies the transducer in logs and dumps
}

type buildNode[T comparable] struct {
	arcs     []buildArc[T]
	final    bool
	finalOut T
}

type buildArc[T comparable] struct {
	label  Label
	out    T
	target int32
}

// NewMemStore returns an empty mutable store over the given output
// algebra. The algebra's prefix operations (Common, Subtract) are used to
// spread outputs over shared key prefixes during insertion.
func NewMemStore[T comparable](outs BuilderOutputs[T]) *MemStore[T] {
	st := &MemStore[T]{outs: outs, builder: outs}
	st.nodes = append(st.nodes, buildNode[T]{finalOut: outs.NoOutput()})
	return st
}

// FromTable wraps an existing arc table as a frozen store. The table is
// trusted to satisfy the layout invariants documented in package arctable.
func FromTable[T comparable](table *arctable.Table[T], outs Outputs[T]) *MemStore[T] {
	st := &MemStore[T]{frozen: true, outs: outs, table: table}
	st.stats = StoreStats{
		States:     table.NStates(),
		TotalSlots: table.NSlots(),
	}
	for s := range table.Nodes {
		n := &table.Nodes[s]
		st.stats.Arcs += table.Arity(int32(s))
		if n.Direct {
			st.stats.DirectStates++
		}
	}
	return st
}

// Insert adds key with the given output value. Keys may arrive in any
// order: outputs are redistributed over shared prefixes so that the
// algebra sum along every accepted path stays intact. The empty key marks
// the start state accepting. Duplicate keys and inserts after Freeze are
// errors.
func (st *MemStore[T]) Insert(key []Label, value T) error {
	if st.frozen {
		return fmt.Errorf("store is frozen")
	}
	for _, sym := range key {
		if sym.IsEndOfInput() {
			return fmt.Errorf("key contains a reserved negative symbol")
		}
	}
	noOutput := st.outs.NoOutput()
	remaining := value
	node := int32(0)
	for _, sym := range key {
		if idx := st.findBuildArc(node, sym); idx >= 0 {
			arc := &st.nodes[node].arcs[idx]
			common := st.builder.Common(arc.out, remaining)
			if rest := st.builder.Subtract(arc.out, common); rest != noOutput {
				st.pushDown(arc.target, rest)
			}
			arc.out = common
			remaining = st.builder.Subtract(remaining, common)
			node = arc.target
		} else {
			target := int32(len(st.nodes))
			st.nodes = append(st.nodes, buildNode[T]{finalOut: noOutput})
			st.nodes[node].arcs = append(st.nodes[node].arcs, buildArc[T]{
				label:  sym,
				out:    remaining,
				target: target,
			})
			remaining = noOutput
			node = target
		}
	}
	n := &st.nodes[node]
	if n.final {
		return fmt.Errorf("duplicate key")
	}
	n.final = true
	n.finalOut = remaining
	st.keys++
	return nil
}

// InsertString is Insert over the Unicode code points of key.
func (st *MemStore[T]) InsertString(key string, value T) error {
	st.scratch = EncodeString(st.scratch, key)
	return st.Insert(st.scratch, value)
}

// pushDown moves a pending output below node: every outgoing arc and the
// node's own acceptance absorb rest as a prefix. Path sums are unchanged.
func (st *MemStore[T]) pushDown(node int32, rest T) {
	n := &st.nodes[node]
	for i := range n.arcs {
		n.arcs[i].out = st.builder.Add(rest, n.arcs[i].out)
	}
	if n.final {
		n.finalOut = st.builder.Add(rest, n.finalOut)
	}
}

func (st *MemStore[T]) findBuildArc(node int32, label Label) int {
	arcs := st.nodes[node].arcs
	for i := range arcs {
		if arcs[i].label == label {
			return i
		}
	}
	return -1
}

// --- Cursor operations -----------------------------------------------------

// StartArc positions arc on the virtual transition into the start state.
func (st *MemStore[T]) StartArc(arc *Arc[T]) *Arc[T] {
	start := st.startState()
	final, finalOut := st.nodeFinal(start)
	arc.Label = EndOfInput
	arc.Output = st.outs.NoOutput()
	arc.Target = start
	arc.Final = final
	arc.NextFinalOutput = finalOut
	arc.Last = true
	arc.From = Terminal
	arc.Slot = -1
	return arc
}

// FirstArc positions arc on the first transition out of follow's target;
// for an accepting target this is the synthetic EndOfInput arc.
func (st *MemStore[T]) FirstArc(follow, arc *Arc[T]) *Arc[T] {
	if follow.Final {
		st.endArc(follow.Target, follow.NextFinalOutput, st.TargetHasArcs(follow), arc)
		return arc
	}
	target := follow.Target
	assert(!target.IsTerminal(), "terminal state has no arcs")
	slot := st.firstSlot(target)
	assert(slot >= 0, "state has no arcs; check TargetHasArcs first")
	st.fillArc(target, slot, arc)
	return arc
}

// NextArc advances arc to the next transition of the same state.
func (st *MemStore[T]) NextArc(arc *Arc[T]) *Arc[T] {
	assert(!arc.Last, "cannot advance past the last arc")
	if arc.Slot < 0 {
		// Leaving the synthetic EndOfInput arc: resume at the state's
		// first real arc.
		slot := st.firstSlot(arc.From)
		assert(slot >= 0, "accepting state advertised arcs it does not have")
		st.fillArc(arc.From, slot, arc)
		return arc
	}
	next := -1
	if st.frozen {
		next = int(st.table.NextSlot(int32(arc.From), int32(arc.Slot)))
	} else if arc.Slot+1 < len(st.nodes[arc.From].arcs) {
		next = arc.Slot + 1
	}
	assert(next >= 0, "arc enumeration ran past the last arc")
	st.fillArc(arc.From, next, arc)
	return arc
}

// FindArc positions arc on follow's target's transition carrying label,
// reporting false if there is none. follow and arc may be the same cursor.
func (st *MemStore[T]) FindArc(label Label, follow, arc *Arc[T]) bool {
	if label.IsEndOfInput() {
		if !follow.Final {
			return false
		}
		st.endArc(follow.Target, follow.NextFinalOutput, st.TargetHasArcs(follow), arc)
		return true
	}
	target := follow.Target
	if target.IsTerminal() {
		return false
	}
	slot := -1
	if st.frozen {
		slot = int(st.table.Find(int32(target), int32(label)))
	} else {
		slot = st.findBuildArc(int32(target), label)
	}
	if slot < 0 {
		return false
	}
	st.fillArc(target, slot, arc)
	return true
}

// TargetHasArcs reports whether follow's target has outgoing transitions;
// the synthetic EndOfInput arc does not count.
func (st *MemStore[T]) TargetHasArcs(follow *Arc[T]) bool {
	if follow.Target.IsTerminal() {
		return false
	}
	if st.frozen {
		return st.table.FirstSlot(int32(follow.Target)) >= 0
	}
	return len(st.nodes[follow.Target].arcs) > 0
}

// ExpandedTarget reports whether follow's target uses the
// direct-addressed layout. Always false before Freeze.
func (st *MemStore[T]) ExpandedTarget(follow *Arc[T]) bool {
	if !st.frozen || follow.Target.IsTerminal() {
		return false
	}
	return st.table.Nodes[follow.Target].Direct
}

// Outputs returns the store's output algebra.
func (st *MemStore[T]) Outputs() Outputs[T] { return st.outs }

// --- Cursor plumbing -------------------------------------------------------

func (st *MemStore[T]) startState() State {
	if st.frozen {
		return State(st.table.Start)
	}
	return 0
}

func (st *MemStore[T]) nodeFinal(s State) (bool, T) {
	if st.frozen {
		n := &st.table.Nodes[s]
		return n.Final, n.FinalOut
	}
	n := &st.nodes[s]
	return n.final, n.finalOut
}

func (st *MemStore[T]) firstSlot(s State) int {
	if st.frozen {
		return int(st.table.FirstSlot(int32(s)))
	}
	if len(st.nodes[s].arcs) == 0 {
		return -1
	}
	return 0
}

// fillArc loads the arc record at (s, slot) into the cursor. Slots are
// Recs indices on a frozen store and per-node arc indices before that.
func (st *MemStore[T]) fillArc(s State, slot int, arc *Arc[T]) {
	if st.frozen {
		rec := &st.table.Recs[slot]
		arc.Label = Label(rec.Label)
		arc.Output = rec.Out
		arc.Target = State(rec.Target)
		arc.Final = rec.Final
		arc.NextFinalOutput = rec.FinalOut
		arc.Last = st.table.LastSlot(int32(s), int32(slot))
		arc.From = s
		arc.Slot = slot
		return
	}
	a := &st.nodes[s].arcs[slot]
	final, finalOut := st.nodeFinal(State(a.target))
	arc.Label = a.label
	arc.Output = a.out
	arc.Target = State(a.target)
	arc.Final = final
	arc.NextFinalOutput = finalOut
	arc.Last = slot == len(st.nodes[s].arcs)-1
	arc.From = s
	arc.Slot = slot
}

// endArc loads the synthetic end-of-input transition of state s.
func (st *MemStore[T]) endArc(s State, finalOut T, hasArcs bool, arc *Arc[T]) {
	arc.Label = EndOfInput
	arc.Output = finalOut
	arc.Target = Terminal
	arc.Final = true
	arc.NextFinalOutput = st.outs.NoOutput()
	arc.Last = !hasArcs
	arc.From = s
	arc.Slot = -1
}

// --- Introspection ---------------------------------------------------------

func (st *MemStore[T]) String() string {
	return fmt.Sprintf("FST(states=%d,keys=%d,frozen=%v)", st.numStates(), st.keys, st.frozen)
}

func (st *MemStore[T]) numStates() int {
	if st.frozen {
		return st.table.NStates()
	}
	return len(st.nodes)
}

// NumKeys returns the number of keys inserted into this store.
func (st *MemStore[T]) NumKeys() int { return st.keys }

// Stats reports table metrics. Zero until the store is frozen.
func (st *MemStore[T]) Stats() StoreStats {
	if !st.frozen {
		return StoreStats{}
	}
	return st.stats
}
