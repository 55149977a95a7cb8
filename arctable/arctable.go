package arctable

// Table is a frozen transducer graph stored in two flat arrays.
// - States are indices into Nodes. The start state is Start; the value -1
//   is the reserved terminal sentinel and never indexes the table.
// - The arc records of state s live in Recs[Nodes[s].Lo:Nodes[s].Hi].
// - Sequential layout (Direct == false): the range holds exactly the real
//   arcs of s, in ascending label order.
// - Direct-addressed layout (Direct == true): the range is a label window.
//   The arc labelled c sits at Recs[Lo + (c - MinLabel)]; unoccupied slots
//   carry Label -1. The first and the last slot of a window are always
//   occupied, so Lo is the smallest and Hi-1 the largest label of s.
//
// Outputs:
//   - per-arc outputs and the final output of the arc's destination are
//     stored on the record;
//   - the final output of a state itself lives on its Node (FinalOut).
//     Builders mirror it onto incoming records when they freeze.
//
// A Table is plain data: no methods mutate it, and once built it may be
// shared between goroutines without synchronization.
type Table[T any] struct {
	// Start is the index of the start state (commonly 0).
	Start int32

	// Nodes holds one record per state.
	Nodes []Node[T]

	// Recs holds the arc records of all states, grouped per state.
	Recs []Rec[T]
}

// Node describes one state: finality, layout, and its arc range in Recs.
type Node[T any] struct {
	Lo, Hi   int32 // arc record range [Lo,Hi) in Recs
	MinLabel int32 // label of slot Lo when Direct is set
	Final    bool  // state accepts end of input
	Direct   bool  // direct-addressed arc layout
	FinalOut T     // output attached to acceptance at this state
}

// Rec is one arc record. In a direct window an unoccupied slot has
// Label -1; such slots are never returned by the query methods.
type Rec[T any] struct {
	Label    int32 // input symbol, or -1 for an empty direct slot
	Target   int32 // destination state, or -1 for the terminal sentinel
	Final    bool  // destination accepts end of input
	Out      T     // output of this arc
	FinalOut T     // final output of the destination, valid if Final
}

// NStates returns the number of states in the table.
func (t *Table[T]) NStates() int { return len(t.Nodes) }

// NSlots returns the number of arc records, empty direct slots included.
func (t *Table[T]) NSlots() int { return len(t.Recs) }

// Arity returns the number of real arcs of state s.
func (t *Table[T]) Arity(s int32) int {
	n := &t.Nodes[s]
	if !n.Direct {
		return int(n.Hi - n.Lo)
	}
	arity := 0
	for i := n.Lo; i < n.Hi; i++ {
		if t.Recs[i].Label >= 0 {
			arity++
		}
	}
	return arity
}

// Find returns the record index of state s's arc labelled c, or -1 if s
// has no such arc. Direct windows are probed in constant time, sequential
// ranges scanned with an early exit on the sort order.
func (t *Table[T]) Find(s int32, c int32) int32 {
	n := &t.Nodes[s]
	if n.Direct {
		slot := n.Lo + (c - n.MinLabel)
		if slot < n.Lo || slot >= n.Hi || t.Recs[slot].Label != c {
			return -1
		}
		return slot
	}
	for i := n.Lo; i < n.Hi; i++ {
		switch rec := &t.Recs[i]; {
		case rec.Label == c:
			return i
		case rec.Label > c:
			return -1
		}
	}
	return -1
}

// FirstSlot returns the record index of state s's first arc, or -1 if the
// state has none.
func (t *Table[T]) FirstSlot(s int32) int32 {
	n := &t.Nodes[s]
	if n.Lo == n.Hi {
		return -1
	}
	return n.Lo
}

// NextSlot returns the record index of the arc following slot within
// state s, skipping empty direct slots, or -1 past the last arc.
func (t *Table[T]) NextSlot(s int32, slot int32) int32 {
	n := &t.Nodes[s]
	for i := slot + 1; i < n.Hi; i++ {
		if t.Recs[i].Label >= 0 {
			return i
		}
	}
	return -1
}

// LastSlot reports whether slot holds the last arc of state s.
func (t *Table[T]) LastSlot(s int32, slot int32) bool {
	return slot == t.Nodes[s].Hi-1
}
