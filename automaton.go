package fst

// Automaton is the capability set the traversal algorithms require from a
// transducer representation. All operations are follow-arc based: they
// inspect the target of an already positioned cursor and fill a second
// cursor (which may be the same one) with the result. Accepting states
// fold their end-of-input transition into the enumeration as a synthetic
// first arc labelled EndOfInput, so acceptance needs no side channel.
//
// Implementations are expected to be cheap per call and free of hidden
// allocation; the cursors carry all traversal state.
type Automaton[T comparable] interface {
	// StartArc positions arc on the virtual transition into the start
	// state: Target is the start state, Final reports whether the empty
	// input is accepted there, NextFinalOutput carries its output.
	StartArc(arc *Arc[T]) *Arc[T]

	// FirstArc positions arc on the first transition out of follow's
	// target. For an accepting target this is the synthetic EndOfInput
	// arc. Calling FirstArc on a non-accepting target without arcs is a
	// contract violation; check TargetHasArcs first.
	FirstArc(follow, arc *Arc[T]) *Arc[T]

	// NextArc advances arc to the next transition of the same state.
	// Advancing a cursor whose Last flag is set is a contract violation.
	NextArc(arc *Arc[T]) *Arc[T]

	// FindArc positions arc on the transition out of follow's target
	// that carries label, reporting false when there is none. follow and
	// arc may be the same cursor. A probe for EndOfInput is answered
	// from the follow cursor alone and therefore also works when the
	// target is Terminal.
	FindArc(label Label, follow, arc *Arc[T]) bool

	// TargetHasArcs reports whether follow's target has outgoing
	// transitions. The synthetic EndOfInput arc does not count.
	TargetHasArcs(follow *Arc[T]) bool

	// ExpandedTarget reports whether follow's target is stored in a
	// direct-addressed (high fan-out) layout. Purely diagnostic; the
	// dot exporter colors such states.
	ExpandedTarget(follow *Arc[T]) bool

	// Outputs returns the output algebra of this transducer.
	Outputs() Outputs[T]
}

// StoreStats reports size and density figures for a frozen MemStore.
type StoreStats struct {
	States       int // states in the table
	Arcs         int // real transitions
	DirectStates int // states in the direct-addressed layout
	TotalSlots   int // arc records including empty direct slots
}

// FillRatio returns the fraction of arc records actually occupied.
func (s StoreStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.Arcs) / float64(s.TotalSlots)
}
