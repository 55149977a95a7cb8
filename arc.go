package fst

import "strconv"

// Label is the input symbol carried by a transition. Real symbols are
// non-negative: Unicode code points for rune-labelled automata, unsigned
// byte values for byte-labelled ones. The negative range is reserved for
// EndOfInput.
type Label int32

// EndOfInput labels the synthetic transition that accepts the input at
// the current state. It never collides with a real symbol.
const EndOfInput Label = -1

// IsEndOfInput reports whether l is the reserved end-of-input symbol.
func (l Label) IsEndOfInput() bool { return l < 0 }

// State addresses a transducer state within its backing representation.
// Ordinary states are non-negative; the Terminal sentinel stands for the
// conceptual final state shared by all accepting paths.
type State int32

// Terminal is the reserved address of the shared terminal state. It has no
// outgoing transitions and cannot be dereferenced in any arc table.
const Terminal State = -1

// IsTerminal reports whether s is the terminal sentinel.
func (s State) IsTerminal() bool { return s < 0 }

func (s State) String() string { return strconv.Itoa(int(s)) }

// Arc is a cursor over one transition of an automaton. The automaton's
// operations (see Automaton) move a cursor in place; assigning an Arc takes
// a snapshot of the position, which is how the dot exporter queues pending
// states while the lookup engine keeps moving a single cursor. A cursor
// belongs to one walk: concurrent traversals each use their own.
type Arc[T comparable] struct {
	Label  Label // symbol consumed by this transition, or EndOfInput
	Output T     // output picked up by traversing this transition
	Target State // destination state, or Terminal

	// NextFinalOutput is the output attached to acceptance at the target
	// state, separate from the per-transition Output. Meaningful only
	// when Final is set.
	NextFinalOutput T

	Final bool // target state accepts end of input
	Last  bool // no further transitions in the current enumeration

	// From and Slot locate the cursor inside the owning automaton: the
	// state whose transitions are being enumerated and the position of
	// the current one (negative on the synthetic EndOfInput transition).
	// They are maintained by the automaton's operations and are opaque
	// to callers.
	From State
	Slot int
}
