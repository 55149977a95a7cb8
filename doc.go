/*
Package fst implements lookup and inspection for deterministic finite-state
transducers: automata that map symbol sequences to values which accumulate
along the accepting path.

The package is organized around a small cursor protocol (type Arc) that
automaton representations implement. The traversal algorithms, exact-match
lookup and a Graphviz dot exporter, are written against that protocol only,
so they run unchanged on the bundled in-memory store (type MemStore) and on
hand-built arc tables. Outputs form a monoid (type Outputs); lookup adds up
arc outputs plus a possible final output at the accepting state.

A MemStore is mutable while keys are inserted and becomes an immutable,
shareable automaton after Freeze. Arc cursors are cheap and never
synchronized: give every concurrent walk its own.

Further Reading

	https://blog.burntsushi.net/transducers/
	https://aclanthology.org/J00-1002/   (Daciuk et al., minimal acyclic automata)
	https://cs.nyu.edu/~mohri/pub/fla.pdf

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package fst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fst'
func tracer() tracing.Trace {
	return tracing.Select("fst")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
