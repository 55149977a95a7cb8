package fst

import (
	"sort"

	"github.com/npillmayer/fst/arctable"
)

// A state moves to the direct-addressed layout when it has at least
// directMinArity arcs and its label window wastes at most directMaxSpread
// slots per arc.
const (
	directMinArity  = 6
	directMaxSpread = 4
)

// Freeze sorts every state's arcs by label, picks a per-state layout and
// compiles the build graph into a flat arc table. The store is read-only
// afterwards and safe to share; freezing twice is a no-op.
func (st *MemStore[T]) Freeze() {
	if st.frozen {
		return
	}
	noOutput := st.outs.NoOutput()
	table := &arctable.Table[T]{
		Start: 0,
		Nodes: make([]arctable.Node[T], len(st.nodes)),
	}
	arcs := 0
	directStates := 0
	for i := range st.nodes {
		n := &st.nodes[i]
		sort.Slice(n.arcs, func(a, b int) bool { return n.arcs[a].label < n.arcs[b].label })
		nd := &table.Nodes[i]
		nd.Final = n.final
		nd.FinalOut = n.finalOut
		nd.Lo = int32(len(table.Recs))
		if len(n.arcs) > 0 {
			lo := n.arcs[0].label
			hi := n.arcs[len(n.arcs)-1].label
			span := int(hi-lo) + 1
			if len(n.arcs) >= directMinArity && span <= directMaxSpread*len(n.arcs) {
				nd.Direct = true
				nd.MinLabel = int32(lo)
				directStates++
				base := len(table.Recs)
				for k := 0; k < span; k++ {
					table.Recs = append(table.Recs, arctable.Rec[T]{
						Label: -1, Target: -1, Out: noOutput, FinalOut: noOutput,
					})
				}
				for _, a := range n.arcs {
					table.Recs[base+int(a.label-lo)] = st.freezeRec(a)
				}
			} else {
				for _, a := range n.arcs {
					table.Recs = append(table.Recs, st.freezeRec(a))
				}
			}
			arcs += len(n.arcs)
		}
		nd.Hi = int32(len(table.Recs))
	}
	st.table = table
	st.nodes = nil
	st.frozen = true
	st.stats = StoreStats{
		States:       table.NStates(),
		Arcs:         arcs,
		DirectStates: directStates,
		TotalSlots:   table.NSlots(),
	}
	tracer().Infof("froze transducer: states=%d arcs=%d direct=%d slots=%d fill=%.2f",
		st.stats.States, st.stats.Arcs, st.stats.DirectStates, st.stats.TotalSlots,
		st.stats.FillRatio())
}

// freezeRec compiles one build arc, baking the destination's finality and
// final output into the record.
func (st *MemStore[T]) freezeRec(a buildArc[T]) arctable.Rec[T] {
	final, finalOut := st.nodeFinal(State(a.target))
	return arctable.Rec[T]{
		Label:    int32(a.label),
		Target:   a.target,
		Final:    final,
		Out:      a.out,
		FinalOut: finalOut,
	}
}
