package fst

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/fst/bitset"
)

// Node shapes and colors used by ToDot.
const (
	stateShape        = "circle"
	finalStateShape   = "doublecircle"
	expandedNodeColor = "blue"
)

// ToDot writes a Graphviz dot description of every state reachable from
// a's start state to w, breadth first, so that graph rows correspond to
// key positions. The output renders with the usual toolchain, e.g.
//
//	dot -Tpng transducer.dot -o transducer.png
//
// Accepting states are drawn as double circles, states in the
// direct-addressed layout in blue, and the shared terminal state as a
// filled sink. Arc labels show the symbol and, when present, the arc
// output after a slash. With sameRank set, states discovered on the same
// level are pinned to one rank; with labelStates set, states are labelled
// with their addresses.
//
// Cycles are fine: every state is expanded once. ToDot returns the first
// error the writer reported, if any.
func ToDot[T comparable](a Automaton[T], w io.Writer, sameRank, labelStates bool) error {
	out := bufio.NewWriter(w)
	outs := a.Outputs()
	noOutput := outs.NoOutput()

	var startArc Arc[T]
	a.StartArc(&startArc)

	// Cursor snapshots queued for the current and the next level.
	var thisLevel []Arc[T]
	nextLevel := []Arc[T]{startArc}

	// States discovered on the current level, for rank pinning.
	var sameLevel []State

	seen := bitset.New(64)
	seen.Add(int(startArc.Target))

	fmt.Fprintf(out, "digraph FST {\n")
	fmt.Fprintf(out, "  rankdir = LR; splines=true; concentrate=true; ordering=out; ranksep=2.5;\n")
	if !labelStates {
		fmt.Fprintf(out, "  node [shape=circle, width=.2, height=.2, style=filled]\n")
	}
	emitDotState(out, "initial", "point", "white", "")
	{
		finalOut := ""
		if startArc.Final && startArc.NextFinalOutput != noOutput {
			finalOut = outs.Display(startArc.NextFinalOutput)
		}
		shape := stateShape
		if startArc.Final {
			shape = finalStateShape
		}
		color := ""
		if a.ExpandedTarget(&startArc) {
			color = expandedNodeColor
		}
		emitDotState(out, startArc.Target.String(), shape, color,
			dotStateLabel(labelStates, startArc.Target, finalOut))
	}
	fmt.Fprintf(out, "  initial -> %d\n", startArc.Target)

	level := 0
	var arc Arc[T]
	for len(nextLevel) > 0 {
		thisLevel = append(thisLevel, nextLevel...)
		nextLevel = nextLevel[:0]
		level++
		fmt.Fprintf(out, "\n  // Transitions and states at level: %d\n", level)
		for len(thisLevel) > 0 {
			follow := thisLevel[len(thisLevel)-1]
			thisLevel = thisLevel[:len(thisLevel)-1]
			if !a.TargetHasArcs(&follow) {
				continue
			}
			node := follow.Target

			a.FirstArc(&follow, &arc)
			if arc.Label.IsEndOfInput() {
				// Acceptance was drawn when the state was discovered;
				// the folded end-of-input arc adds nothing here.
				assert(!arc.Last, "end-of-input arc cannot be the only arc here")
				a.NextArc(&arc)
			}
			for {
				if !arc.Target.IsTerminal() && !seen.Has(int(arc.Target)) {
					finalOut := ""
					if arc.Final && arc.NextFinalOutput != noOutput {
						finalOut = outs.Display(arc.NextFinalOutput)
					}
					shape := stateShape
					if arc.Final {
						shape = finalStateShape
					}
					color := ""
					if a.ExpandedTarget(&arc) {
						color = expandedNodeColor
					}
					emitDotState(out, arc.Target.String(), shape, color,
						dotStateLabel(labelStates, arc.Target, finalOut))
					seen.Add(int(arc.Target))
					nextLevel = append(nextLevel, arc)
					sameLevel = append(sameLevel, arc.Target)
				}

				label := printableLabel(arc.Label)
				if arc.Output != noOutput {
					label += "/" + outs.Display(arc.Output)
				}
				if !a.TargetHasArcs(&arc) && arc.Final && arc.NextFinalOutput != noOutput {
					// An optimizing builder may park a final output on an
					// arc into the terminal state; pull it onto this edge
					// so it stays visible.
					label += "/[" + outs.Display(arc.NextFinalOutput) + "]"
				}
				assert(!arc.Label.IsEndOfInput(), "end-of-input arc in mid-enumeration")
				fmt.Fprintf(out, "  %d -> %d [label=%q]\n", node, arc.Target, label)

				if arc.Last {
					break
				}
				a.NextArc(&arc)
			}
		}
		if sameRank && len(sameLevel) > 1 {
			fmt.Fprintf(out, "  {rank=same; ")
			for _, s := range sameLevel {
				fmt.Fprintf(out, "%d; ", s)
			}
			fmt.Fprintf(out, "}\n")
		}
		sameLevel = sameLevel[:0]
	}

	// The terminal sink is part of every automaton.
	fmt.Fprintf(out, "  -1 [style=filled, color=black, shape=doublecircle, label=\"\"]\n\n")
	fmt.Fprintf(out, "  {rank=sink; -1 }\n")
	fmt.Fprintf(out, "}\n")
	return out.Flush()
}

// emitDotState writes a single node line; empty shape or color attributes
// are left out.
func emitDotState(out *bufio.Writer, name, shape, color, label string) {
	fmt.Fprintf(out, "  %s [", name)
	if shape != "" {
		fmt.Fprintf(out, "shape=%s ", shape)
	}
	if color != "" {
		fmt.Fprintf(out, "color=%s ", color)
	}
	fmt.Fprintf(out, "label=%q]\n", label)
}

// dotStateLabel renders a node label: the state address in labelStates
// mode, joined with the state's final output when there is one.
func dotStateLabel(labelStates bool, s State, finalOut string) string {
	if !labelStates {
		return finalOut
	}
	if finalOut == "" {
		return s.String()
	}
	return s.String() + "/" + finalOut
}

// printableLabel renders a symbol for dot output, which is US-ASCII: the
// literal character when printable, a hex escape otherwise.
func printableLabel(l Label) string {
	if l >= 0x20 && l <= 0x7d {
		return string(rune(l))
	}
	return fmt.Sprintf("0x%x", int32(l))
}
