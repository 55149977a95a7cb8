package fst

// Lookup walks a along key and returns the accumulated output, or the
// algebra's identity and false if the automaton does not accept key. The
// walk fails fast on the first symbol without a matching transition. A
// single cursor is reused for the whole walk; concurrent lookups on a
// shared automaton each make their own call.
func Lookup[T comparable](a Automaton[T], key []Label) (T, bool) {
	outs := a.Outputs()
	noOutput := outs.NoOutput()
	output := noOutput

	var arc Arc[T]
	a.StartArc(&arc)
	for _, sym := range key {
		assert(!sym.IsEndOfInput(), "input symbols must be non-negative")
		if !a.FindArc(sym, &arc, &arc) {
			return noOutput, false
		}
		if arc.Output != noOutput {
			output = outs.Add(output, arc.Output)
		}
	}

	// Probing for EndOfInput settles acceptance: it succeeds exactly when
	// the state reached by the last symbol is accepting, and its Output is
	// that state's final output.
	if !a.FindArc(EndOfInput, &arc, &arc) {
		return noOutput, false
	}
	if arc.Output != noOutput {
		output = outs.Add(output, arc.Output)
	}
	return output, true
}

// LookupString is Lookup over the Unicode code points of key.
func LookupString[T comparable](a Automaton[T], key string) (T, bool) {
	return Lookup(a, EncodeString(nil, key))
}

// LookupBytes is Lookup over the unsigned byte values of key.
func LookupBytes[T comparable](a Automaton[T], key []byte) (T, bool) {
	return Lookup(a, EncodeBytes(nil, key))
}
