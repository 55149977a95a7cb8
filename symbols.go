package fst

// EncodeString appends the Unicode code points of s to syms after resetting
// the slice's logical length, and returns the grown slice. Passing the
// result back in on the next call reuses the backing array once its
// capacity has settled. Malformed UTF-8 decodes to the replacement
// character U+FFFD, as a range over the string does.
func EncodeString(syms []Label, s string) []Label {
	syms = syms[:0]
	for _, r := range s {
		syms = append(syms, Label(r))
	}
	return syms
}

// EncodeBytes appends the unsigned byte values of b to syms after resetting
// the slice's logical length, for automata with byte-valued labels. The
// buffer convention matches EncodeString.
func EncodeBytes(syms []Label, b []byte) []Label {
	syms = syms[:0]
	for _, c := range b {
		syms = append(syms, Label(c))
	}
	return syms
}
