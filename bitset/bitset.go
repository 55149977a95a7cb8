// Package bitset provides a small growable bitset.
//
// It backs the visited-state bookkeeping of graph walks: one bit per state
// address, grown on demand, no synchronization.
package bitset

import "math/bits"

// Set is a growable bitset. The zero value is an empty set ready for use.
type Set struct {
	words []uint64
}

// New returns a set with room for n bits preallocated.
func New(n int) *Set {
	return &Set{words: make([]uint64, (n+63)/64)}
}

// Add marks bit i, growing the backing storage as needed.
func (s *Set) Add(i int) {
	w := i >> 6
	for w >= len(s.words) {
		s.words = append(s.words, 0)
	}
	s.words[w] |= 1 << (uint(i) & 63)
}

// Has reports whether bit i is set.
func (s *Set) Has(i int) bool {
	w := i >> 6
	return w < len(s.words) && s.words[w]&(1<<(uint(i)&63)) != 0
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}
