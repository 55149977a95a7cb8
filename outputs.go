package fst

import (
	"strconv"
	"strings"
)

// Outputs is the output algebra a traversal consumes: a monoid with
// identity NoOutput and associative Add, plus a display form for arc
// labels and diagnostics. Implementations must guarantee
// Add(NoOutput(), x) == x == Add(x, NoOutput()) for every value x.
type Outputs[T comparable] interface {
	NoOutput() T
	Add(a, b T) T
	Display(o T) string
}

// BuilderOutputs extends Outputs with the prefix operations a mutable
// store needs to redistribute outputs over shared prefixes: Common yields
// the largest shared prefix of two values, Subtract removes a prefix.
// Traversals never call these.
type BuilderOutputs[T comparable] interface {
	Outputs[T]
	Common(a, b T) T
	Subtract(a, b T) T
}

// --- Non-negative integers -------------------------------------------------

// IntOutputs is the algebra of non-negative integer sums: NoOutput is 0,
// Add is addition, Common is the minimum and Subtract plain subtraction.
// This is the usual choice for dictionaries mapping terms to ordinals or
// frequencies.
type IntOutputs struct{}

func (IntOutputs) NoOutput() int64 { return 0 }

func (IntOutputs) Add(a, b int64) int64 {
	assert(a >= 0 && b >= 0, "integer outputs must not be negative")
	return a + b
}

func (IntOutputs) Common(a, b int64) int64 { return min(a, b) }

func (IntOutputs) Subtract(a, b int64) int64 {
	assert(b <= a, "cannot subtract a larger integer output")
	return a - b
}

func (IntOutputs) Display(o int64) string { return strconv.FormatInt(o, 10) }

// --- Strings ---------------------------------------------------------------

// StrOutputs is the algebra of string concatenation: NoOutput is the empty
// string, Add appends, Common is the longest common prefix and Subtract
// trims a prefix. Note that Add is not commutative; the traversal order
// defines the result.
type StrOutputs struct{}

func (StrOutputs) NoOutput() string { return "" }

func (StrOutputs) Add(a, b string) string { return a + b }

func (StrOutputs) Common(a, b string) string {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return a[:i]
}

func (StrOutputs) Subtract(a, b string) string {
	assert(strings.HasPrefix(a, b), "subtrahend is not a prefix")
	return a[len(b):]
}

func (StrOutputs) Display(o string) string { return o }
