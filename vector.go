package tvec

import (
	"bytes"
	"fmt"

	"github.com/benbjohnson/immutable"
)

// TestVector is one accepted sample: the input values actually drawn and the
// computed output values, in declaration order. A vector is created once per
// accepted draw and never modified afterward.
type TestVector struct {
	Inputs  []Value
	Outputs []Value
}

// String returns the string representation of the vector.
func (v *TestVector) String() string {
	var buf bytes.Buffer
	buf.WriteRune('(')
	for i := range v.Inputs {
		if i > 0 {
			buf.WriteRune(' ')
		}
		buf.WriteString(v.Inputs[i].String())
	}
	buf.WriteString(") => (")
	for i := range v.Outputs {
		if i > 0 {
			buf.WriteRune(' ')
		}
		buf.WriteString(v.Outputs[i].String())
	}
	buf.WriteRune(')')
	return buf.String()
}

// TestVectorSet is an ordered collection of test vectors. Insertion order is
// generation order and is observable: vector i corresponds to the i-th
// accepted sample, and renderers preserve the order. The set is backed by an
// immutable list so renderer calls can share it read-only.
type TestVectorSet struct {
	vectors *immutable.List
}

// NewTestVectorSet returns a set containing vectors in order. Ownership of
// the vectors passes to the set.
func NewTestVectorSet(vectors ...*TestVector) *TestVectorSet {
	set := &TestVectorSet{vectors: immutable.NewList()}
	for _, vector := range vectors {
		set.add(vector)
	}
	return set
}

// add appends a vector to the end of the set.
func (s *TestVectorSet) add(vector *TestVector) {
	s.vectors = s.vectors.Append(vector)
}

// Len returns the number of vectors in the set.
func (s *TestVectorSet) Len() int {
	return s.vectors.Len()
}

// At returns the i-th vector in generation order.
func (s *TestVectorSet) At(i int) *TestVector {
	return s.vectors.Get(i).(*TestVector)
}

// Dump returns the contents of the set as a string.
func (s *TestVectorSet) Dump() string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "TEST VECTOR SET")
	fmt.Fprintln(&buf, "===============")
	for i := 0; i < s.Len(); i++ {
		fmt.Fprintf(&buf, "%d. %s\n", i, s.At(i).String())
	}
	return buf.String()
}
