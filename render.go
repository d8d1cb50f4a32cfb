package tvec

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Dialect represents an output text format.
type Dialect string

// Output dialects.
const (
	DialectHaskell = Dialect("haskell") // functional module
	DialectC       = Dialect("c")       // struct array with print driver
	DialectForte   = Dialect("forte")   // bit-blasted tuple list
)

// Supports returns true if the dialect has an encoding for values of the
// given kind. Renderers consult this for every value before emitting
// anything, so an unsupported kind fails the render instead of producing
// malformed text.
func (d Dialect) Supports(kind Kind) bool {
	switch d {
	case DialectHaskell:
		switch kind.Tag {
		case TagBool, TagUnbounded, TagReal, TagFloat, TagDouble:
			return true
		case TagBounded:
			return isStandardWidth(kind.Width)
		default:
			return false
		}
	case DialectC:
		switch kind.Tag {
		case TagBool, TagFloat, TagDouble:
			return true
		case TagBounded:
			return isStandardWidth(kind.Width)
		default:
			return false
		}
	case DialectForte:
		switch kind.Tag {
		case TagBool, TagBounded:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// isStandardWidth returns true for widths that have native fixed-width
// integer types in the haskell and c dialects.
func isStandardWidth(width uint) bool {
	switch width {
	case Width8, Width16, Width32, Width64:
		return true
	default:
		return false
	}
}

// RenderOptions represents dialect-specific render settings. The endianness
// and split fields apply to the forte dialect only.
type RenderOptions struct {
	LittleEndian bool
	InputSplits  []int
	OutputSplits []int
}

// Render emits set as source text in the given dialect. The result is a
// complete document or an error; no partial text is ever returned.
func Render(dialect Dialect, name string, set *TestVectorSet, opt RenderOptions) (string, error) {
	switch dialect {
	case DialectHaskell:
		return RenderHaskell(name, set)
	case DialectC:
		return RenderC(name, set)
	case DialectForte:
		return RenderForte(name, opt.LittleEndian, opt.InputSplits, opt.OutputSplits, set)
	default:
		return "", fmt.Errorf("tvec.Renderer: unknown dialect: %q", string(dialect))
	}
}

// UnsupportedKindError is returned by a renderer when a value's kind has no
// encoding in the requested dialect.
type UnsupportedKindError struct {
	Dialect Dialect
	Value   Value
}

// Error returns the string representation of the error.
func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("tvec.Renderer: %s kind is not supported by the %s dialect: %s", e.Value.Kind, e.Dialect, e.Value)
}

// SplitMismatchError is returned by the forte renderer when a side's split
// widths do not exactly exhaust its blasted bit string.
type SplitMismatchError struct {
	Side string // "input" or "output"
	Want int    // total width of the declared splits
	Got  int    // bits actually blasted
}

// Error returns the string representation of the error.
func (e *SplitMismatchError) Error() string {
	return fmt.Sprintf("tvec.Renderer: %s splits expect %d bits, got %d", e.Side, e.Want, e.Got)
}

// defaultRenderName is the identifier used when a render name is empty.
const defaultRenderName = "testVectors"

// normalizeName returns a lexically valid identifier for a render name.
// Empty names fall back to a fixed default and names starting with a
// non-letter character get a fixed prefix.
func normalizeName(name string) string {
	if name == "" {
		return defaultRenderName
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsLetter(r) {
		return "tv" + name
	}
	return name
}

// capitalize returns s with its first rune upper-cased.
func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

// checkKinds returns an error for the first value in the set that the
// dialect cannot render.
func checkKinds(d Dialect, set *TestVectorSet) error {
	for i := 0; i < set.Len(); i++ {
		vector := set.At(i)
		for _, value := range vector.Inputs {
			if !d.Supports(value.Kind) {
				return &UnsupportedKindError{Dialect: d, Value: value}
			}
		}
		for _, value := range vector.Outputs {
			if !d.Supports(value.Kind) {
				return &UnsupportedKindError{Dialect: d, Value: value}
			}
		}
	}
	return nil
}

// validateHomogeneous verifies that every vector in the set has the same
// input and output kind sequences as the first. The haskell and c dialects
// derive imports and record layout from the first vector alone, so a mixed
// set would render with the wrong layout for later vectors.
func validateHomogeneous(set *TestVectorSet) error {
	if set.Len() == 0 {
		return nil
	}
	first := set.At(0)
	for i := 1; i < set.Len(); i++ {
		vector := set.At(i)
		if !sameKinds(first.Inputs, vector.Inputs) || !sameKinds(first.Outputs, vector.Outputs) {
			return ErrHeterogeneousSet
		}
	}
	return nil
}

// sameKinds returns true if a and b carry identical kind sequences.
func sameKinds(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind {
			return false
		}
	}
	return true
}

// valueGroup is a run of adjacent same-kind values within one side of a
// vector.
type valueGroup struct {
	kind   Kind
	values []Value
}

// groupByKind partitions values into runs of adjacent entries sharing an
// identical kind. Only adjacency matters: equal kinds separated by another
// kind form separate groups.
func groupByKind(values []Value) []valueGroup {
	var groups []valueGroup
	for _, value := range values {
		if n := len(groups); n > 0 && groups[n-1].kind == value.Kind {
			groups[n-1].values = append(groups[n-1].values, value)
			continue
		}
		groups = append(groups, valueGroup{kind: value.Kind, values: []Value{value}})
	}
	return groups
}

// joinTuple wraps rendered element texts per the shared tuple rule: zero
// elements yield the unit value, one element is rendered bare, and more are
// wrapped as a tuple.
func joinTuple(elems []string) string {
	switch len(elems) {
	case 0:
		return "()"
	case 1:
		return elems[0]
	default:
		return "(" + strings.Join(elems, ", ") + ")"
	}
}
