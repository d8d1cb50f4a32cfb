package tvec

import (
	"fmt"
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Generator produces test vector sets by rejection sampling: it evaluates a
// program repeatedly and keeps the draws under which every hard constraint
// holds. Rejected draws are discarded whole; the program is re-run from
// scratch rather than repaired.
type Generator struct {
	// Maximum number of program evaluations per Generate call, counting
	// rejections. Zero means unbounded, in which case an unsatisfiable
	// constraint set loops forever.
	MaxAttempts int

	// Logs each accepted sample and dumps every rejected trace.
	Verbose bool
}

// NewGenerator returns a new instance of Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate evaluates program until n draws have been accepted and returns
// the accepted vectors in draw order. If n is not positive, an empty set is
// returned without evaluating the program. Exceeding MaxAttempts returns
// ErrSamplingExhausted.
func (g *Generator) Generate(n int, program Program) (*TestVectorSet, error) {
	set := NewTestVectorSet()

	attempts := 0
	for set.Len() < n {
		if g.MaxAttempts != 0 && attempts == g.MaxAttempts {
			return nil, ErrSamplingExhausted
		}
		attempts++

		trace, err := program.Run()
		if err != nil {
			return nil, err
		}

		vector, err := acceptTrace(trace)
		if err != nil {
			return nil, err
		} else if vector == nil {
			if g.Verbose {
				log.Printf("[sample] reject: attempt=%d", attempts)
				log.Print(spew.Sdump(trace))
			}
			continue
		}

		if g.Verbose {
			log.Printf("[sample] accept: attempt=%d vector=%s", attempts, vector.String())
		}
		set.add(vector)
	}
	return set, nil
}

// Generate evaluates program until n draws have been accepted, with no bound
// on the number of rejections.
func Generate(n int, program Program) (*TestVectorSet, error) {
	return NewGenerator().Generate(n, program)
}

// acceptTrace builds the test vector for a draw whose hard constraints all
// hold. It returns nil for a rejected draw.
func acceptTrace(trace *Trace) (*TestVector, error) {
	if len(trace.Externals) > 0 {
		return nil, &UnsupportedProgramError{Functions: trace.Externals}
	}

	for _, constraint := range trace.Constraints {
		value, ok := trace.Binding(constraint.Cond)
		if !ok {
			return nil, &MissingBindingError{Ref: constraint.Cond}
		}
		assert(value.Kind == KindBool, "constraint must be boolean, got %s", value.Kind)

		if constraint.Soft {
			continue
		} else if !value.Bool {
			return nil, nil
		}
	}

	outputs := make([]Value, len(trace.Outputs))
	for i, ref := range trace.Outputs {
		value, ok := trace.Binding(ref)
		if !ok {
			return nil, &MissingBindingError{Ref: ref}
		}
		outputs[i] = value
	}

	inputs := make([]Value, len(trace.Inputs))
	copy(inputs, trace.Inputs)

	return &TestVector{Inputs: inputs, Outputs: outputs}, nil
}

// UnsupportedProgramError is returned by Generate when a draw declares
// externally-defined functions, which cannot be evaluated concretely.
type UnsupportedProgramError struct {
	Functions []string
}

// Error returns the string representation of the error.
func (e *UnsupportedProgramError) Error() string {
	return fmt.Sprintf("tvec.Generator: externally-defined functions are not supported: %s", strings.Join(e.Functions, ", "))
}

// MissingBindingError is returned by Generate when a constraint or output
// references a ref with no concrete binding in its draw. This indicates a
// broken Program implementation rather than a user error.
type MissingBindingError struct {
	Ref Ref
}

// Error returns the string representation of the error.
func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("tvec.Generator: no binding for %s", e.Ref)
}
