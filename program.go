package tvec

import (
	"fmt"
	"math/rand"
)

// Ref identifies a value produced during a single program run. Refs are only
// meaningful against the trace of the run that created them.
type Ref int

// String returns the string representation of the ref.
func (r Ref) String() string {
	return fmt.Sprintf("ref%d", int(r))
}

// Constraint is a condition declared during a run. Hard constraints gate
// sample acceptance; soft constraints are recorded but do not affect it.
type Constraint struct {
	Cond Ref
	Soft bool
}

// Trace records the observable effects of one program evaluation: the free
// variables drawn, the declared constraints and outputs, the names of any
// externally-defined functions, and the binding of each ref to its concrete
// value.
type Trace struct {
	Inputs      []Value
	Outputs     []Ref
	Constraints []Constraint
	Externals   []string

	bindings map[Ref]Value
}

// Bind associates ref with a concrete value.
func (t *Trace) Bind(ref Ref, value Value) {
	if t.bindings == nil {
		t.bindings = make(map[Ref]Value)
	}
	t.bindings[ref] = value
}

// Binding returns the concrete value bound to ref during the run.
func (t *Trace) Binding(ref Ref) (Value, bool) {
	value, ok := t.bindings[ref]
	return value, ok
}

// Program performs one concrete evaluation per call and reports the resulting
// trace. Every call must be a fresh, independent draw; the sampler re-invokes
// it from scratch after each rejection.
type Program interface {
	Run() (*Trace, error)
}

// ProgramFunc is an adapter to allow a function to be used as a Program.
type ProgramFunc func() (*Trace, error)

// Run invokes fn.
func (fn ProgramFunc) Run() (*Trace, error) { return fn() }

var _ Program = (ProgramFunc)(nil)

// SymbolicProgram evaluates a user function concretely against fresh random
// draws on every run.
type SymbolicProgram struct {
	rand *rand.Rand
	fn   func(*Env) error
}

// NewSymbolicProgram returns a program that evaluates fn with draws from rand.
func NewSymbolicProgram(rand *rand.Rand, fn func(*Env) error) *SymbolicProgram {
	assert(rand != nil, "symbolic program requires a random source")
	assert(fn != nil, "symbolic program requires an evaluation function")
	return &SymbolicProgram{
		rand: rand,
		fn:   fn,
	}
}

var _ Program = (*SymbolicProgram)(nil)

// Run evaluates the function once against a fresh environment.
func (p *SymbolicProgram) Run() (*Trace, error) {
	env := newEnv(p.rand)
	if err := p.fn(env); err != nil {
		return nil, err
	}
	return env.trace, nil
}

// Env is the evaluation context passed to a symbolic program function. Draw
// methods introduce free variables bound to fresh concrete values; operator
// methods evaluate eagerly over already-bound refs. A ref returned by
// Uninterpreted is unbound, and every operation over an unbound ref yields an
// unbound ref.
type Env struct {
	rand  *rand.Rand
	trace *Trace
	next  Ref
}

func newEnv(rand *rand.Rand) *Env {
	return &Env{
		rand:  rand,
		trace: &Trace{},
	}
}

// alloc reserves the next unbound ref.
func (env *Env) alloc() Ref {
	ref := env.next
	env.next++
	return ref
}

// bind reserves a ref and binds it to value.
func (env *Env) bind(value Value) Ref {
	ref := env.alloc()
	env.trace.Bind(ref, value)
	return ref
}

// draw introduces a free variable bound to value.
func (env *Env) draw(value Value) Ref {
	env.trace.Inputs = append(env.trace.Inputs, value)
	return env.bind(value)
}

// Bool draws a free boolean variable.
func (env *Env) Bool() Ref {
	return env.draw(NewBoolValue(env.rand.Intn(2) == 1))
}

// Int8 draws a free 8-bit signed integer variable.
func (env *Env) Int8() Ref {
	return env.draw(NewInt8Value(int8(env.rand.Uint64())))
}

// Int16 draws a free 16-bit signed integer variable.
func (env *Env) Int16() Ref {
	return env.draw(NewInt16Value(int16(env.rand.Uint64())))
}

// Int32 draws a free 32-bit signed integer variable.
func (env *Env) Int32() Ref {
	return env.draw(NewInt32Value(int32(env.rand.Uint64())))
}

// Int64 draws a free 64-bit signed integer variable.
func (env *Env) Int64() Ref {
	return env.draw(NewInt64Value(int64(env.rand.Uint64())))
}

// Uint8 draws a free 8-bit unsigned integer variable.
func (env *Env) Uint8() Ref {
	return env.draw(NewUint8Value(uint8(env.rand.Uint64())))
}

// Uint16 draws a free 16-bit unsigned integer variable.
func (env *Env) Uint16() Ref {
	return env.draw(NewUint16Value(uint16(env.rand.Uint64())))
}

// Uint32 draws a free 32-bit unsigned integer variable.
func (env *Env) Uint32() Ref {
	return env.draw(NewUint32Value(uint32(env.rand.Uint64())))
}

// Uint64 draws a free 64-bit unsigned integer variable.
func (env *Env) Uint64() Ref {
	return env.draw(NewUint64Value(env.rand.Uint64()))
}

// Float32 draws a free single-precision variable in [0, 1).
func (env *Env) Float32() Ref {
	return env.draw(NewFloat32Value(env.rand.Float32()))
}

// Float64 draws a free double-precision variable in [0, 1).
func (env *Env) Float64() Ref {
	return env.draw(NewFloat64Value(env.rand.Float64()))
}

// Const introduces a constant.
func (env *Env) Const(value Value) Ref {
	return env.bind(value)
}

// BinOp applies a binary operation to x and y.
func (env *Env) BinOp(op BinaryOp, x, y Ref) Ref {
	xv, xok := env.trace.Binding(x)
	yv, yok := env.trace.Binding(y)
	if !xok || !yok {
		return env.alloc()
	}
	return env.bind(NewBinaryValue(op, xv, yv))
}

// Not applies the logical or bitwise complement to x.
func (env *Env) Not(x Ref) Ref {
	v, ok := env.trace.Binding(x)
	if !ok {
		return env.alloc()
	}
	return env.bind(v.Not())
}

// Neg applies arithmetic negation to x.
func (env *Env) Neg(x Ref) Ref {
	v, ok := env.trace.Binding(x)
	if !ok {
		return env.alloc()
	}
	return env.bind(v.Neg())
}

// Convert reinterprets x as kind.
func (env *Env) Convert(x Ref, kind Kind) Ref {
	v, ok := env.trace.Binding(x)
	if !ok {
		return env.alloc()
	}
	return env.bind(v.Convert(kind))
}

// Constrain declares a hard constraint. A draw is accepted only if every
// hard constraint evaluates true.
func (env *Env) Constrain(cond Ref) {
	env.trace.Constraints = append(env.trace.Constraints, Constraint{Cond: cond})
}

// SoftConstrain declares a soft constraint. It is recorded in the trace but
// ignored for acceptance.
func (env *Env) SoftConstrain(cond Ref) {
	env.trace.Constraints = append(env.trace.Constraints, Constraint{Cond: cond, Soft: true})
}

// Output appends refs to the program's output vector.
func (env *Env) Output(refs ...Ref) {
	env.trace.Outputs = append(env.trace.Outputs, refs...)
}

// Uninterpreted declares an application of the externally-defined function
// name. The name is recorded in the trace and the returned ref is unbound
// since no definition is available to evaluate.
func (env *Env) Uninterpreted(name string, args ...Ref) Ref {
	env.trace.Externals = append(env.trace.Externals, name)
	return env.alloc()
}
