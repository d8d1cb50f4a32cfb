package tvec

import (
	"fmt"
	"math/big"
	"strconv"
)

// KindTag enumerates the shapes a concrete value can take.
type KindTag int

// Value kind tags.
const (
	TagBool = KindTag(iota)
	TagBounded
	TagUnbounded
	TagReal
	TagFloat
	TagDouble
	TagChar
	TagString
	TagList
	TagSet
	TagTuple
	TagOptional
	TagSum
	TagUninterpreted
)

var kindTags = [...]string{
	TagBool:          "bool",
	TagBounded:       "bounded",
	TagUnbounded:     "integer",
	TagReal:          "real",
	TagFloat:         "float",
	TagDouble:        "double",
	TagChar:          "char",
	TagString:        "string",
	TagList:          "list",
	TagSet:           "set",
	TagTuple:         "tuple",
	TagOptional:      "optional",
	TagSum:           "sum",
	TagUninterpreted: "uninterpreted",
}

// String returns the string representation of the tag.
func (t KindTag) String() string {
	if t >= 0 && int(t) < len(kindTags) {
		return kindTags[t]
	}
	return fmt.Sprintf("KindTag<%d>", t)
}

// Kind describes the shape of a concrete value. Width and Signed are
// meaningful for bounded integer kinds only. A value's kind is determined
// solely by its own tag, never inferred from context.
type Kind struct {
	Tag    KindTag
	Width  uint
	Signed bool
}

// Predefined kinds.
var (
	KindBool    = Kind{Tag: TagBool}
	KindInt8    = Kind{Tag: TagBounded, Width: Width8, Signed: true}
	KindInt16   = Kind{Tag: TagBounded, Width: Width16, Signed: true}
	KindInt32   = Kind{Tag: TagBounded, Width: Width32, Signed: true}
	KindInt64   = Kind{Tag: TagBounded, Width: Width64, Signed: true}
	KindUint8   = Kind{Tag: TagBounded, Width: Width8}
	KindUint16  = Kind{Tag: TagBounded, Width: Width16}
	KindUint32  = Kind{Tag: TagBounded, Width: Width32}
	KindUint64  = Kind{Tag: TagBounded, Width: Width64}
	KindInteger = Kind{Tag: TagUnbounded}
	KindFloat   = Kind{Tag: TagFloat}
	KindDouble  = Kind{Tag: TagDouble}
	KindReal    = Kind{Tag: TagReal}
)

// NewBoundedKind returns a fixed-width integer kind of the given width.
func NewBoundedKind(width uint, signed bool) Kind {
	assert(width > 0, "bounded kind requires a positive width")
	return Kind{Tag: TagBounded, Width: width, Signed: signed}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k.Tag == TagBounded {
		if k.Signed {
			return fmt.Sprintf("int%d", k.Width)
		}
		return fmt.Sprintf("uint%d", k.Width)
	}
	return k.Tag.String()
}

// isIntegerKind returns true for bounded and unbounded integer kinds.
func isIntegerKind(k Kind) bool {
	return k.Tag == TagBounded || k.Tag == TagUnbounded
}

// Value is a concrete (kind, payload) pair. Exactly one payload field is
// meaningful, selected by the kind: Bool for boolean kinds, Int for bounded
// and unbounded integer kinds (reinterpreted per the kind's width and
// signedness when rendered), Float32/Float64 for the floating kinds, and
// Real for rational kinds. Kinds with no renderable payload (char, string,
// structural and uninterpreted kinds) carry none.
type Value struct {
	Kind    Kind
	Bool    bool
	Int     *big.Int
	Float32 float32
	Float64 float64
	Real    *big.Rat
}

// NewBoolValue returns a boolean value.
func NewBoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// NewIntValue returns a value of the given bounded or unbounded integer kind.
// The payload is copied.
func NewIntValue(kind Kind, x *big.Int) Value {
	assert(isIntegerKind(kind), "integer value requires an integer kind, got %s", kind)
	assert(x != nil, "integer value requires a payload")
	return Value{Kind: kind, Int: new(big.Int).Set(x)}
}

// NewInt8Value returns an 8-bit signed integer value.
func NewInt8Value(v int8) Value { return NewIntValue(KindInt8, big.NewInt(int64(v))) }

// NewInt16Value returns a 16-bit signed integer value.
func NewInt16Value(v int16) Value { return NewIntValue(KindInt16, big.NewInt(int64(v))) }

// NewInt32Value returns a 32-bit signed integer value.
func NewInt32Value(v int32) Value { return NewIntValue(KindInt32, big.NewInt(int64(v))) }

// NewInt64Value returns a 64-bit signed integer value.
func NewInt64Value(v int64) Value { return NewIntValue(KindInt64, big.NewInt(v)) }

// NewUint8Value returns an 8-bit unsigned integer value.
func NewUint8Value(v uint8) Value { return NewIntValue(KindUint8, new(big.Int).SetUint64(uint64(v))) }

// NewUint16Value returns a 16-bit unsigned integer value.
func NewUint16Value(v uint16) Value {
	return NewIntValue(KindUint16, new(big.Int).SetUint64(uint64(v)))
}

// NewUint32Value returns a 32-bit unsigned integer value.
func NewUint32Value(v uint32) Value {
	return NewIntValue(KindUint32, new(big.Int).SetUint64(uint64(v)))
}

// NewUint64Value returns a 64-bit unsigned integer value.
func NewUint64Value(v uint64) Value {
	return NewIntValue(KindUint64, new(big.Int).SetUint64(v))
}

// NewIntegerValue returns an arbitrary-precision integer value.
func NewIntegerValue(x *big.Int) Value { return NewIntValue(KindInteger, x) }

// NewFloat32Value returns a single-precision floating point value.
func NewFloat32Value(f float32) Value { return Value{Kind: KindFloat, Float32: f} }

// NewFloat64Value returns a double-precision floating point value.
func NewFloat64Value(f float64) Value { return Value{Kind: KindDouble, Float64: f} }

// NewRealValue returns an arbitrary-precision rational value. The payload is
// copied.
func NewRealValue(r *big.Rat) Value {
	assert(r != nil, "real value requires a payload")
	return Value{Kind: KindReal, Real: new(big.Rat).Set(r)}
}

// String returns the string representation of the value.
func (v Value) String() string {
	switch v.Kind.Tag {
	case TagBool:
		return fmt.Sprintf("(bool %v)", v.Bool)
	case TagBounded:
		if v.Kind.Signed {
			return fmt.Sprintf("(%s %s)", v.Kind, signedOf(v))
		}
		return fmt.Sprintf("(%s %s)", v.Kind, unsignedOf(v))
	case TagUnbounded:
		return fmt.Sprintf("(integer %s)", v.Int)
	case TagFloat:
		return fmt.Sprintf("(float %s)", strconv.FormatFloat(float64(v.Float32), 'g', -1, 32))
	case TagDouble:
		return fmt.Sprintf("(double %s)", strconv.FormatFloat(v.Float64, 'g', -1, 64))
	case TagReal:
		return fmt.Sprintf("(real %s)", v.Real.RatString())
	default:
		return fmt.Sprintf("(%s)", v.Kind)
	}
}

// Equal returns true if v and other have the same kind and payload. Bounded
// integers compare by bit pattern, so a value and its wrapped arithmetic
// result compare equal whenever their patterns match.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind.Tag {
	case TagBool:
		return v.Bool == other.Bool
	case TagBounded:
		return unsignedOf(v).Cmp(unsignedOf(other)) == 0
	case TagUnbounded:
		return v.Int.Cmp(other.Int) == 0
	case TagFloat:
		return v.Float32 == other.Float32
	case TagDouble:
		return v.Float64 == other.Float64
	case TagReal:
		return v.Real.Cmp(other.Real) == 0
	default:
		return true
	}
}

// bitmask returns a mask of the given width.
func bitmask(width uint) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), width)
	return mask.Sub(mask, big.NewInt(1))
}

// truncate reduces x modulo 2^width, yielding the unsigned bit pattern.
func truncate(x *big.Int, width uint) *big.Int {
	return new(big.Int).And(x, bitmask(width))
}

// unsignedOf returns the payload of a bounded value interpreted as unsigned.
func unsignedOf(v Value) *big.Int {
	assert(v.Kind.Tag == TagBounded, "unsigned interpretation requires a bounded kind, got %s", v.Kind)
	return truncate(v.Int, v.Kind.Width)
}

// signedOf returns the payload of a bounded value interpreted as a
// two's-complement signed integer.
func signedOf(v Value) *big.Int {
	u := unsignedOf(v)
	if u.Bit(int(v.Kind.Width)-1) == 1 {
		return u.Sub(u, new(big.Int).Lsh(big.NewInt(1), v.Kind.Width))
	}
	return u
}

// BinaryOp represents a binary operation on two values.
type BinaryOp int

// Binary operations. Signedness is carried by the operand kind, not the
// operator.
const (
	arithmetic_op_begin = BinaryOp(iota)
	ADD
	SUB
	MUL
	DIV
	REM
	AND
	OR
	XOR
	SHL
	SHR
	arithmetic_op_end

	compare_op_begin
	EQ
	NE
	LT
	LE
	GT
	GE
	compare_op_end
)

var binaryOps = [...]string{
	ADD: "add",
	SUB: "sub",
	MUL: "mul",
	DIV: "div",
	REM: "rem",
	AND: "and",
	OR:  "or",
	XOR: "xor",
	SHL: "shl",
	SHR: "shr",
	EQ:  "eq",
	NE:  "ne",
	LT:  "lt",
	LE:  "le",
	GT:  "gt",
	GE:  "ge",
}

// String returns the string representation of the operation.
func (op BinaryOp) String() string {
	if op >= 0 && op < BinaryOp(len(binaryOps)) && binaryOps[op] != "" {
		return binaryOps[op]
	}
	return fmt.Sprintf("BinaryOp<%d>", op)
}

// IsArithmetic returns true if op is an arithmetic operator.
func (op BinaryOp) IsArithmetic() bool {
	return op > arithmetic_op_begin && op < arithmetic_op_end
}

// IsCompare returns true if op is a comparison operator.
func (op BinaryOp) IsCompare() bool {
	return op > compare_op_begin && op < compare_op_end
}

// NewBinaryValue applies a binary operation to two values of the same kind.
func NewBinaryValue(op BinaryOp, lhs, rhs Value) Value {
	assert(lhs.Kind == rhs.Kind, "binary value kind mismatch: op=%s %s != %s", op, lhs.Kind, rhs.Kind)

	switch op {
	// Arithmetic operators
	case ADD:
		return lhs.Add(rhs)
	case SUB:
		return lhs.Sub(rhs)
	case MUL:
		return lhs.Mul(rhs)
	case DIV:
		return lhs.Div(rhs)
	case REM:
		return lhs.Rem(rhs)
	case AND:
		return lhs.And(rhs)
	case OR:
		return lhs.Or(rhs)
	case XOR:
		return lhs.Xor(rhs)
	case SHL:
		return lhs.Shl(rhs)
	case SHR:
		return lhs.Shr(rhs)

	// Comparison operators
	case EQ:
		return lhs.Eq(rhs)
	case NE:
		return lhs.Ne(rhs)
	case LT:
		return lhs.Lt(rhs)
	case LE:
		return lhs.Le(rhs)
	case GT:
		return lhs.Gt(rhs)
	case GE:
		return lhs.Ge(rhs)

	default:
		panic("unreachable")
	}
}

// Add returns the sum of v and other. Bounded kinds wrap modulo 2^width;
// unbounded integers and reals are exact; floats follow IEEE arithmetic.
func (v Value) Add(other Value) Value {
	assert(v.Kind == other.Kind, "add: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBounded:
		return Value{Kind: v.Kind, Int: truncate(new(big.Int).Add(v.Int, other.Int), v.Kind.Width)}
	case TagUnbounded:
		return Value{Kind: v.Kind, Int: new(big.Int).Add(v.Int, other.Int)}
	case TagFloat:
		return Value{Kind: v.Kind, Float32: v.Float32 + other.Float32}
	case TagDouble:
		return Value{Kind: v.Kind, Float64: v.Float64 + other.Float64}
	case TagReal:
		return Value{Kind: v.Kind, Real: new(big.Rat).Add(v.Real, other.Real)}
	default:
		panic(fmt.Sprintf("add: unsupported kind: %s", v.Kind))
	}
}

// Sub returns the difference of v and other.
func (v Value) Sub(other Value) Value {
	assert(v.Kind == other.Kind, "sub: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBounded:
		return Value{Kind: v.Kind, Int: truncate(new(big.Int).Sub(v.Int, other.Int), v.Kind.Width)}
	case TagUnbounded:
		return Value{Kind: v.Kind, Int: new(big.Int).Sub(v.Int, other.Int)}
	case TagFloat:
		return Value{Kind: v.Kind, Float32: v.Float32 - other.Float32}
	case TagDouble:
		return Value{Kind: v.Kind, Float64: v.Float64 - other.Float64}
	case TagReal:
		return Value{Kind: v.Kind, Real: new(big.Rat).Sub(v.Real, other.Real)}
	default:
		panic(fmt.Sprintf("sub: unsupported kind: %s", v.Kind))
	}
}

// Mul returns the product of v and other.
func (v Value) Mul(other Value) Value {
	assert(v.Kind == other.Kind, "mul: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBounded:
		return Value{Kind: v.Kind, Int: truncate(new(big.Int).Mul(v.Int, other.Int), v.Kind.Width)}
	case TagUnbounded:
		return Value{Kind: v.Kind, Int: new(big.Int).Mul(v.Int, other.Int)}
	case TagFloat:
		return Value{Kind: v.Kind, Float32: v.Float32 * other.Float32}
	case TagDouble:
		return Value{Kind: v.Kind, Float64: v.Float64 * other.Float64}
	case TagReal:
		return Value{Kind: v.Kind, Real: new(big.Rat).Mul(v.Real, other.Real)}
	default:
		panic(fmt.Sprintf("mul: unsupported kind: %s", v.Kind))
	}
}

// Div returns the quotient of v and other, truncated toward zero for integer
// kinds. Integer and rational division by zero yields zero; float division
// follows IEEE semantics.
func (v Value) Div(other Value) Value {
	assert(v.Kind == other.Kind, "div: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBounded:
		if unsignedOf(other).Sign() == 0 {
			return Value{Kind: v.Kind, Int: new(big.Int)}
		}
		if v.Kind.Signed {
			return Value{Kind: v.Kind, Int: truncate(new(big.Int).Quo(signedOf(v), signedOf(other)), v.Kind.Width)}
		}
		return Value{Kind: v.Kind, Int: new(big.Int).Quo(unsignedOf(v), unsignedOf(other))}
	case TagUnbounded:
		if other.Int.Sign() == 0 {
			return Value{Kind: v.Kind, Int: new(big.Int)}
		}
		return Value{Kind: v.Kind, Int: new(big.Int).Quo(v.Int, other.Int)}
	case TagFloat:
		return Value{Kind: v.Kind, Float32: v.Float32 / other.Float32}
	case TagDouble:
		return Value{Kind: v.Kind, Float64: v.Float64 / other.Float64}
	case TagReal:
		if other.Real.Sign() == 0 {
			return Value{Kind: v.Kind, Real: new(big.Rat)}
		}
		return Value{Kind: v.Kind, Real: new(big.Rat).Quo(v.Real, other.Real)}
	default:
		panic(fmt.Sprintf("div: unsupported kind: %s", v.Kind))
	}
}

// Rem returns the remainder of v and other for integer kinds, with the sign
// of the dividend. Remainder by zero yields the dividend.
func (v Value) Rem(other Value) Value {
	assert(v.Kind == other.Kind, "rem: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBounded:
		if unsignedOf(other).Sign() == 0 {
			return Value{Kind: v.Kind, Int: unsignedOf(v)}
		}
		if v.Kind.Signed {
			return Value{Kind: v.Kind, Int: truncate(new(big.Int).Rem(signedOf(v), signedOf(other)), v.Kind.Width)}
		}
		return Value{Kind: v.Kind, Int: new(big.Int).Rem(unsignedOf(v), unsignedOf(other))}
	case TagUnbounded:
		if other.Int.Sign() == 0 {
			return Value{Kind: v.Kind, Int: new(big.Int).Set(v.Int)}
		}
		return Value{Kind: v.Kind, Int: new(big.Int).Rem(v.Int, other.Int)}
	default:
		panic(fmt.Sprintf("rem: unsupported kind: %s", v.Kind))
	}
}

// And returns the logical AND for booleans and the bitwise AND for integer
// kinds.
func (v Value) And(other Value) Value {
	assert(v.Kind == other.Kind, "and: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBool:
		return NewBoolValue(v.Bool && other.Bool)
	case TagBounded:
		return Value{Kind: v.Kind, Int: truncate(new(big.Int).And(v.Int, other.Int), v.Kind.Width)}
	case TagUnbounded:
		return Value{Kind: v.Kind, Int: new(big.Int).And(v.Int, other.Int)}
	default:
		panic(fmt.Sprintf("and: unsupported kind: %s", v.Kind))
	}
}

// Or returns the logical OR for booleans and the bitwise OR for integer
// kinds.
func (v Value) Or(other Value) Value {
	assert(v.Kind == other.Kind, "or: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBool:
		return NewBoolValue(v.Bool || other.Bool)
	case TagBounded:
		return Value{Kind: v.Kind, Int: truncate(new(big.Int).Or(v.Int, other.Int), v.Kind.Width)}
	case TagUnbounded:
		return Value{Kind: v.Kind, Int: new(big.Int).Or(v.Int, other.Int)}
	default:
		panic(fmt.Sprintf("or: unsupported kind: %s", v.Kind))
	}
}

// Xor returns the logical XOR for booleans and the bitwise XOR for integer
// kinds.
func (v Value) Xor(other Value) Value {
	assert(v.Kind == other.Kind, "xor: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBool:
		return NewBoolValue(v.Bool != other.Bool)
	case TagBounded:
		return Value{Kind: v.Kind, Int: truncate(new(big.Int).Xor(v.Int, other.Int), v.Kind.Width)}
	case TagUnbounded:
		return Value{Kind: v.Kind, Int: new(big.Int).Xor(v.Int, other.Int)}
	default:
		panic(fmt.Sprintf("xor: unsupported kind: %s", v.Kind))
	}
}

// Shl returns v shifted left by other bits. Bounded kinds drop bits shifted
// beyond the width.
func (v Value) Shl(other Value) Value {
	assert(v.Kind == other.Kind, "shl: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBounded:
		n := shiftCount(unsignedOf(other), v.Kind.Width)
		return Value{Kind: v.Kind, Int: truncate(new(big.Int).Lsh(unsignedOf(v), n), v.Kind.Width)}
	case TagUnbounded:
		assert(other.Int.Sign() >= 0 && other.Int.IsUint64(), "shl: shift count out of range: %s", other.Int)
		return Value{Kind: v.Kind, Int: new(big.Int).Lsh(v.Int, uint(other.Int.Uint64()))}
	default:
		panic(fmt.Sprintf("shl: unsupported kind: %s", v.Kind))
	}
}

// Shr returns v shifted right by other bits: logical for unsigned kinds,
// arithmetic for signed and unbounded kinds.
func (v Value) Shr(other Value) Value {
	assert(v.Kind == other.Kind, "shr: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBounded:
		n := shiftCount(unsignedOf(other), v.Kind.Width)
		if v.Kind.Signed {
			return Value{Kind: v.Kind, Int: truncate(new(big.Int).Rsh(signedOf(v), n), v.Kind.Width)}
		}
		return Value{Kind: v.Kind, Int: new(big.Int).Rsh(unsignedOf(v), n)}
	case TagUnbounded:
		assert(other.Int.Sign() >= 0 && other.Int.IsUint64(), "shr: shift count out of range: %s", other.Int)
		return Value{Kind: v.Kind, Int: new(big.Int).Rsh(v.Int, uint(other.Int.Uint64()))}
	default:
		panic(fmt.Sprintf("shr: unsupported kind: %s", v.Kind))
	}
}

// shiftCount clamps a shift operand to limit. Shifts at or beyond the width
// fill the entire value.
func shiftCount(x *big.Int, limit uint) uint {
	if !x.IsUint64() || x.Uint64() > uint64(limit) {
		return limit
	}
	return uint(x.Uint64())
}

// Eq returns a boolean value reporting whether v equals other.
func (v Value) Eq(other Value) Value {
	assert(v.Kind == other.Kind, "eq: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBool:
		return NewBoolValue(v.Bool == other.Bool)
	case TagBounded:
		return NewBoolValue(unsignedOf(v).Cmp(unsignedOf(other)) == 0)
	case TagUnbounded:
		return NewBoolValue(v.Int.Cmp(other.Int) == 0)
	case TagFloat:
		return NewBoolValue(v.Float32 == other.Float32)
	case TagDouble:
		return NewBoolValue(v.Float64 == other.Float64)
	case TagReal:
		return NewBoolValue(v.Real.Cmp(other.Real) == 0)
	default:
		panic(fmt.Sprintf("eq: unsupported kind: %s", v.Kind))
	}
}

// Ne returns a boolean value reporting whether v differs from other.
func (v Value) Ne(other Value) Value {
	return NewBoolValue(!v.Eq(other).Bool)
}

// Lt returns a boolean value reporting whether v orders before other.
// Ordering is sign-aware per the operand kind.
func (v Value) Lt(other Value) Value { return NewBoolValue(compareValues(v, other) < 0) }

// Le returns a boolean value reporting whether v orders before or equals
// other.
func (v Value) Le(other Value) Value { return NewBoolValue(compareValues(v, other) <= 0) }

// Gt returns a boolean value reporting whether v orders after other.
func (v Value) Gt(other Value) Value { return NewBoolValue(compareValues(v, other) > 0) }

// Ge returns a boolean value reporting whether v orders after or equals
// other.
func (v Value) Ge(other Value) Value { return NewBoolValue(compareValues(v, other) >= 0) }

// compareValues orders two same-kind values like Cmp: negative, zero, or
// positive.
func compareValues(v, other Value) int {
	assert(v.Kind == other.Kind, "compare: kind mismatch: %s != %s", v.Kind, other.Kind)
	switch v.Kind.Tag {
	case TagBounded:
		if v.Kind.Signed {
			return signedOf(v).Cmp(signedOf(other))
		}
		return unsignedOf(v).Cmp(unsignedOf(other))
	case TagUnbounded:
		return v.Int.Cmp(other.Int)
	case TagFloat:
		switch {
		case v.Float32 < other.Float32:
			return -1
		case v.Float32 > other.Float32:
			return 1
		default:
			return 0
		}
	case TagDouble:
		switch {
		case v.Float64 < other.Float64:
			return -1
		case v.Float64 > other.Float64:
			return 1
		default:
			return 0
		}
	case TagReal:
		return v.Real.Cmp(other.Real)
	default:
		panic(fmt.Sprintf("compare: unsupported kind: %s", v.Kind))
	}
}

// Not returns the logical complement for booleans and the bitwise complement
// for integer kinds.
func (v Value) Not() Value {
	switch v.Kind.Tag {
	case TagBool:
		return NewBoolValue(!v.Bool)
	case TagBounded:
		return Value{Kind: v.Kind, Int: new(big.Int).Xor(unsignedOf(v), bitmask(v.Kind.Width))}
	case TagUnbounded:
		return Value{Kind: v.Kind, Int: new(big.Int).Not(v.Int)}
	default:
		panic(fmt.Sprintf("not: unsupported kind: %s", v.Kind))
	}
}

// Neg returns the arithmetic negation of v.
func (v Value) Neg() Value {
	switch v.Kind.Tag {
	case TagBounded:
		return Value{Kind: v.Kind, Int: truncate(new(big.Int).Neg(signedOf(v)), v.Kind.Width)}
	case TagUnbounded:
		return Value{Kind: v.Kind, Int: new(big.Int).Neg(v.Int)}
	case TagFloat:
		return Value{Kind: v.Kind, Float32: -v.Float32}
	case TagDouble:
		return Value{Kind: v.Kind, Float64: -v.Float64}
	case TagReal:
		return Value{Kind: v.Kind, Real: new(big.Rat).Neg(v.Real)}
	default:
		panic(fmt.Sprintf("neg: unsupported kind: %s", v.Kind))
	}
}

// Convert reinterprets v as kind. Integer kinds convert between one another,
// sign- or zero-extending per the source kind and truncating on narrowing;
// float and double convert between one another. Other conversions are not
// supported.
func (v Value) Convert(kind Kind) Value {
	if v.Kind == kind {
		return v
	}
	switch {
	case isIntegerKind(v.Kind) && isIntegerKind(kind):
		x := v.Int
		if v.Kind.Tag == TagBounded {
			if v.Kind.Signed {
				x = signedOf(v)
			} else {
				x = unsignedOf(v)
			}
		}
		if kind.Tag == TagBounded {
			return Value{Kind: kind, Int: truncate(x, kind.Width)}
		}
		return Value{Kind: kind, Int: new(big.Int).Set(x)}
	case v.Kind.Tag == TagFloat && kind.Tag == TagDouble:
		return Value{Kind: kind, Float64: float64(v.Float32)}
	case v.Kind.Tag == TagDouble && kind.Tag == TagFloat:
		return Value{Kind: kind, Float32: float32(v.Float64)}
	default:
		panic(fmt.Sprintf("convert: unsupported conversion: %s to %s", v.Kind, kind))
	}
}
