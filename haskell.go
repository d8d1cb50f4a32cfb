package tvec

import (
	"bytes"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Haskell type names for fixed-width integer kinds, by width.
var (
	haskellIntTypes  = map[uint]string{Width8: "Int8", Width16: "Int16", Width32: "Int32", Width64: "Int64"}
	haskellWordTypes = map[uint]string{Width8: "Word8", Width16: "Word16", Width32: "Word32", Width64: "Word64"}
)

// RenderHaskell emits set as a standalone Haskell module binding name to a
// list of input/output tuples. Imports are selected by scanning the first
// vector's values, so every vector in the set must share the first vector's
// kind sequences.
func RenderHaskell(name string, set *TestVectorSet) (string, error) {
	if err := checkKinds(DialectHaskell, set); err != nil {
		return "", err
	} else if err := validateHomogeneous(set); err != nil {
		return "", err
	}
	name = normalizeName(name)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "-- Generated test vectors.")
	fmt.Fprintf(&buf, "module %s (%s) where\n", capitalize(name), name)

	if set.Len() == 0 {
		fmt.Fprintln(&buf, "")
		fmt.Fprintf(&buf, "%s :: [a]\n", name)
		fmt.Fprintf(&buf, "%s = []\n", name)
		return buf.String(), nil
	}

	first := set.At(0)
	if imports := haskellImports(first); len(imports) > 0 {
		fmt.Fprintln(&buf, "")
		for _, imp := range imports {
			fmt.Fprintf(&buf, "import %s\n", imp)
		}
	}

	fmt.Fprintln(&buf, "")
	fmt.Fprintf(&buf, "%s :: [(%s, %s)]\n", name, haskellSideType(first.Inputs), haskellSideType(first.Outputs))

	pad := strings.Repeat(" ", len(name)+3)
	for i := 0; i < set.Len(); i++ {
		vector := set.At(i)
		elem := fmt.Sprintf("(%s, %s)", haskellSide(vector.Inputs), haskellSide(vector.Outputs))
		if i == 0 {
			fmt.Fprintf(&buf, "%s = [ %s\n", name, elem)
		} else {
			fmt.Fprintf(&buf, "%s, %s\n", pad, elem)
		}
	}
	fmt.Fprintf(&buf, "%s]\n", pad)

	return buf.String(), nil
}

// haskellImports returns the import lines required by the first vector's
// combined input and output values: Data.Int for signed fixed-width kinds,
// Data.Word for unsigned fixed-width kinds wider than one bit, and
// Data.Ratio for rational kinds.
func haskellImports(vector *TestVector) []string {
	var hasInt, hasWord, hasRatio bool
	for _, values := range [][]Value{vector.Inputs, vector.Outputs} {
		for _, value := range values {
			switch {
			case value.Kind.Tag == TagBounded && value.Kind.Signed:
				hasInt = true
			case value.Kind.Tag == TagBounded && value.Kind.Width > 1:
				hasWord = true
			case value.Kind.Tag == TagReal:
				hasRatio = true
			}
		}
	}

	var imports []string
	if hasInt {
		imports = append(imports, "Data.Int")
	}
	if hasRatio {
		imports = append(imports, "Data.Ratio")
	}
	if hasWord {
		imports = append(imports, "Data.Word")
	}
	return imports
}

// haskellSideType returns the type text for one side of a vector: group
// types joined per the shared tuple rule, with multi-element groups as list
// types.
func haskellSideType(values []Value) string {
	groups := groupByKind(values)
	texts := make([]string, len(groups))
	for i, group := range groups {
		text := haskellType(group.kind)
		if len(group.values) > 1 {
			text = "[" + text + "]"
		}
		texts[i] = text
	}
	return joinTuple(texts)
}

// haskellSide returns the value text for one side of a vector.
func haskellSide(values []Value) string {
	groups := groupByKind(values)
	texts := make([]string, len(groups))
	for i, group := range groups {
		if len(group.values) == 1 {
			texts[i] = haskellValue(group.values[0])
			continue
		}
		elems := make([]string, len(group.values))
		for j, value := range group.values {
			elems[j] = haskellValue(value)
		}
		texts[i] = "[" + strings.Join(elems, ", ") + "]"
	}
	return joinTuple(texts)
}

// haskellType returns the Haskell type name for a kind.
func haskellType(kind Kind) string {
	switch kind.Tag {
	case TagBool:
		return "Bool"
	case TagBounded:
		if kind.Signed {
			return haskellIntTypes[kind.Width]
		}
		return haskellWordTypes[kind.Width]
	case TagUnbounded:
		return "Integer"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagReal:
		return "Rational"
	default:
		panic(fmt.Sprintf("haskell type: unsupported kind: %s", kind))
	}
}

// haskellValue returns the literal text for a value. Integers render in
// sign-aware hexadecimal, zero-padded to the kind's width; floats render in
// round-trip-safe hexadecimal form; booleans are left-padded so columns
// align across vectors.
func haskellValue(value Value) string {
	switch value.Kind.Tag {
	case TagBool:
		if value.Bool {
			return " True"
		}
		return "False"
	case TagBounded:
		digits := int(value.Kind.Width / 4)
		if value.Kind.Signed {
			x := signedOf(value)
			if x.Sign() < 0 {
				return fmt.Sprintf("-0x%0*x", digits, new(big.Int).Neg(x))
			}
			return fmt.Sprintf("0x%0*x", digits, x)
		}
		return fmt.Sprintf("0x%0*x", digits, unsignedOf(value))
	case TagUnbounded:
		if value.Int.Sign() < 0 {
			return fmt.Sprintf("-0x%x", new(big.Int).Neg(value.Int))
		}
		return fmt.Sprintf("0x%x", value.Int)
	case TagFloat:
		return strconv.FormatFloat(float64(value.Float32), 'x', -1, 32)
	case TagDouble:
		return strconv.FormatFloat(value.Float64, 'x', -1, 64)
	case TagReal:
		return fmt.Sprintf("%s %% %s", value.Real.Num(), value.Real.Denom())
	default:
		panic(fmt.Sprintf("haskell value: unsupported kind: %s", value.Kind))
	}
}
