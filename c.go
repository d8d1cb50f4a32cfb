package tvec

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// C type names, literal suffixes, and hex digit counts for fixed-width
// integer kinds, by width.
var (
	cIntTypes     = map[uint]string{Width8: "int8_t", Width16: "int16_t", Width32: "int32_t", Width64: "int64_t"}
	cUintTypes    = map[uint]string{Width8: "uint8_t", Width16: "uint16_t", Width32: "uint32_t", Width64: "uint64_t"}
	cIntSuffixes  = map[uint]string{Width8: "", Width16: "", Width32: "L", Width64: "LL"}
	cUintSuffixes = map[uint]string{Width8: "U", Width16: "U", Width32: "UL", Width64: "ULL"}
	cHexDigits    = map[uint]int{Width8: 2, Width16: 4, Width32: 8, Width64: 16}
)

// The 64-bit minimum has no direct decimal spelling in C.
var minInt64 = big.NewInt(-1 << 63)

// RenderC emits set as a standalone C program: a record type with input
// fields i0, i1, … and output fields o0, o1, …, a static array of all
// vectors, a length constant, and a main that prints each record. Record
// layout is derived from the first vector, so every vector in the set must
// share the first vector's kind sequences, and an empty set cannot be
// rendered.
func RenderC(name string, set *TestVectorSet) (string, error) {
	if err := checkKinds(DialectC, set); err != nil {
		return "", err
	} else if err := validateHomogeneous(set); err != nil {
		return "", err
	}
	if set.Len() == 0 {
		return "", fmt.Errorf("tvec.Renderer: c dialect requires at least one test vector")
	}
	name = normalizeName(name)
	first := set.At(0)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "/* Generated test vectors. */")
	fmt.Fprintln(&buf, "#include <inttypes.h>")
	if cNeedsMath(first) {
		fmt.Fprintln(&buf, "#include <math.h>")
	}
	fmt.Fprintln(&buf, "#include <stdbool.h>")
	fmt.Fprintln(&buf, "#include <stdint.h>")
	fmt.Fprintln(&buf, "#include <stdio.h>")
	fmt.Fprintln(&buf, "")

	fmt.Fprintln(&buf, "typedef struct {")
	for i, value := range first.Inputs {
		fmt.Fprintf(&buf, "    %s i%d;\n", cType(value.Kind), i)
	}
	for i, value := range first.Outputs {
		fmt.Fprintf(&buf, "    %s o%d;\n", cType(value.Kind), i)
	}
	fmt.Fprintf(&buf, "} %s_vector;\n", name)
	fmt.Fprintln(&buf, "")

	fmt.Fprintf(&buf, "static const %s_vector %s_vectors[] = {\n", name, name)
	for i := 0; i < set.Len(); i++ {
		vector := set.At(i)
		fields := make([]string, 0, len(vector.Inputs)+len(vector.Outputs))
		for _, value := range vector.Inputs {
			fields = append(fields, cValue(value))
		}
		for _, value := range vector.Outputs {
			fields = append(fields, cValue(value))
		}
		fmt.Fprintf(&buf, "    {%s},\n", strings.Join(fields, ", "))
	}
	fmt.Fprintln(&buf, "};")
	fmt.Fprintln(&buf, "")

	fmt.Fprintf(&buf, "static const size_t %s_length = %d;\n", name, set.Len())
	fmt.Fprintln(&buf, "")

	var specs, args []string
	for i, value := range first.Inputs {
		spec, arg := cFieldSpec(fmt.Sprintf("i%d", i), value.Kind)
		specs = append(specs, spec)
		args = append(args, arg)
	}
	for i, value := range first.Outputs {
		spec, arg := cFieldSpec(fmt.Sprintf("o%d", i), value.Kind)
		specs = append(specs, spec)
		args = append(args, arg)
	}

	fmt.Fprintln(&buf, "int main(void) {")
	fmt.Fprintf(&buf, "    for (size_t i = 0; i < %s_length; i++) {\n", name)
	fmt.Fprintf(&buf, "        const %s_vector *v = &%s_vectors[i];\n", name, name)
	fmt.Fprintf(&buf, "        printf(\"%s\\n\", %s);\n", strings.Join(specs, " "), strings.Join(args, ", "))
	fmt.Fprintln(&buf, "    }")
	fmt.Fprintln(&buf, "    return 0;")
	fmt.Fprintln(&buf, "}")

	return buf.String(), nil
}

// cNeedsMath returns true if the record carries floating kinds, whose
// non-finite literals need math.h.
func cNeedsMath(vector *TestVector) bool {
	for _, values := range [][]Value{vector.Inputs, vector.Outputs} {
		for _, value := range values {
			if value.Kind.Tag == TagFloat || value.Kind.Tag == TagDouble {
				return true
			}
		}
	}
	return false
}

// cType returns the C type name for a kind.
func cType(kind Kind) string {
	switch kind.Tag {
	case TagBool:
		return "bool"
	case TagBounded:
		if kind.Signed {
			return cIntTypes[kind.Width]
		}
		return cUintTypes[kind.Width]
	case TagFloat:
		return "float"
	case TagDouble:
		return "double"
	default:
		panic(fmt.Sprintf("c type: unsupported kind: %s", kind))
	}
}

// cFieldSpec returns the printf conversion text and argument expression for
// one record field. The conversion text is spliced into a C string literal,
// so fixed-width kinds embed their PRI macros via literal concatenation.
func cFieldSpec(field string, kind Kind) (spec, arg string) {
	arg = "v->" + field
	switch kind.Tag {
	case TagBool:
		return field + "=%s", arg + ` ? "true" : "false"`
	case TagBounded:
		if kind.Signed {
			return fmt.Sprintf(`%s=%%" PRId%d "%s`, field, kind.Width, cIntSuffixes[kind.Width]), arg
		}
		return fmt.Sprintf(`%s=0x%%0%d" PRIx%d "%s`, field, cHexDigits[kind.Width], kind.Width, cUintSuffixes[kind.Width]), arg
	case TagFloat, TagDouble:
		return field + "=%f", arg
	default:
		panic(fmt.Sprintf("c driver: unsupported kind: %s", kind))
	}
}

// cValue returns the initializer literal for a value. Unsigned integers
// render as zero-padded hexadecimal with a width-matched suffix, signed
// integers as plain decimal, and floats as decimal literals with math.h
// spellings for the non-finite values.
func cValue(value Value) string {
	switch value.Kind.Tag {
	case TagBool:
		return strconv.FormatBool(value.Bool)
	case TagBounded:
		if value.Kind.Signed {
			x := signedOf(value)
			if value.Kind.Width == Width64 && x.Cmp(minInt64) == 0 {
				return "(-9223372036854775807LL - 1)"
			}
			return x.String()
		}
		return fmt.Sprintf("0x%0*x%s", cHexDigits[value.Kind.Width], unsignedOf(value), cUintSuffixes[value.Kind.Width])
	case TagFloat:
		return cFloatLiteral(float64(value.Float32), 32, "F")
	case TagDouble:
		return cFloatLiteral(value.Float64, 64, "")
	default:
		panic(fmt.Sprintf("c value: unsupported kind: %s", value.Kind))
	}
}

// cFloatLiteral renders f as a C floating literal, rounded through bitSize
// so the text round-trips to the same value. A bare integer form gets a
// trailing ".0" since C rejects integer text with a floating suffix.
func cFloatLiteral(f float64, bitSize int, suffix string) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INFINITY"
	case math.IsInf(f, -1):
		return "-INFINITY"
	}

	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s + suffix
}
