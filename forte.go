package tvec

import (
	"bytes"
	"fmt"
	"strings"
)

// RenderForte emits set as a Forte-style let binding of input/output tuples.
// Each side of a vector is bit-blasted into one contiguous bit string,
// reversed when isLittleEndian is set, and re-partitioned by the side's
// split widths: a width-1 split becomes a boolean token and a wider split
// becomes a sized bit literal.
func RenderForte(name string, isLittleEndian bool, inputSplits, outputSplits []int, set *TestVectorSet) (string, error) {
	if err := checkSplits("input", inputSplits); err != nil {
		return "", err
	} else if err := checkSplits("output", outputSplits); err != nil {
		return "", err
	}
	if err := checkKinds(DialectForte, set); err != nil {
		return "", err
	}
	name = normalizeName(name)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Generated test vectors.")

	if set.Len() == 0 {
		fmt.Fprintf(&buf, "let %s = [];\n", name)
		return buf.String(), nil
	}

	pad := strings.Repeat(" ", len(name)+7)
	for i := 0; i < set.Len(); i++ {
		vector := set.At(i)

		in, err := forteSide("input", vector.Inputs, inputSplits, isLittleEndian)
		if err != nil {
			return "", err
		}
		out, err := forteSide("output", vector.Outputs, outputSplits, isLittleEndian)
		if err != nil {
			return "", err
		}

		elem := fmt.Sprintf("(%s, %s)", in, out)
		if i == 0 {
			fmt.Fprintf(&buf, "let %s = [ %s\n", name, elem)
		} else {
			fmt.Fprintf(&buf, "%s, %s\n", pad, elem)
		}
	}
	fmt.Fprintf(&buf, "%s];\n", pad)

	return buf.String(), nil
}

// checkSplits verifies every declared split width is positive.
func checkSplits(side string, splits []int) error {
	for _, width := range splits {
		if width <= 0 {
			return fmt.Errorf("tvec.Renderer: %s split width must be positive: %d", side, width)
		}
	}
	return nil
}

// forteSide blasts one side of a vector and regroups the bits by the side's
// split widths. The widths must exactly exhaust the blasted bits.
func forteSide(side string, values []Value, splits []int, isLittleEndian bool) (string, error) {
	var bits []byte
	for _, value := range values {
		bits = blastValue(bits, value)
	}
	if isLittleEndian {
		reverseBits(bits)
	}

	want := 0
	for _, width := range splits {
		want += width
	}
	if want != len(bits) {
		return "", &SplitMismatchError{Side: side, Want: want, Got: len(bits)}
	}

	tokens := make([]string, len(splits))
	for i, width := range splits {
		tokens[i] = forteToken(bits[:width])
		bits = bits[width:]
	}
	return joinTuple(tokens), nil
}

// blastValue appends the bit pattern of value, most significant bit first.
// Fixed-width integers blast as two's complement.
func blastValue(bits []byte, value Value) []byte {
	switch value.Kind.Tag {
	case TagBool:
		if value.Bool {
			return append(bits, '1')
		}
		return append(bits, '0')
	case TagBounded:
		u := unsignedOf(value)
		for i := int(value.Kind.Width) - 1; i >= 0; i-- {
			bits = append(bits, '0'+byte(u.Bit(i)))
		}
		return bits
	default:
		panic(fmt.Sprintf("bit blast: unsupported kind: %s", value.Kind))
	}
}

func reverseBits(bits []byte) {
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
}

// forteToken renders one split group: a single bit becomes a boolean token
// and a wider group becomes a sized bit literal.
func forteToken(bits []byte) string {
	if len(bits) == 1 {
		if bits[0] == '1' {
			return "T"
		}
		return "F"
	}
	return fmt.Sprintf("%d'b%s", len(bits), bits)
}
