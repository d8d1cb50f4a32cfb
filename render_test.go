package tvec_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/benbjohnson/tvec"
)

func TestDialect_Supports(t *testing.T) {
	t.Run("Haskell", func(t *testing.T) {
		for _, kind := range []tvec.Kind{
			tvec.KindBool,
			tvec.KindInt8, tvec.KindInt16, tvec.KindInt32, tvec.KindInt64,
			tvec.KindUint8, tvec.KindUint16, tvec.KindUint32, tvec.KindUint64,
			tvec.KindInteger, tvec.KindReal, tvec.KindFloat, tvec.KindDouble,
		} {
			if !tvec.DialectHaskell.Supports(kind) {
				t.Fatalf("expected support: %s", kind)
			}
		}
		for _, kind := range []tvec.Kind{
			tvec.NewBoundedKind(4, false),
			tvec.NewBoundedKind(12, true),
			{Tag: tvec.TagString},
		} {
			if tvec.DialectHaskell.Supports(kind) {
				t.Fatalf("unexpected support: %s", kind)
			}
		}
	})

	t.Run("C", func(t *testing.T) {
		for _, kind := range []tvec.Kind{
			tvec.KindBool,
			tvec.KindInt8, tvec.KindUint64,
			tvec.KindFloat, tvec.KindDouble,
		} {
			if !tvec.DialectC.Supports(kind) {
				t.Fatalf("expected support: %s", kind)
			}
		}
		for _, kind := range []tvec.Kind{
			tvec.KindInteger,
			tvec.KindReal,
			tvec.NewBoundedKind(4, false),
		} {
			if tvec.DialectC.Supports(kind) {
				t.Fatalf("unexpected support: %s", kind)
			}
		}
	})

	t.Run("Forte", func(t *testing.T) {
		for _, kind := range []tvec.Kind{
			tvec.KindBool,
			tvec.KindUint8, tvec.KindInt64,
			tvec.NewBoundedKind(4, false),
			tvec.NewBoundedKind(13, true),
		} {
			if !tvec.DialectForte.Supports(kind) {
				t.Fatalf("expected support: %s", kind)
			}
		}
		for _, kind := range []tvec.Kind{
			tvec.KindInteger,
			tvec.KindReal,
			tvec.KindFloat,
			tvec.KindDouble,
		} {
			if tvec.DialectForte.Supports(kind) {
				t.Fatalf("unexpected support: %s", kind)
			}
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if tvec.Dialect("vhdl").Supports(tvec.KindBool) {
			t.Fatal("unexpected support")
		}
	})
}

func TestRender(t *testing.T) {
	set := tvec.NewTestVectorSet(&tvec.TestVector{
		Inputs: []tvec.Value{tvec.NewBoolValue(true)},
	})

	t.Run("Haskell", func(t *testing.T) {
		got, err := tvec.Render(tvec.DialectHaskell, "x", set, tvec.RenderOptions{})
		if err != nil {
			t.Fatal(err)
		}
		exp, err := tvec.RenderHaskell("x", set)
		if err != nil {
			t.Fatal(err)
		} else if got != exp {
			t.Fatalf("unexpected render:\n%s", got)
		}
	})

	t.Run("C", func(t *testing.T) {
		got, err := tvec.Render(tvec.DialectC, "x", set, tvec.RenderOptions{})
		if err != nil {
			t.Fatal(err)
		}
		exp, err := tvec.RenderC("x", set)
		if err != nil {
			t.Fatal(err)
		} else if got != exp {
			t.Fatalf("unexpected render:\n%s", got)
		}
	})

	t.Run("Forte", func(t *testing.T) {
		opt := tvec.RenderOptions{LittleEndian: true, InputSplits: []int{1}}
		got, err := tvec.Render(tvec.DialectForte, "x", set, opt)
		if err != nil {
			t.Fatal(err)
		}
		exp, err := tvec.RenderForte("x", true, []int{1}, nil, set)
		if err != nil {
			t.Fatal(err)
		} else if got != exp {
			t.Fatalf("unexpected render:\n%s", got)
		}
	})

	t.Run("UnknownDialect", func(t *testing.T) {
		_, err := tvec.Render(tvec.Dialect("vhdl"), "x", set, tvec.RenderOptions{})
		if err == nil || err.Error() != `tvec.Renderer: unknown dialect: "vhdl"` {
			t.Fatalf("unexpected error: %#v", err)
		}
	})
}

func TestRender_Names(t *testing.T) {
	set := tvec.NewTestVectorSet()

	t.Run("EmptyFallsBack", func(t *testing.T) {
		out, err := tvec.RenderForte("", false, nil, nil, set)
		if err != nil {
			t.Fatal(err)
		} else if !strings.Contains(out, "let testVectors = [];") {
			t.Fatalf("unexpected render:\n%s", out)
		}
	})

	t.Run("LeadingNonLetterPrefixed", func(t *testing.T) {
		out, err := tvec.RenderForte("8lanes", false, nil, nil, set)
		if err != nil {
			t.Fatal(err)
		} else if !strings.Contains(out, "let tv8lanes = [];") {
			t.Fatalf("unexpected render:\n%s", out)
		}
	})

	t.Run("LetterKeptVerbatim", func(t *testing.T) {
		out, err := tvec.RenderHaskell("alu", set)
		if err != nil {
			t.Fatal(err)
		} else if !strings.Contains(out, "module Alu (alu) where") {
			t.Fatalf("unexpected render:\n%s", out)
		}
	})
}

func TestRender_HeterogeneousSet(t *testing.T) {
	set := tvec.NewTestVectorSet(
		&tvec.TestVector{Inputs: []tvec.Value{tvec.NewUint8Value(1)}},
		&tvec.TestVector{Inputs: []tvec.Value{tvec.NewUint16Value(1)}},
	)

	t.Run("Haskell", func(t *testing.T) {
		if _, err := tvec.RenderHaskell("x", set); err != tvec.ErrHeterogeneousSet {
			t.Fatalf("unexpected error: %#v", err)
		}
	})

	t.Run("C", func(t *testing.T) {
		if _, err := tvec.RenderC("x", set); err != tvec.ErrHeterogeneousSet {
			t.Fatalf("unexpected error: %#v", err)
		}
	})

	// An unsupported kind anywhere in the set takes precedence over the
	// homogeneity check.
	t.Run("KindPrecedence", func(t *testing.T) {
		mixed := tvec.NewTestVectorSet(
			&tvec.TestVector{Inputs: []tvec.Value{tvec.NewIntegerValue(big.NewInt(1))}},
			&tvec.TestVector{Inputs: []tvec.Value{tvec.NewUint8Value(1)}},
		)
		_, err := tvec.RenderC("x", mixed)
		if _, ok := err.(*tvec.UnsupportedKindError); !ok {
			t.Fatalf("unexpected error: %#v", err)
		}
	})
}

func TestRender_UnsupportedKind(t *testing.T) {
	t.Run("HaskellNonStandardWidth", func(t *testing.T) {
		set := tvec.NewTestVectorSet(&tvec.TestVector{
			Inputs: []tvec.Value{tvec.NewIntValue(tvec.NewBoundedKind(4, false), big.NewInt(10))},
		})
		_, err := tvec.RenderHaskell("x", set)
		e, ok := err.(*tvec.UnsupportedKindError)
		if !ok {
			t.Fatalf("unexpected error: %#v", err)
		} else if got, exp := e.Dialect, tvec.DialectHaskell; got != exp {
			t.Fatalf("unexpected dialect: %s", got)
		} else if got, exp := e.Value.Kind, tvec.NewBoundedKind(4, false); got != exp {
			t.Fatalf("unexpected kind: %s", got)
		} else if got, exp := e.Error(), `tvec.Renderer: uint4 kind is not supported by the haskell dialect: (uint4 10)`; got != exp {
			t.Fatalf("unexpected error string: %s", got)
		}
	})

	t.Run("CUnbounded", func(t *testing.T) {
		set := tvec.NewTestVectorSet(&tvec.TestVector{
			Inputs: []tvec.Value{tvec.NewIntegerValue(big.NewInt(7))},
		})
		if _, err := tvec.RenderC("x", set); err == nil {
			t.Fatal("expected error")
		} else if e, ok := err.(*tvec.UnsupportedKindError); !ok || e.Dialect != tvec.DialectC {
			t.Fatalf("unexpected error: %#v", err)
		}
	})

	t.Run("ForteFloat", func(t *testing.T) {
		set := tvec.NewTestVectorSet(&tvec.TestVector{
			Inputs: []tvec.Value{tvec.NewFloat32Value(1.5)},
		})
		if _, err := tvec.RenderForte("x", false, []int{32}, nil, set); err == nil {
			t.Fatal("expected error")
		} else if e, ok := err.(*tvec.UnsupportedKindError); !ok || e.Dialect != tvec.DialectForte {
			t.Fatalf("unexpected error: %#v", err)
		}
	})

	t.Run("OutputsChecked", func(t *testing.T) {
		set := tvec.NewTestVectorSet(&tvec.TestVector{
			Inputs:  []tvec.Value{tvec.NewUint8Value(1)},
			Outputs: []tvec.Value{tvec.NewRealValue(big.NewRat(1, 2))},
		})
		if _, err := tvec.RenderC("x", set); err == nil {
			t.Fatal("expected error")
		} else if _, ok := err.(*tvec.UnsupportedKindError); !ok {
			t.Fatalf("unexpected error: %#v", err)
		}
	})
}
