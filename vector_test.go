package tvec_test

import (
	"testing"

	"github.com/benbjohnson/tvec"
	"github.com/google/go-cmp/cmp"
)

func TestTestVector_String(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		vector := &tvec.TestVector{
			Inputs:  []tvec.Value{tvec.NewBoolValue(true), tvec.NewUint8Value(5)},
			Outputs: []tvec.Value{tvec.NewUint8Value(10)},
		}
		if got, exp := vector.String(), "((bool true) (uint8 5)) => ((uint8 10))"; got != exp {
			t.Fatalf("unexpected string: %s", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		vector := &tvec.TestVector{}
		if got, exp := vector.String(), "() => ()"; got != exp {
			t.Fatalf("unexpected string: %s", got)
		}
	})
}

func TestTestVectorSet(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		set := tvec.NewTestVectorSet()
		if got, exp := set.Len(), 0; got != exp {
			t.Fatalf("unexpected length: %d", got)
		}
	})

	t.Run("Order", func(t *testing.T) {
		v0 := &tvec.TestVector{Inputs: []tvec.Value{tvec.NewUint8Value(1)}}
		v1 := &tvec.TestVector{Inputs: []tvec.Value{tvec.NewUint8Value(2)}}

		set := tvec.NewTestVectorSet(v0, v1)
		if got, exp := set.Len(), 2; got != exp {
			t.Fatalf("unexpected length: %d", got)
		} else if set.At(0) != v0 || set.At(1) != v1 {
			t.Fatal("unexpected order")
		}
	})

	t.Run("Dump", func(t *testing.T) {
		set := tvec.NewTestVectorSet(
			&tvec.TestVector{},
			&tvec.TestVector{Inputs: []tvec.Value{tvec.NewBoolValue(true)}},
		)

		exp := "TEST VECTOR SET\n" +
			"===============\n" +
			"0. () => ()\n" +
			"1. ((bool true)) => ()\n"
		if diff := cmp.Diff(set.Dump(), exp); diff != "" {
			t.Fatal(diff)
		}
	})
}
