package tvec_test

import (
	"path/filepath"
	"testing"

	"github.com/benbjohnson/tvec"
	"golang.org/x/tools/txtar"
)

// MustGenerate generates n vectors from program. Fatal on error.
func MustGenerate(tb testing.TB, n int, program tvec.Program) *tvec.TestVectorSet {
	tb.Helper()
	set, err := tvec.Generate(n, program)
	if err != nil {
		tb.Fatal(err)
	}
	return set
}

// MustGolden returns the contents of the named file in the render golden
// archive. Fatal if the archive cannot be read or the file is missing.
func MustGolden(tb testing.TB, name string) string {
	tb.Helper()
	archive, err := txtar.ParseFile(filepath.Join("testdata", "render.txtar"))
	if err != nil {
		tb.Fatal(err)
	}
	for _, file := range archive.Files {
		if file.Name == name {
			return string(file.Data)
		}
	}
	tb.Fatalf("golden file not found: %s", name)
	return ""
}

// Vectors returns the contents of set in order.
func Vectors(set *tvec.TestVectorSet) []*tvec.TestVector {
	vectors := make([]*tvec.TestVector, set.Len())
	for i := 0; i < set.Len(); i++ {
		vectors[i] = set.At(i)
	}
	return vectors
}

// CountingProgram wraps a program and counts its runs.
type CountingProgram struct {
	tvec.Program
	N int
}

func (p *CountingProgram) Run() (*tvec.Trace, error) {
	p.N++
	return p.Program.Run()
}

// TraceProgram replays a canned sequence of traces, one per run, cycling
// when the sequence is exhausted.
type TraceProgram struct {
	Traces []*tvec.Trace
	i      int
}

func (p *TraceProgram) Run() (*tvec.Trace, error) {
	trace := p.Traces[p.i%len(p.Traces)]
	p.i++
	return trace, nil
}
