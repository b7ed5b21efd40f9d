// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/plexus/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM  *matrix.Matrix[matrix.D64, matrix.D64, float64]
	sinkMT *matrix.Matrix[matrix.D128, matrix.D64, float64]
	sinkF  float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(1337))
	x := randFloats[matrix.D64, matrix.D64](rng)
	y := randFloats[matrix.D64, matrix.D64](rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = matrix.Add(x, y)
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(4242))
	x := randFloats[matrix.D64, matrix.D64](rng)
	y := randFloats[matrix.D64, matrix.D64](rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = matrix.Mul(x, y)
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	x := randFloats[matrix.D64, matrix.D128](rand.New(rand.NewSource(11)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMT = x.T()
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	x := randFloats[matrix.D64, matrix.D64](rand.New(rand.NewSource(22)))
	x.AddInPlace(matrix.Scale(matrix.Identity[matrix.D64, float64](), 64)) // keep pivots away from zero
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = matrix.Det(x)
	}
}

func BenchmarkAddRowVector(b *testing.B) {
	b.ReportAllocs()
	rng := rand.New(rand.NewSource(33))
	x := randFloats[matrix.D64, matrix.D64](rng)
	v := randFloats[matrix.D1, matrix.D64](rng)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = x.AddRowVector(v)
	}
}
