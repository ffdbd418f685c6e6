// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic index-derived fill for reproducibility.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/katalvlaran/gridmat/parallel"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkV []float64
	sinkF float64
	sinkI int64
)

// benchFilled builds an n×m matrix with deterministic values.
func benchFilled(b *testing.B, n, m, seed int) *matrix.Matrix[float64] {
	b.Helper()
	mat, err := matrix.New[float64](n, m)
	if err != nil {
		b.Fatal(err)
	}
	mat.UpdateAllIndexed(func(i, j int) float64 {
		return float64((i*31+j*17+seed)%97) / 7
	})

	return mat
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFilled(b, n, n, 1337)
			B := benchFilled(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFilled(b, n, n+8, 7) // rectangular
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Transpose()
			}
		})
	}
}

func BenchmarkRotate90(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFilled(b, n, n+8, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Rotate90()
			}
		})
	}
}

func BenchmarkReshape(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFilled(b, n, n, 23)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Reshape(n/2, n*2)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkUpdateAll(b *testing.B) {
	for _, mode := range []parallel.Mode{parallel.ModeNever, parallel.ModeAlways} {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("mode=%d/n=%d", mode, n), func(b *testing.B) {
				parallel.SetMode(mode)
				defer parallel.SetMode(parallel.ModeDefault)
				A := benchFilled(b, n, n, 31)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					A.UpdateAll(func(v float64) float64 { return v*1.0001 + 0.5 })
				}
			})
		}
	}
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 96, 128} { // limits it so that CI doesn't burn
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFilled(b, n, n, 101)
			B := benchFilled(b, n, n, 202)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, err := matrix.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = C
			}
		})
	}
}

func BenchmarkStreamH(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFilled(b, n, n, 47)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := A.StreamH()
				var sum float64
				for s.HasNext() {
					v, err := s.Next()
					if err != nil {
						b.Fatal(err)
					}
					sum += v
				}
				sinkF = sum
			}
		})
	}
}

func BenchmarkStreamAdvance(b *testing.B) {
	b.ReportAllocs()
	A := benchFilled(b, 512, 512, 53)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := A.StreamH()
		skipped, err := s.Advance(A.Count() - 1)
		if err != nil {
			b.Fatal(err)
		}
		sinkI = skipped
	}
}

func BenchmarkToArray(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchFilled(b, n, n, 59)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = A.StreamH().ToArray()
			}
		})
	}
}
