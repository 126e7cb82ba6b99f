package tridiag_test

import (
	"testing"

	"github.com/jl-pkgs/bonanmodeling/tridiag"
)

// benchmarkSolve runs Solve on a diagonally dominant system of n unknowns.
func benchmarkSolve(b *testing.B, n int) {
	sub := make([]float64, n)
	diag := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			sub[i] = -1
		}
		if i < n-1 {
			sup[i] = -1
		}
		diag[i] = 4
		rhs[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tridiag.Solve(sub, diag, sup, rhs); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks a typical soil-column-sized system.
func BenchmarkSolve_Small(b *testing.B) { benchmarkSolve(b, 10) }

// BenchmarkSolve_Medium benchmarks a finely discretized column.
func BenchmarkSolve_Medium(b *testing.B) { benchmarkSolve(b, 120) }

// BenchmarkSolve_Large benchmarks an atypically deep system.
func BenchmarkSolve_Large(b *testing.B) { benchmarkSolve(b, 10000) }
