package matrix_test

import (
	"testing"

	"github.com/katalvlaran/parmatmul/matrix"
)

// BenchmarkAllocate measures allocate+fill+release of the 1000×1000 CLI operand.
func BenchmarkAllocate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m, err := matrix.Allocate(1000, 1000)
		if err != nil {
			b.Fatalf("Allocate failed: %v", err)
		}
		if err = m.Release(); err != nil {
			b.Fatalf("Release failed: %v", err)
		}
	}
}

// BenchmarkAllClose measures a full-matrix tolerance comparison.
func BenchmarkAllClose(b *testing.B) {
	x, err := matrix.Allocate(512, 512)
	if err != nil {
		b.Fatalf("Allocate failed: %v", err)
	}
	y, err := x.Clone()
	if err != nil {
		b.Fatalf("Clone failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !matrix.AllClose(x, y, 1e-6) {
			b.Fatal("clone must compare close")
		}
	}
}
