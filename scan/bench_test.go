package scan_test

import (
	"testing"

	"github.com/ayushran32/Error-404-Algovibe/scan"
)

// benchmarkLongest runs Longest on a wall of n segments where every
// seventh segment falls below the threshold.
func benchmarkLongest(b *testing.B, n int, opts ...scan.Option) {
	wall := make([]int, n)
	for i := range wall {
		wall[i] = 50
		if i%7 == 0 {
			wall[i] = 1
		}
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := scan.Longest(wall, 25, opts...); err != nil {
			b.Fatalf("Longest failed: %v", err)
		}
	}
}

// BenchmarkLongest_Small benchmarks a human-sized wall without observers.
func BenchmarkLongest_Small(b *testing.B) {
	benchmarkLongest(b, 32)
}

// BenchmarkLongest_Medium benchmarks a 1k wall without observers.
func BenchmarkLongest_Medium(b *testing.B) {
	benchmarkLongest(b, 1000)
}

// BenchmarkLongest_Observed includes per-event snapshot delivery.
func BenchmarkLongest_Observed(b *testing.B) {
	benchmarkLongest(b, 1000, scan.WithObserver(func(scan.Event) {}))
}
