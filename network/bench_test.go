package network_test

import (
	"testing"

	"github.com/jpelchat/shovelcat/network"
)

// benchmarkBuild runs Build with the given polygon size, failing on
// unexpected errors.
func benchmarkBuild(b *testing.B, sides int) {
	opts := network.DefaultOptions()
	opts.Sides = sides

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := network.Build(opts); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_Hexagon benchmarks the canonical 6-sided arrangement.
func BenchmarkBuild_Hexagon(b *testing.B) {
	benchmarkBuild(b, 6)
}

// BenchmarkBuild_Large benchmarks a 96-sided arrangement (dense crossings).
func BenchmarkBuild_Large(b *testing.B) {
	benchmarkBuild(b, 96)
}
