package planarity_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-planar/builder"
	"github.com/katalvlaran/lvlath-planar/planarity"
)

func benchIsPlanar(b *testing.B, con builder.Constructor, opts ...planarity.Option) {
	g := build(b, con)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t, err := planarity.New(g, opts...)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = t.IsPlanar(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIsPlanar_Grid100 measures a planar 100×100 grid with tree storage.
func BenchmarkIsPlanar_Grid100(b *testing.B) {
	benchIsPlanar(b, builder.Grid(100, 100))
}

// BenchmarkIsPlanar_Grid100List measures the same grid with list storage.
func BenchmarkIsPlanar_Grid100List(b *testing.B) {
	benchIsPlanar(b, builder.Grid(100, 100), planarity.WithListStorage())
}

// BenchmarkIsPlanar_Wheel5000 measures a wheel, whose hub collects every back edge.
func BenchmarkIsPlanar_Wheel5000(b *testing.B) {
	benchIsPlanar(b, builder.Wheel(5000))
}

// BenchmarkKuratowski_Petersen measures isolation plus minimization.
func BenchmarkKuratowski_Petersen(b *testing.B) {
	g := build(b, builder.Petersen())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planarity.Kuratowski(g); err != nil {
			b.Fatal(err)
		}
	}
}
