package array

import "testing"

func BenchmarkIndexChain3D(b *testing.B) {
	a := MustNew3[float32](Shape{32, 32, 32})
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		*a.Index(n & 31).Index(7).Index(3) += 1
	}
}

func BenchmarkIndexChain3DChecked(b *testing.B) {
	a := MustNew3[float32](Shape{32, 32, 32}, WithBoundsCheck(true))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		*a.Index(n & 31).Index(7).Index(3) += 1
	}
}

func BenchmarkRowSweep(b *testing.B) {
	a := MustNew2[float64](Shape{256, 256})
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		row := a.Index(n & 255)
		for j := 0; j < 256; j++ {
			*row.Index(j) += 1
		}
	}
}

func BenchmarkNew3(b *testing.B) {
	for n := 0; n < b.N; n++ {
		a := MustNew3[float32](Shape{16, 16, 16})
		a.Release()
	}
}
