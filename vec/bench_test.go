// SPDX-License-Identifier: MIT

// Benchmarks for the hot vector operations, float32 and float64.
package vec_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/vec"
)

// sinks to defeat dead-code elimination
var (
	sinkV3  vec.Vec3[float64]
	sinkV3f vec.Vec3[float32]
	sinkF   float64
	sinkF32 float32
)

func BenchmarkVec3_Cross(b *testing.B) {
	v, w := vec.New3(1.0, 2, 3), vec.New3(-3.0, 0.5, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkV3 = v.Cross(w)
	}
}

func BenchmarkVec3_Dot(b *testing.B) {
	v, w := vec.New3(1.0, 2, 3), vec.New3(-3.0, 0.5, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF = v.Dot(w)
	}
}

func BenchmarkVec3_Norm(b *testing.B) {
	b.Run("float64", func(b *testing.B) {
		v := vec.New3(1.0, 2, 3)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkV3 = v.Norm()
		}
	})
	b.Run("float32", func(b *testing.B) {
		v := vec.New3[float32](1, 2, 3)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkV3f = v.Norm()
		}
	})
}

func BenchmarkVec4_Len(b *testing.B) {
	v := vec.New4[float32](1, 2, 3, 4)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = v.Len()
	}
}
