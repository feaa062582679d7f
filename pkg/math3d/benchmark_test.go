package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1.0, 2.0, 3.0))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := Translate(V3(1.0, 2.0, 3.0)).Mul(RotateY(0.5))
	v := V3(1.0, 2.0, 3.0)

	for b.Loop() {
		_ = m.MulVec3(v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1.0, 2.0, 3.0)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3NormalizeFloat32(b *testing.B) {
	v := V3[float32](1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1.0, 2.0, 3.0)
	v2 := V3(4.0, 5.0, 6.0)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkVec3Reflect(b *testing.B) {
	v := V3(1.0, -1.0, 0.5)
	n := V3(0.0, 1.0, 0.0)

	for b.Loop() {
		_ = v.Reflect(n)
	}
}
