// Package math3d provides generic 3D math primitives for tinyray.
//
// Every type is parameterised over Float so a scene can be traced in single
// or double precision. Single precision goes through math32, so float32
// results never depend on a float64 intermediate.
package math3d

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// Float is the set of element types vectors and matrices can hold.
type Float interface {
	~float32 | ~float64
}

// single reports whether T is a 32-bit float, including named types
// whose underlying type is float32.
func single[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Sqrt returns the square root of x in x's own precision.
func Sqrt[T Float](x T) T {
	if single[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan[T Float](x T) T {
	if single[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

// Pow returns x**y.
func Pow[T Float](x, y T) T {
	if single[T]() {
		return T(math32.Pow(float32(x), float32(y)))
	}
	return T(math.Pow(float64(x), float64(y)))
}

// Sincos returns the sine and cosine of x.
func Sincos[T Float](x T) (sin, cos T) {
	if single[T]() {
		f := float32(x)
		return T(math32.Sin(f)), T(math32.Cos(f))
	}
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// MaxValue returns the largest finite value representable by T.
func MaxValue[T Float]() T {
	if single[T]() {
		return T(math.MaxFloat32)
	}
	m := math.MaxFloat64
	return T(m)
}
