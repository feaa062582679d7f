package math3d

// Vec2 represents a 2D vector.
type Vec2[T Float] struct {
	X, Y T
}

// V2 creates a new Vec2.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X * b.X, a.Y * b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length of the vector.
func (a Vec2[T]) Len() T {
	return Sqrt(a.Dot(a))
}

// Normalize returns the unit vector in the same direction.
// Like Vec3.Normalize, the zero vector is not special-cased.
func (a Vec2[T]) Normalize() Vec2[T] {
	l := a.Len()
	return Vec2[T]{a.X / l, a.Y / l}
}
