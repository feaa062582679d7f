package math3d

// Vec3 represents a 3D vector, point or linear colour.
type Vec3[T Float] struct {
	X, Y, Z T
}

// V3 creates a new Vec3.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3[T Float]() Vec3[T] {
	return Vec3[T]{}
}

// One3 returns (1, 1, 1), which doubles as white.
func One3[T Float]() Vec3[T] {
	return Vec3[T]{1, 1, 1}
}

// Add returns the vector sum a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Mul returns the component-wise product a * b.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s.
func (a Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3[T]) Len() T {
	return Sqrt(a.Dot(a))
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3[T]) LenSq() T {
	return a.Dot(a)
}

// Normalize returns the unit vector in the same direction.
// The zero vector has no direction; normalizing it yields NaN components.
func (a Vec3[T]) Normalize() Vec3[T] {
	return a.Div(a.Len())
}

// Negate returns the negated vector.
func (a Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-a.X, -a.Y, -a.Z}
}

// Distance returns the distance between two points.
func (a Vec3[T]) Distance(b Vec3[T]) T {
	return a.Sub(b).Len()
}

// Reflect returns the mirror reflection of a about normal n.
func (a Vec3[T]) Reflect(n Vec3[T]) Vec3[T] {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// MaxComponent returns the largest of the three components.
func (a Vec3[T]) MaxComponent() T {
	return max(a.X, a.Y, a.Z)
}

// Convert returns v with its components converted to precision U.
func Convert[U, T Float](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v.X), U(v.Y), U(v.Z)}
}
