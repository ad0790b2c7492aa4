package vector3d

import "math"

// Add returns the component-wise sum v + a.
func (v Vector3D[T]) Add(a Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{v.x + a.x, v.y + a.y, v.z + a.z}
}

// Sub returns the component-wise difference v - a.
func (v Vector3D[T]) Sub(a Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{v.x - a.x, v.y - a.y, v.z - a.z}
}

// Mul returns v scaled by s. Scale provides the scalar-first operand
// order.
func (v Vector3D[T]) Mul(s T) Vector3D[T] {
	return Vector3D[T]{s * v.x, s * v.y, s * v.z}
}

// Div returns v with every component divided by s. s == 0 is not
// guarded against.
func (v Vector3D[T]) Div(s T) Vector3D[T] {
	return Vector3D[T]{v.x / s, v.y / s, v.z / s}
}

// MulVec returns the component-wise (Hadamard) product of v and a.
// This is not the dot product; see ScalarProduct.
func (v Vector3D[T]) MulVec(a Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{v.x * a.x, v.y * a.y, v.z * a.z}
}

// DivVec returns the component-wise quotient v / a. Zero components
// of a are not guarded against.
func (v Vector3D[T]) DivVec(a Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{v.x / a.x, v.y / a.y, v.z / a.z}
}

// Equal reports whether v and a match exactly in every component.
// There is no tolerance; floating-point callers wanting approximate
// equality must round first.
func (v Vector3D[T]) Equal(a Vector3D[T]) bool {
	return v.x == a.x && v.y == a.y && v.z == a.z
}

// Scale returns a scaled by s.
func Scale[T Number](s T, a Vector3D[T]) Vector3D[T] {
	return a.Mul(s)
}

// ScalarProduct returns the dot product of a and b: the components of
// their Hadamard product summed, as a float64.
func ScalarProduct[T Number](a, b Vector3D[T]) float64 {
	c := a.MulVec(b)
	return float64(c.x + c.y + c.z)
}

// CrossProduct returns the cross product a × b. It is
// anti-commutative: CrossProduct(a, b) == CrossProduct(b, a).Mul(-1).
func CrossProduct[T Number](a, b Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{
		a.y*b.z - a.z*b.y,
		a.z*b.x - a.x*b.z,
		a.x*b.y - a.y*b.x,
	}
}

// Distance returns the Euclidean distance between the points a and b,
// computed directly from the component differences.
func Distance[T Number](a, b Vector3D[T]) float64 {
	dx, dy, dz := a.x-b.x, a.y-b.y, a.z-b.z
	return math.Sqrt(float64(dx*dx + dy*dy + dz*dz))
}
