// Package vector3d provides a generic three-component vector with the
// basic operations required by most problems in physics: component
// arithmetic, scalar and cross products, Euclidean length, direction
// and distance.
//
// All operations are pure and return fresh values. Divisions are not
// guarded against zero divisors: floating component types follow
// IEEE-754 (Inf/NaN), integer component types panic with the runtime's
// divide-by-zero error.
package vector3d

import "math"

// Number is the set of component types a Vector3D can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Vector3D is a three-component vector over the numeric type T.
// The zero value is the zero vector (0, 0, 0).
type Vector3D[T Number] struct {
	x, y, z T
}

// New returns the vector (x, y, z).
func New[T Number](x, y, z T) Vector3D[T] {
	return Vector3D[T]{x, y, z}
}

func (v Vector3D[T]) X() T { return v.x }
func (v Vector3D[T]) Y() T { return v.y }
func (v Vector3D[T]) Z() T { return v.z }

func (v *Vector3D[T]) SetX(x T) { v.x = x }
func (v *Vector3D[T]) SetY(y T) { v.y = y }
func (v *Vector3D[T]) SetZ(z T) { v.z = z }

// Module returns the Euclidean length of the vector. The squares and
// their sum are computed in T; only the result is promoted to float64.
func (v Vector3D[T]) Module() float64 {
	return math.Sqrt(float64(v.x*v.x + v.y*v.y + v.z*v.z))
}

// Direction returns the unit vector pointing the same way as v, with
// float64 components regardless of T. The zero vector has no
// direction; the result is then NaN in every component.
func (v Vector3D[T]) Direction() Vector3D[float64] {
	m := v.Module()
	return Vector3D[float64]{float64(v.x) / m, float64(v.y) / m, float64(v.z) / m}
}
