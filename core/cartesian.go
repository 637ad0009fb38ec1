package core

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Cartesian is the unit-vector dual of Spherical: an immutable direction
// (x, y, z) on the frame's origin-centred unit sphere. Construction does
// not renormalize, so callers may carry a non-unit vector; conversions
// out extract the direction only.
type Cartesian[T Float] struct {
	frame   Frame
	x, y, z T
}

// NewCartesian constructs a cartesian coordinate in the given frame.
func NewCartesian[T Float](frame Frame, x, y, z T) Cartesian[T] {
	return Cartesian[T]{frame: frame, x: x, y: y, z: z}
}

// Frame returns the reference frame tag.
func (c Cartesian[T]) Frame() Frame { return c.frame }

// X, Y and Z return the vector components.
func (c Cartesian[T]) X() T { return c.x }
func (c Cartesian[T]) Y() T { return c.y }
func (c Cartesian[T]) Z() T { return c.z }

// WithX returns a copy with the x component replaced.
func (c Cartesian[T]) WithX(x T) Cartesian[T] { c.x = x; return c }

// WithY returns a copy with the y component replaced.
func (c Cartesian[T]) WithY(y T) Cartesian[T] { c.y = y; return c }

// WithZ returns a copy with the z component replaced.
func (c Cartesian[T]) WithZ(z T) Cartesian[T] { c.z = z; return c }

// Norm returns the Euclidean norm of the vector.
func (c Cartesian[T]) Norm() T {
	return sqrt(c.x*c.x + c.y*c.y + c.z*c.z)
}

// Dot returns the dot product with another vector in the same frame.
func (c Cartesian[T]) Dot(o Cartesian[T]) T {
	return c.x*o.x + c.y*o.y + c.z*o.z
}

// Unit returns the normalized direction. The zero vector is returned
// unchanged since it carries no direction.
func (c Cartesian[T]) Unit() Cartesian[T] {
	n := c.Norm()
	if n == 0 {
		return c
	}
	return Cartesian[T]{frame: c.frame, x: c.x / n, y: c.y / n, z: c.z / n}
}

// Equal reports exact value equality, frame included.
func (c Cartesian[T]) Equal(o Cartesian[T]) bool {
	return c == o
}

// ApproxEqual reports approximate equality under the default tolerance
// for T, converting o to c's frame first.
func (c Cartesian[T]) ApproxEqual(o Cartesian[T]) bool {
	tol := defaultTol[T]()
	return c.ApproxEqualTol(o, tol, tol)
}

// ApproxEqualTol is ApproxEqual with caller-supplied tolerances.
func (c Cartesian[T]) ApproxEqualTol(o Cartesian[T], absTol, relTol float64) bool {
	conv, err := ConvertCartesian(o, c.frame)
	if err != nil {
		return false
	}
	return scalar.EqualWithinAbsOrRel(float64(c.x), float64(conv.x), absTol, relTol) &&
		scalar.EqualWithinAbsOrRel(float64(c.y), float64(conv.y), absTol, relTol) &&
		scalar.EqualWithinAbsOrRel(float64(c.z), float64(conv.z), absTol, relTol)
}

func (c Cartesian[T]) String() string {
	return fmt.Sprintf("%v(x=%v, y=%v, z=%v)", c.frame, c.x, c.y, c.z)
}
