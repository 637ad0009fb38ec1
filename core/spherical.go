package core

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Spherical is an immutable point on the celestial sphere: a
// (longitude, latitude) pair in radians tagged with a reference frame.
// The longitude is normalized into [0, 2π) and the latitude clamped into
// [-π/2, π/2] on construction, so those invariants hold for every value
// built through NewSpherical or the With* updates.
type Spherical[T Float] struct {
	frame Frame
	lon   T
	lat   T
}

// NewSpherical constructs a coordinate in the given frame from two
// already-parsed angles in radians. Sexagesimal literals are parsed by
// the angle package before they reach this constructor.
func NewSpherical[T Float](frame Frame, lon, lat T) Spherical[T] {
	return Spherical[T]{frame: frame, lon: normLon(lon), lat: clampLat(lat)}
}

// Frame returns the reference frame tag.
func (s Spherical[T]) Frame() Frame { return s.frame }

// Lon returns the longitude in radians, in [0, 2π).
func (s Spherical[T]) Lon() T { return s.lon }

// Lat returns the latitude in radians, in [-π/2, π/2].
func (s Spherical[T]) Lat() T { return s.lat }

// WithLon returns a copy with the longitude replaced.
func (s Spherical[T]) WithLon(lon T) Spherical[T] {
	return NewSpherical(s.frame, lon, s.lat)
}

// WithLat returns a copy with the latitude replaced.
func (s Spherical[T]) WithLat(lat T) Spherical[T] {
	return NewSpherical(s.frame, s.lon, lat)
}

// Equal reports exact value equality. The frame participates: two
// coordinates in different frames are never Equal, whatever their angles.
func (s Spherical[T]) Equal(o Spherical[T]) bool {
	return s == o
}

// ApproxEqual reports approximate equality under the default tolerance
// for T. The other coordinate is converted to s's frame first, so
// cross-frame comparison is meaningful; if that conversion is impossible
// the coordinates are not equal.
func (s Spherical[T]) ApproxEqual(o Spherical[T]) bool {
	tol := defaultTol[T]()
	return s.ApproxEqualTol(o, tol, tol)
}

// ApproxEqualTol is ApproxEqual with caller-supplied absolute and
// relative tolerances. The comparison is done on the cartesian unit
// vectors of both points, which keeps longitude comparison honest near
// the poles where a large lon difference can be a tiny angular one.
func (s Spherical[T]) ApproxEqualTol(o Spherical[T], absTol, relTol float64) bool {
	conv, err := ConvertSpherical(o, s.frame)
	if err != nil {
		return false
	}
	a := ToCartesian(s)
	b := ToCartesian(conv)
	return scalar.EqualWithinAbsOrRel(float64(a.x), float64(b.x), absTol, relTol) &&
		scalar.EqualWithinAbsOrRel(float64(a.y), float64(b.y), absTol, relTol) &&
		scalar.EqualWithinAbsOrRel(float64(a.z), float64(b.z), absTol, relTol)
}

func (s Spherical[T]) String() string {
	return fmt.Sprintf("%v(lon=%v, lat=%v)", s.frame, s.lon, s.lat)
}

// ApproxEqualMixed compares coordinates of different precisions by
// promoting both to float64, using the default tolerance of the narrower
// of the two.
func ApproxEqualMixed[T, U Float](a Spherical[T], b Spherical[U]) bool {
	tol := defaultTol[T]()
	if u := defaultTol[U](); u > tol {
		tol = u
	}
	return SphericalAs[float64](a).ApproxEqualTol(SphericalAs[float64](b), tol, tol)
}
