package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToCartesian returns the unit-vector dual of s in the same frame.
func ToCartesian[T Float](s Spherical[T]) Cartesian[T] {
	sinLon, cosLon := sincos(s.lon)
	sinLat, cosLat := sincos(s.lat)
	return Cartesian[T]{
		frame: s.frame,
		x:     cosLat * cosLon,
		y:     cosLat * sinLon,
		z:     sinLat,
	}
}

// ToSpherical returns the spherical dual of c in the same frame. The
// vector need not be unit length; only its direction is kept.
func ToSpherical[T Float](c Cartesian[T]) Spherical[T] {
	return Spherical[T]{
		frame: c.frame,
		lon:   normLon(atan2(c.y, c.x)),
		lat:   atan2(c.z, sqrt(c.x*c.x+c.y*c.y)),
	}
}

// ConvertSpherical converts s into the target frame. Converting into the
// frame the coordinate already carries is the identity, returning s
// itself; otherwise the value is routed spherical→cartesian→rotate→
// spherical. The only failure is a rotation lookup on an unsupported
// frame configuration.
func ConvertSpherical[T Float](s Spherical[T], to Frame) (Spherical[T], error) {
	if s.frame == to {
		return s, nil
	}
	c, err := ConvertCartesian(ToCartesian(s), to)
	if err != nil {
		return Spherical[T]{}, fmt.Errorf("converting %v to %v: %w", s.frame, to, err)
	}
	return ToSpherical(c), nil
}

// ConvertCartesian converts c into the target frame. Same-frame
// conversion is the identity. Rotation is applied at float64 precision
// and demoted to T; it preserves the vector's norm, so a non-unit input
// stays non-unit.
func ConvertCartesian[T Float](c Cartesian[T], to Frame) (Cartesian[T], error) {
	if c.frame == to {
		return c, nil
	}
	r, err := rotationBetween(c.frame, to)
	if err != nil {
		return Cartesian[T]{}, fmt.Errorf("converting %v to %v: %w", c.frame, to, err)
	}
	in := mat.NewVecDense(3, []float64{float64(c.x), float64(c.y), float64(c.z)})
	var out mat.VecDense
	out.MulVec(r, in)
	return Cartesian[T]{
		frame: to,
		x:     T(out.AtVec(0)),
		y:     T(out.AtVec(1)),
		z:     T(out.AtVec(2)),
	}, nil
}

// SphericalAs converts a spherical coordinate to precision U. Narrowing
// rounds silently, as ordinary floating-point conversion does. The
// result is re-normalized: rounding can carry a longitude just under 2π
// up to 2π itself.
func SphericalAs[U, T Float](s Spherical[T]) Spherical[U] {
	return NewSpherical(s.frame, U(s.lon), U(s.lat))
}

// CartesianAs converts a cartesian coordinate to precision U.
func CartesianAs[U, T Float](c Cartesian[T]) Cartesian[U] {
	return Cartesian[U]{frame: c.frame, x: U(c.x), y: U(c.y), z: U(c.z)}
}
