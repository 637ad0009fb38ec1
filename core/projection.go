package core

import "fmt"

// Projected is a small-angle tangent-plane view of a point near an
// origin: the origin coordinate plus a (Δx, Δy) offset in radians along
// the local east and north axes.
type Projected[T Float] struct {
	origin Spherical[T]
	dx, dy T
}

// Project returns the tangent-plane offset of point relative to origin.
// The longitude difference is scaled by cos of the origin latitude, so a
// unit offset corresponds to one radian along each local axis. The
// projection degenerates at the poles, where the local east axis is
// undefined.
func Project[T Float](origin, point Spherical[T]) (Projected[T], error) {
	p, err := ConvertSpherical(point, origin.frame)
	if err != nil {
		return Projected[T]{}, err
	}
	_, cosLat := sincos(origin.lat)
	return Projected[T]{
		origin: origin,
		dx:     wrapDelta(p.lon-origin.lon) * cosLat,
		dy:     p.lat - origin.lat,
	}, nil
}

// Origin returns the projection origin.
func (p Projected[T]) Origin() Spherical[T] { return p.origin }

// Offset returns the tangent-plane (Δx, Δy) offset in radians.
func (p Projected[T]) Offset() (dx, dy T) { return p.dx, p.dy }

// Unproject recovers the spherical coordinate the offset points at, to
// within the small-angle approximation error.
func (p Projected[T]) Unproject() Spherical[T] {
	_, cosLat := sincos(p.origin.lat)
	return NewSpherical(p.origin.frame, p.origin.lon+p.dx/cosLat, p.origin.lat+p.dy)
}

// Equal reports exact equality: same origin and same offset.
func (p Projected[T]) Equal(o Projected[T]) bool {
	return p == o
}

func (p Projected[T]) String() string {
	return fmt.Sprintf("Projected(origin=%v, dx=%v, dy=%v)", p.origin, p.dx, p.dy)
}
