package core

// Great-circle geometry. All functions are frame-transparent: the second
// coordinate is converted into the first one's frame before computing, so
// results are invariant under the frame the arguments happen to arrive
// in.

// Separation returns the great-circle angle between a and b, in [0, π].
// The Vincenty form keeps full precision for small separations and at
// the poles, where the spherical law of cosines loses digits.
func Separation[T Float](a, b Spherical[T]) (T, error) {
	bb, err := ConvertSpherical(b, a.frame)
	if err != nil {
		return 0, err
	}
	sinD, cosD := sincos(bb.lon - a.lon)
	sin1, cos1 := sincos(a.lat)
	sin2, cos2 := sincos(bb.lat)

	u := cos2 * sinD
	v := cos1*sin2 - sin1*cos2*cosD
	num := sqrt(u*u + v*v)
	den := sin1*sin2 + cos1*cos2*cosD
	return atan2(num, den), nil
}

// PositionAngle returns the bearing from a to b measured from local
// north, increasing toward increasing longitude, in (-π, π]. The
// direction is undefined when the points coincide; by convention the
// result is then 0 and no error is raised.
func PositionAngle[T Float](a, b Spherical[T]) (T, error) {
	bb, err := ConvertSpherical(b, a.frame)
	if err != nil {
		return 0, err
	}
	sinD, cosD := sincos(bb.lon - a.lon)
	sin1, cos1 := sincos(a.lat)
	sin2, cos2 := sincos(bb.lat)

	y := sinD * cos2
	x := cos1*sin2 - sin1*cos2*cosD
	return atan2(y, x), nil
}

// Offset solves the inverse geodesic problem on the sphere: the
// separation and initial bearing that lead from a to b.
func Offset[T Float](a, b Spherical[T]) (sep, pa T, err error) {
	sep, err = Separation(a, b)
	if err != nil {
		return 0, 0, err
	}
	pa, err = PositionAngle(a, b)
	if err != nil {
		return 0, 0, err
	}
	return sep, pa, nil
}

// OffsetBy solves the direct geodesic problem: the point reached by
// walking sep radians from a along the initial bearing pa. The result
// carries a's frame. Antipodal (sep = π) and full-circle offsets resolve
// to the mathematically consistent point for every bearing.
func OffsetBy[T Float](a Spherical[T], sep, pa T) Spherical[T] {
	sinSep, cosSep := sincos(sep)
	sinPA, cosPA := sincos(pa)
	sin1, cos1 := sincos(a.lat)

	lat2 := asin(sin1*cosSep + cos1*sinSep*cosPA)
	sin2, _ := sincos(lat2)
	lon2 := a.lon + atan2(sinPA*sinSep*cos1, cosSep-sin1*sin2)
	return NewSpherical(a.frame, lon2, lat2)
}

// SeparationMixed is Separation over two coordinates of different
// precisions, promoted to float64 before computing.
func SeparationMixed[T, U Float](a Spherical[T], b Spherical[U]) (float64, error) {
	return Separation(SphericalAs[float64](a), SphericalAs[float64](b))
}

// PositionAngleMixed is PositionAngle across precisions, promoted to
// float64 before computing.
func PositionAngleMixed[T, U Float](a Spherical[T], b Spherical[U]) (float64, error) {
	return PositionAngle(SphericalAs[float64](a), SphericalAs[float64](b))
}
