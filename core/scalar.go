package core

import "math"

// Float is the set of floating-point kinds a coordinate can carry.
// Named types over float32/float64 are allowed.
type Float interface {
	~float32 | ~float64
}

const twoPi = 2 * math.Pi

// All trig goes through float64, the widest precision available, and is
// demoted to T on return. This realizes the promote-then-compute rule for
// narrow precisions.

func sincos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

func atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

func asin[T Float](x T) T { return T(math.Asin(clamp1(float64(x)))) }

func sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// clamp1 clamps x into [-1, 1] so rounding noise cannot push an asin
// argument out of domain.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// normLon wraps a longitude into [0, 2π). The wrap is computed at
// float64; demoting a result just under 2π can round it up to 2π or
// past it at narrower precisions, so the bound is re-checked on T.
func normLon[T Float](lon T) T {
	l := math.Mod(float64(lon), twoPi)
	if l < 0 {
		l += twoPi
	}
	if w := T(l); float64(w) < twoPi {
		return w
	}
	return 0
}

// clampLat clamps a latitude into [-π/2, π/2].
func clampLat[T Float](lat T) T {
	if float64(lat) > math.Pi/2 {
		return T(math.Pi / 2)
	}
	if float64(lat) < -math.Pi/2 {
		return T(-math.Pi / 2)
	}
	return lat
}

// wrapDelta wraps a longitude difference into (-π, π].
func wrapDelta[T Float](d T) T {
	w := math.Mod(float64(d), twoPi)
	if w <= -math.Pi {
		w += twoPi
	} else if w > math.Pi {
		w -= twoPi
	}
	return T(w)
}

// epsOf reports the machine epsilon of T. The probe relies on 2⁻³⁰
// vanishing when added to 1 at 32-bit precision but not at 64-bit.
func epsOf[T Float]() float64 {
	if T(1)+T(0x1p-30) == T(1) {
		return 0x1p-23
	}
	return 0x1p-52
}

// defaultTol is the default absolute and relative tolerance for
// approximate equality at precision T: the square root of the machine
// epsilon, which absorbs rounding accumulated across rotation chains
// while rejecting any real angular displacement.
func defaultTol[T Float]() float64 {
	return math.Sqrt(epsOf[T]())
}
