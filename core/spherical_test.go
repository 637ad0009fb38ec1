package core

import (
	"math"
	"testing"
)

func TestNewSphericalNormalizesLongitude(t *testing.T) {
	cases := []struct {
		lon, want float64
	}{
		{0, 0},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-7 * math.Pi / 2, math.Pi / 2},
	}
	for _, c := range cases {
		s := NewSpherical(ICRS, c.lon, 0.5)
		if math.Abs(float64(s.Lon())-c.want) > 1e-12 {
			t.Errorf("NewSpherical lon %v normalized to %v, want %v", c.lon, s.Lon(), c.want)
		}
		if s.Lon() < 0 || float64(s.Lon()) >= 2*math.Pi {
			t.Errorf("normalized lon %v outside [0, 2π)", s.Lon())
		}
	}
}

func TestNewSphericalClampsLatitude(t *testing.T) {
	if got := NewSpherical(ICRS, 0, math.Pi).Lat(); got != math.Pi/2 {
		t.Errorf("lat π clamped to %v, want π/2", got)
	}
	if got := NewSpherical(ICRS, 0, -2.0).Lat(); got != -math.Pi/2 {
		t.Errorf("lat -2 clamped to %v, want -π/2", got)
	}
}

func TestSphericalAccessorsAndUpdates(t *testing.T) {
	s := NewSpherical(Galactic, 1.0, 0.5)
	if s.Frame() != Galactic || s.Lon() != 1.0 || s.Lat() != 0.5 {
		t.Fatalf("accessors returned %v %v %v", s.Frame(), s.Lon(), s.Lat())
	}

	s2 := s.WithLon(2.0)
	if s2.Lon() != 2.0 || s2.Lat() != 0.5 || s2.Frame() != Galactic {
		t.Fatalf("WithLon produced %v", s2)
	}
	if s.Lon() != 1.0 {
		t.Fatal("WithLon mutated the receiver")
	}

	s3 := s.WithLat(-0.25)
	if s3.Lat() != -0.25 || s3.Lon() != 1.0 {
		t.Fatalf("WithLat produced %v", s3)
	}
}

func TestSphericalExactEquality(t *testing.T) {
	a := NewSpherical(ICRS, 1.0, 0.5)
	b := NewSpherical(ICRS, 1.0, 0.5)
	if !a.Equal(b) {
		t.Fatal("identical coordinates must be Equal")
	}

	// The longitude is normalized on construction, so equivalent inputs
	// compare equal exactly.
	c := NewSpherical(ICRS, 1.0+2*math.Pi, 0.5)
	if math.Abs(float64(c.Lon()-a.Lon())) > 1e-15 {
		t.Fatalf("2π-shifted longitude normalized to %v, want %v", c.Lon(), a.Lon())
	}

	if a.Equal(NewSpherical(Galactic, 1.0, 0.5)) {
		t.Fatal("coordinates in different frames must never be Equal")
	}
	if NewSpherical(FK5(1975), 1.0, 1.0).Equal(NewSpherical(FK5(2000), 1.0, 1.0)) {
		t.Fatal("FK5 frames with different equinoxes must never be Equal")
	}
}

func TestNewSphericalFloat32WrapBoundary(t *testing.T) {
	// A tiny negative longitude wraps to just under 2π at float64, and
	// the nearest float32 is above 2π. Construction must still land the
	// value inside [0, 2π).
	s := NewSpherical[float32](ICRS, -1e-8, 0)
	if s.Lon() < 0 || float64(s.Lon()) >= 2*math.Pi {
		t.Fatalf("float32 longitude %v escaped [0, 2π)", s.Lon())
	}
}

func TestSphericalApproxEquality(t *testing.T) {
	a := NewSpherical(ICRS, 0, 1.0)

	// A sub-epsilon longitude perturbation is angularly nothing.
	if !a.ApproxEqual(NewSpherical(ICRS, 1e-17, 1.0)) {
		t.Fatal("sub-epsilon longitude perturbation must be approx equal")
	}

	// A 0.001 rad shift is a real displacement.
	if a.ApproxEqual(NewSpherical(ICRS, 0.001, 1.0)) {
		t.Fatal("0.001 rad longitude shift must not be approx equal by default")
	}

	// ...unless the caller relaxes the tolerance.
	if !a.ApproxEqualTol(NewSpherical(ICRS, 0.001, 1.0), 0.01, 0.01) {
		t.Fatal("0.001 rad shift must pass with a 0.01 tolerance")
	}
}

func TestSphericalApproxEqualityNearPole(t *testing.T) {
	// Two points straddling the pole at lat 90°−1e-10: their longitudes
	// differ by π but they are angularly 2e-10 apart.
	lat := math.Pi/2 - 1e-10
	a := NewSpherical(ICRS, 0, lat)
	b := NewSpherical(ICRS, math.Pi, lat)
	if !a.ApproxEqual(b) {
		t.Fatal("near-pole longitude wrap must not break approximate equality")
	}
}

func TestSphericalApproxEqualityAcrossFrames(t *testing.T) {
	a := NewSpherical(ICRS, 1.3, -0.2)
	gal, err := ConvertSpherical(a, Galactic)
	if err != nil {
		t.Fatal(err)
	}
	if !a.ApproxEqual(gal) {
		t.Fatal("a coordinate must approx-equal its own conversion")
	}
	if !gal.ApproxEqual(a) {
		t.Fatal("cross-frame approximate equality must be symmetric")
	}
}

func TestApproxEqualMixedPrecision(t *testing.T) {
	a := NewSpherical(ICRS, 1.25, 0.75)
	b := SphericalAs[float32](a)
	if !ApproxEqualMixed(a, b) {
		t.Fatal("a value and its float32 narrowing must be approx equal")
	}
	if ApproxEqualMixed(a, NewSpherical[float32](ICRS, 1.30, 0.75)) {
		t.Fatal("distinct positions must not be approx equal across precisions")
	}
}
