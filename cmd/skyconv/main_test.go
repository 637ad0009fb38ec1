package main

import (
	"math"
	"testing"

	"github.com/signalsfoundry/skycoords/core"
)

func TestParseFrame(t *testing.T) {
	cases := []struct {
		name    string
		equinox float64
		want    core.Frame
	}{
		{"icrs", 2000, core.ICRS},
		{"ICRS", 2000, core.ICRS},
		{"galactic", 2000, core.Galactic},
		{"gal", 2000, core.Galactic},
		{"supergalactic", 2000, core.Supergalactic},
		{"sgal", 2000, core.Supergalactic},
		{"fk5", 1975, core.FK5(1975)},
	}
	for _, c := range cases {
		got, err := parseFrame(c.name, c.equinox)
		if err != nil {
			t.Errorf("parseFrame(%q): %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseFrame(%q) = %v, want %v", c.name, got, c.want)
		}
	}

	if _, err := parseFrame("equatorial", 2000); err == nil {
		t.Error("parseFrame must reject unknown frame names")
	}
}

func TestParsePosition(t *testing.T) {
	p, err := parsePosition(core.ICRS, "12h0m0", "90:0:0", true)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.Lon()-math.Pi) > 1e-12 || math.Abs(p.Lat()-math.Pi/2) > 1e-12 {
		t.Fatalf("parsePosition = %v, want lon π lat π/2", p)
	}

	// Same position from decimal degrees.
	q, err := parsePosition(core.ICRS, "180", "90", false)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(q) {
		t.Fatalf("sexagesimal and decimal literals disagree: %v vs %v", p, q)
	}

	if _, err := parsePosition(core.ICRS, "", "10", false); err == nil {
		t.Error("missing longitude must be rejected")
	}
	if _, err := parsePosition(core.ICRS, "12h0m0x", "10", true); err == nil {
		t.Error("malformed longitude must be rejected")
	}
}
