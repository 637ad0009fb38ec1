package core

import (
	"errors"
	"fmt"
	"math"
)

// Configuration errors returned by rotation lookups. Frames built through
// the exported constructors are otherwise total: every supported pair has
// a rotation.
var (
	ErrUnknownFrame = errors.New("unknown reference frame")
	ErrBadEquinox   = errors.New("equinox outside supported range")
)

// The precession polynomials are expansions in centuries from J2000 and
// degrade beyond a few of them.
const (
	minEquinox = 1500
	maxEquinox = 2500
)

type frameKind int

const (
	frameICRS frameKind = iota
	frameGalactic
	frameSupergalactic
	frameFK5
)

// Frame identifies a celestial reference frame. Frames are comparable
// values and the equinox participates in identity, so FK5(1975) and
// FK5(2000) are distinct frames rather than one frame with a field.
type Frame struct {
	kind    frameKind
	equinox float64 // Julian equinox, FK5 only
}

// ICRS is the International Celestial Reference System.
var ICRS = Frame{kind: frameICRS}

// Galactic is the IAU 1958 galactic coordinate system.
var Galactic = Frame{kind: frameGalactic}

// Supergalactic is the de Vaucouleurs supergalactic coordinate system,
// defined by its pole and origin in galactic coordinates.
var Supergalactic = Frame{kind: frameSupergalactic}

// FK5 returns the FK5 frame at the given Julian equinox, e.g. FK5(2000).
func FK5(equinox float64) Frame {
	return Frame{kind: frameFK5, equinox: equinox}
}

// J2000 is FK5 at its standard equinox.
var J2000 = FK5(2000)

// Equinox returns the Julian equinox of an FK5 frame. ok is false for
// frames that do not carry an equinox.
func (f Frame) Equinox() (equinox float64, ok bool) {
	if f.kind == frameFK5 {
		return f.equinox, true
	}
	return 0, false
}

func (f Frame) String() string {
	switch f.kind {
	case frameICRS:
		return "ICRS"
	case frameGalactic:
		return "Galactic"
	case frameSupergalactic:
		return "Supergalactic"
	case frameFK5:
		return fmt.Sprintf("FK5(J%v)", f.equinox)
	default:
		return fmt.Sprintf("Frame(%d)", int(f.kind))
	}
}

// validate reports whether a rotation involving f can be built.
func (f Frame) validate() error {
	switch f.kind {
	case frameICRS, frameGalactic, frameSupergalactic:
		return nil
	case frameFK5:
		if math.IsNaN(f.equinox) || f.equinox < minEquinox || f.equinox > maxEquinox {
			return fmt.Errorf("%w: J%v not in [J%d, J%d]", ErrBadEquinox, f.equinox, minEquinox, maxEquinox)
		}
		return nil
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownFrame, int(f.kind))
	}
}
