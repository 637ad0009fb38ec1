package core

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Rotation matrices are passive: R(A→B) re-expresses the components of a
// fixed direction in frame B, cartesianB = R(A→B)·cartesianA. Every pair
// is routed through ICRS as the hub, so R(A→B) = R(ICRS→B)·R(A→ICRS) and
// R(B→A) = R(A→B)ᵀ by orthogonality. Built matrices are process-wide
// constants, memoized per frame pair.

const (
	degToRad    = math.Pi / 180
	arcsecToRad = degToRad / 3600
	masToRad    = arcsecToRad / 1000
)

// Galactic pole and origin in FK5 J2000 (Reid & Brunthaler 2004, the
// values astropy bakes into its Galactic frame).
const (
	galNodeLonDeg = 122.9319185680026 // galactic longitude of the north celestial pole
	galPoleRADeg  = 192.8594812065348
	galPoleDecDeg = 27.12825118085622
)

// Supergalactic pole and node in galactic coordinates (de Vaucouleurs).
const (
	sgalNodeLonDeg = 90 // supergalactic longitude of the galactic north pole
	sgalPoleLonDeg = 47.37
	sgalPoleLatDeg = 6.32
)

// ICRS → FK5 J2000 frame bias angles (milliarcseconds).
const (
	biasEta0Mas    = -19.9
	biasXi0Mas     = 9.1
	biasDalpha0Mas = -22.9
)

// rotX, rotY, rotZ build passive rotations about the coordinate axes.
func rotX(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})
}

func rotY(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	})
}

func rotZ(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})
}

func mul3(ms ...*mat.Dense) *mat.Dense {
	out := ms[0]
	for _, m := range ms[1:] {
		var p mat.Dense
		p.Mul(out, m)
		out = &p
	}
	return out
}

// biasFK5FromICRS is R(ICRS→FK5 J2000).
func biasFK5FromICRS() *mat.Dense {
	return mul3(
		rotX(-biasEta0Mas*masToRad),
		rotY(biasXi0Mas*masToRad),
		rotZ(biasDalpha0Mas*masToRad),
	)
}

// galFromFK5J2000 is R(FK5 J2000→Galactic): spin the pole into +z and the
// galactic origin onto +x.
func galFromFK5J2000() *mat.Dense {
	return mul3(
		rotZ((180-galNodeLonDeg)*degToRad),
		rotY((90-galPoleDecDeg)*degToRad),
		rotZ(galPoleRADeg*degToRad),
	)
}

// sgalFromGalactic is R(Galactic→Supergalactic), built the same way:
// pole into +z, supergalactic origin onto +x.
func sgalFromGalactic() *mat.Dense {
	return mul3(
		rotZ((180-sgalNodeLonDeg)*degToRad),
		rotY((90-sgalPoleLatDeg)*degToRad),
		rotZ(sgalPoleLonDeg*degToRad),
	)
}

// precessFromJ2000 is the mean-equinox precession rotation from J2000 to
// the given Julian equinox, using the Capitaine et al. (2003) ζ, z, θ
// polynomials in Julian centuries.
func precessFromJ2000(equinox float64) *mat.Dense {
	t := (equinox - 2000) / 100
	zeta := poly(t, 2.650545, 2306.083227, 0.2988499, 0.01801828, -0.000005971, -0.0000003173)
	z := poly(t, -2.650545, 2306.077181, 1.0927348, 0.01826837, -0.000028596, -0.0000002904)
	theta := poly(t, 0, 2004.191903, -0.4294934, -0.04182264, -0.000007089, -0.0000001274)
	return mul3(
		rotZ(-z*arcsecToRad),
		rotY(theta*arcsecToRad),
		rotZ(-zeta*arcsecToRad),
	)
}

// poly evaluates coefficients given lowest order first.
func poly(t float64, coeffs ...float64) float64 {
	sum := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		sum = sum*t + coeffs[i]
	}
	return sum
}

// rotationFromICRS returns R(ICRS→f).
func rotationFromICRS(f Frame) (*mat.Dense, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	switch f.kind {
	case frameICRS:
		return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}), nil
	case frameGalactic:
		return mul3(galFromFK5J2000(), biasFK5FromICRS()), nil
	case frameSupergalactic:
		return mul3(sgalFromGalactic(), galFromFK5J2000(), biasFK5FromICRS()), nil
	default: // frameFK5, validate rejected everything else
		return mul3(precessFromJ2000(f.equinox), biasFK5FromICRS()), nil
	}
}

var rotations struct {
	mu    sync.RWMutex
	cache map[[2]Frame]*mat.Dense
}

// rotationBetween returns R(from→to), memoized.
func rotationBetween(from, to Frame) (*mat.Dense, error) {
	key := [2]Frame{from, to}

	rotations.mu.RLock()
	r, ok := rotations.cache[key]
	rotations.mu.RUnlock()
	if ok {
		return r, nil
	}

	icrsToFrom, err := rotationFromICRS(from)
	if err != nil {
		return nil, err
	}
	icrsToTo, err := rotationFromICRS(to)
	if err != nil {
		return nil, err
	}
	// R(from→to) = R(ICRS→to)·R(from→ICRS), and R(from→ICRS) is the
	// transpose of R(ICRS→from).
	var full mat.Dense
	full.Mul(icrsToTo, icrsToFrom.T())

	rotations.mu.Lock()
	if rotations.cache == nil {
		rotations.cache = make(map[[2]Frame]*mat.Dense)
	}
	rotations.cache[key] = &full
	rotations.mu.Unlock()
	return &full, nil
}
