// Command skyconv converts a sky position between reference frames and,
// given a second position, reports the great-circle separation and
// position angle between them.
//
// Angles are accepted as sexagesimal literals (12h30m45s, -62:05:07.2)
// or plain decimal degrees; longitudes are read as hours when -hours is
// set. Results are printed as text or, with -json, as a JSON document on
// stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/signalsfoundry/skycoords/angle"
	"github.com/signalsfoundry/skycoords/core"
	"github.com/signalsfoundry/skycoords/internal/logging"
)

type position struct {
	Frame  string  `json:"frame"`
	LonRad float64 `json:"lon_rad"`
	LatRad float64 `json:"lat_rad"`
	LonHMS string  `json:"lon_hms"`
	LatDMS string  `json:"lat_dms"`
}

type result struct {
	Input     position  `json:"input"`
	Converted position  `json:"converted"`
	Second    *position `json:"second,omitempty"`
	// Separation and position angle from the converted first position to
	// the second, in degrees. Present only when a second position is given.
	SeparationDeg    *float64 `json:"separation_deg,omitempty"`
	PositionAngleDeg *float64 `json:"position_angle_deg,omitempty"`
}

func main() {
	fromName := flag.String("from", "icrs", "input frame: icrs, galactic, supergalactic or fk5")
	fromEquinox := flag.Float64("from-equinox", 2000, "Julian equinox when the input frame is fk5")
	toName := flag.String("to", "galactic", "output frame: icrs, galactic, supergalactic or fk5")
	toEquinox := flag.Float64("to-equinox", 2000, "Julian equinox when the output frame is fk5")
	lonStr := flag.String("lon", "", "longitude / right ascension literal")
	latStr := flag.String("lat", "", "latitude / declination literal")
	lon2Str := flag.String("lon2", "", "optional second position longitude")
	lat2Str := flag.String("lat2", "", "optional second position latitude")
	hours := flag.Bool("hours", false, "read longitudes as hours instead of degrees")
	jsonOut := flag.Bool("json", false, "emit JSON instead of text")
	flag.Parse()

	ctx := context.Background()
	log := logging.NewFromEnv()

	from, err := parseFrame(*fromName, *fromEquinox)
	if err != nil {
		log.Error(ctx, "bad input frame", logging.Any("err", err))
		os.Exit(2)
	}
	to, err := parseFrame(*toName, *toEquinox)
	if err != nil {
		log.Error(ctx, "bad output frame", logging.Any("err", err))
		os.Exit(2)
	}

	in, err := parsePosition(from, *lonStr, *latStr, *hours)
	if err != nil {
		log.Error(ctx, "bad position", logging.Any("err", err))
		os.Exit(2)
	}

	conv, err := core.ConvertSpherical(in, to)
	if err != nil {
		log.Error(ctx, "conversion failed", logging.Any("err", err))
		os.Exit(1)
	}

	res := result{Input: describe(in), Converted: describe(conv)}

	if *lon2Str != "" || *lat2Str != "" {
		second, err := parsePosition(from, *lon2Str, *lat2Str, *hours)
		if err != nil {
			log.Error(ctx, "bad second position", logging.Any("err", err))
			os.Exit(2)
		}
		sep, pa, err := core.Offset(in, second)
		if err != nil {
			log.Error(ctx, "offset failed", logging.Any("err", err))
			os.Exit(1)
		}
		sp := describe(second)
		sepDeg := sep * 180 / math.Pi
		paDeg := pa * 180 / math.Pi
		res.Second = &sp
		res.SeparationDeg = &sepDeg
		res.PositionAngleDeg = &paDeg
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Error(ctx, "encoding result", logging.Any("err", err))
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%s  ->  %s\n", format(res.Input), format(res.Converted))
	if res.Second != nil {
		fmt.Printf("separation %.6f deg, position angle %.6f deg from %s\n",
			*res.SeparationDeg, *res.PositionAngleDeg, format(*res.Second))
	}
}

// parseFrame resolves a frame name, attaching the equinox for fk5.
func parseFrame(name string, equinox float64) (core.Frame, error) {
	switch strings.ToLower(name) {
	case "icrs":
		return core.ICRS, nil
	case "galactic", "gal":
		return core.Galactic, nil
	case "supergalactic", "sgal":
		return core.Supergalactic, nil
	case "fk5":
		return core.FK5(equinox), nil
	default:
		return core.Frame{}, fmt.Errorf("unknown frame %q (want icrs, galactic, supergalactic or fk5)", name)
	}
}

func parsePosition(frame core.Frame, lonStr, latStr string, hours bool) (core.Spherical[float64], error) {
	if lonStr == "" || latStr == "" {
		return core.Spherical[float64]{}, fmt.Errorf("both -lon and -lat are required")
	}
	var (
		lon float64
		err error
	)
	if hours {
		lon, err = angle.ParseHours(lonStr)
	} else {
		lon, err = angle.ParseDegrees(lonStr)
	}
	if err != nil {
		return core.Spherical[float64]{}, fmt.Errorf("longitude: %w", err)
	}
	lat, err := angle.ParseDegrees(latStr)
	if err != nil {
		return core.Spherical[float64]{}, fmt.Errorf("latitude: %w", err)
	}
	return core.NewSpherical(frame, lon, lat), nil
}

func describe(s core.Spherical[float64]) position {
	return position{
		Frame:  s.Frame().String(),
		LonRad: s.Lon(),
		LatRad: s.Lat(),
		LonHMS: angle.FormatHMS(s.Lon(), 3),
		LatDMS: angle.FormatDMS(s.Lat(), 2),
	}
}

func format(p position) string {
	return fmt.Sprintf("%s %s %s", p.Frame, p.LonHMS, p.LatDMS)
}
