// Command satsky propagates a two-line element set to a given time and
// prints the satellite's geocentric sky position through the coordinate
// library: right ascension and declination in the requested frame.
//
// The SGP4 position comes back in an inertial equatorial frame; it is
// treated as FK5 J2000 here, which is fine at the arcminute level this
// tool reports at.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/signalsfoundry/skycoords/angle"
	"github.com/signalsfoundry/skycoords/core"
	"github.com/signalsfoundry/skycoords/internal/logging"
)

func main() {
	tle1 := flag.String("tle1", "", "TLE line 1")
	tle2 := flag.String("tle2", "", "TLE line 2")
	at := flag.String("time", "", "observation time, RFC 3339 (default: now)")
	frameName := flag.String("frame", "icrs", "output frame: icrs, galactic, supergalactic or fk5")
	equinox := flag.Float64("equinox", 2000, "Julian equinox when -frame is fk5")
	flag.Parse()

	ctx := context.Background()
	log := logging.NewFromEnv()

	if *tle1 == "" || *tle2 == "" {
		log.Error(ctx, "both -tle1 and -tle2 are required")
		os.Exit(2)
	}

	when := time.Now().UTC()
	if *at != "" {
		parsed, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			log.Error(ctx, "bad -time", logging.Any("err", err))
			os.Exit(2)
		}
		when = parsed.UTC()
	}

	frame, err := parseFrame(*frameName, *equinox)
	if err != nil {
		log.Error(ctx, "bad -frame", logging.Any("err", err))
		os.Exit(2)
	}

	sat := satellite.TLEToSat(*tle1, *tle2, satellite.GravityWGS72)

	year, month, day := when.Date()
	hour, min, sec := when.Clock()
	pos, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)

	// Geocentric direction only; range is reported separately.
	eci := core.NewCartesian(core.J2000, pos.X, pos.Y, pos.Z)
	sky, err := core.ConvertSpherical(core.ToSpherical(eci), frame)
	if err != nil {
		log.Error(ctx, "conversion failed", logging.Any("err", err))
		os.Exit(1)
	}

	log.Debug(ctx, "propagated",
		logging.Float64("range_km", eci.Norm()),
		logging.String("frame", frame.String()))

	fmt.Printf("%s  lon %s  lat %s  range %.1f km\n",
		frame,
		angle.FormatHMS(sky.Lon(), 2),
		angle.FormatDMS(sky.Lat(), 1),
		eci.Norm())
}

func parseFrame(name string, equinox float64) (core.Frame, error) {
	switch name {
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
