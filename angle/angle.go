// Package angle parses and formats sexagesimal angle literals. It is the
// boundary collaborator of the coordinate library: constructors in the
// core package consume the radian values this package produces.
//
// Accepted literal shapes, interchangeably:
//
//	12h30m45.6s    10d41m04.488s    -0d30m
//	12:30:45.6     -62:05:07.2      90:0:0
//	12 30 45.6     0 0 0
//
// A leading sign applies to the whole value. Missing minutes or seconds
// default to zero.
package angle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrSyntax = errors.New("malformed sexagesimal angle")
	ErrRange  = errors.New("sexagesimal component out of range")
)

// ParseDegrees parses a degree-based literal ("dms" or colon/space
// separated) and returns the angle in radians.
func ParseDegrees(s string) (float64, error) {
	v, err := parse(s, "d")
	if err != nil {
		return 0, err
	}
	return v * math.Pi / 180, nil
}

// ParseHours parses an hour-based literal ("hms" or colon/space
// separated) and returns the angle in radians. One hour is 15 degrees.
func ParseHours(s string) (float64, error) {
	v, err := parse(s, "h")
	if err != nil {
		return 0, err
	}
	return v * 15 * math.Pi / 180, nil
}

// parse returns the value in whole units (degrees or hours). unitMark is
// the letter marking the whole-unit field in the lettered form.
func parse(s, unitMark string) (float64, error) {
	t := strings.TrimSpace(strings.ToLower(s))
	if t == "" {
		return 0, fmt.Errorf("%w: empty input", ErrSyntax)
	}

	neg := false
	switch t[0] {
	case '-':
		neg = true
		t = t[1:]
	case '+':
		t = t[1:]
	}

	fields := strings.FieldsFunc(t, func(r rune) bool {
		switch r {
		case ':', ' ', '\t', '°', '\'', '"':
			return true
		}
		return r == rune(unitMark[0]) || r == 'm' || r == 's'
	})
	if len(fields) == 0 || len(fields) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	var parts [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		if v < 0 {
			return 0, fmt.Errorf("%w: %q has an inner sign", ErrSyntax, s)
		}
		if i > 0 && v >= 60 {
			return 0, fmt.Errorf("%w: %q component %v not in [0, 60)", ErrRange, s, v)
		}
		parts[i] = v
	}

	v := parts[0] + parts[1]/60 + parts[2]/3600
	if neg {
		v = -v
	}
	return v, nil
}

// FormatDMS renders an angle in radians as a signed d:m:s literal with
// the given number of digits after the seconds' decimal point.
func FormatDMS(rad float64, secDigits int) string {
	return format(rad*180/math.Pi, "d", "m", "s", secDigits)
}

// FormatHMS renders an angle in radians as a signed h:m:s literal.
func FormatHMS(rad float64, secDigits int) string {
	return format(rad*180/math.Pi/15, "h", "m", "s", secDigits)
}

func format(value float64, u1, u2, u3 string, secDigits int) string {
	sign := ""
	if math.Signbit(value) {
		sign = "-"
		value = -value
	}

	whole := math.Floor(value)
	rem := (value - whole) * 60
	min := math.Floor(rem)
	sec := (rem - min) * 60

	// Carry rounding overflow (59.9996s at 3 digits becomes 60.000s).
	if rounded, _ := strconv.ParseFloat(strconv.FormatFloat(sec, 'f', secDigits, 64), 64); rounded >= 60 {
		sec = 0
		min++
		if min >= 60 {
			min = 0
			whole++
		}
	}

	width := secDigits + 3 // two integer digits, the point, the fraction
	if secDigits == 0 {
		width = 2
	}
	return fmt.Sprintf("%s%d%s%02d%s%0*.*f%s",
		sign, int(whole), u1, int(min), u2,
		width, secDigits, sec, u3)
}
