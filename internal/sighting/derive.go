package sighting

import (
	"math"
	"strconv"
	"time"
)

const (
	// DateLayout is the wire and storage format for capture dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire and storage format for capture times.
	TimeLayout = "15:04"
	// ClockLayout is the display format for sunrise/sunset times.
	ClockLayout = "3:04 PM"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection maps wind degrees to a 16-point compass label.
// Both 0 and 360 degrees map to "N".
func WindDirection(degrees int) string {
	idx := int(math.Round(float64(degrees)/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

// CombineDateTime builds one instant from the calendar date of date and the
// hour/minute of clock, with seconds zeroed. Both halves are required; the
// pipeline never accepts a date without a time or vice versa.
func CombineDateTime(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		date.Location(),
	)
}

// FormatMeasure renders a numeric reading as a display string with no
// trailing zeros, e.g. 54.2 -> "54.2", 0.27 -> "0.27".
func FormatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatClock renders epoch seconds as a local wall-clock label using the
// camera location's UTC offset reported by the weather service.
func FormatClock(epoch int64, tzOffsetSeconds int) string {
	zone := time.FixedZone("", tzOffsetSeconds)
	return time.Unix(epoch, 0).In(zone).Format(ClockLayout)
}
