package sighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindDirectionBoundaries(t *testing.T) {
	// Each 22.5 degree boundary maps exactly onto a compass point.
	boundaries := []struct {
		degrees int
		want    string
	}{
		{0, "N"},
		{23, "NNE"},  // 22.5 rounded up
		{45, "NE"},
		{68, "ENE"},
		{90, "E"},
		{113, "ESE"},
		{135, "SE"},
		{158, "SSE"},
		{180, "S"},
		{203, "SSW"},
		{225, "SW"},
		{248, "WSW"},
		{270, "W"},
		{293, "WNW"},
		{315, "NW"},
		{338, "NNW"},
		{360, "N"},
	}
	for _, tt := range boundaries {
		assert.Equal(t, tt.want, WindDirection(tt.degrees), "degrees=%d", tt.degrees)
	}
}

func TestWindDirectionMidpoints(t *testing.T) {
	// Midpoints between boundaries round to the nearest point; exact
	// half-sector values round up per math.Round.
	midpoints := []struct {
		degrees int
		want    string
	}{
		{11, "N"},   // 11.25 sector edge, still N at 11
		{12, "NNE"}, // past the half sector
		{33, "NNE"},
		{56, "NE"},
		{78, "ENE"},
		{101, "E"},
		{123, "ESE"},
		{146, "SE"},
		{168, "SSE"},
		{191, "S"},
		{200, "SSW"},
		{213, "SSW"},
		{236, "SW"},
		{258, "WSW"},
		{281, "W"},
		{303, "WNW"},
		{326, "NW"},
		{348, "NNW"},
		{355, "N"},
	}
	for _, tt := range midpoints {
		assert.Equal(t, tt.want, WindDirection(tt.degrees), "degrees=%d", tt.degrees)
	}
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2024, 11, 3, 23, 59, 58, 123, time.UTC)
	clock := time.Date(1999, 1, 1, 6, 45, 33, 456, time.UTC)

	got := CombineDateTime(date, clock)

	assert.Equal(t, time.Date(2024, 11, 3, 6, 45, 0, 0, time.UTC), got)
}

func TestCombineDateTimeKeepsDateLocation(t *testing.T) {
	zone := time.FixedZone("CST", -6*3600)
	date := time.Date(2024, 11, 3, 0, 0, 0, 0, zone)
	clock := time.Date(0, 1, 1, 18, 30, 0, 0, time.UTC)

	got := CombineDateTime(date, clock)

	assert.Equal(t, zone, got.Location())
	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, 0, got.Second())
}

func TestFormatMeasure(t *testing.T) {
	assert.Equal(t, "54.2", FormatMeasure(54.2))
	assert.Equal(t, "0.27", FormatMeasure(0.27))
	assert.Equal(t, "0", FormatMeasure(0))
	assert.Equal(t, "-3.5", FormatMeasure(-3.5))
	assert.Equal(t, "12", FormatMeasure(12.0))
}

func TestFormatClock(t *testing.T) {
	// 2024-11-03 11:48:00 UTC is 06:48 AM at UTC-5.
	epoch := time.Date(2024, 11, 3, 11, 48, 0, 0, time.UTC).Unix()
	assert.Equal(t, "6:48 AM", FormatClock(epoch, -5*3600))
	assert.Equal(t, "11:48 AM", FormatClock(epoch, 0))
}
