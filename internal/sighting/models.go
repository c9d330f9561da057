package sighting

import (
	"time"
)

// AnimalType is a high-level category for a logged capture. The set below
// drives pickers and defaults; arbitrary values are accepted so the list can
// grow without a schema change.
type AnimalType string

const (
	AnimalDoe    AnimalType = "Doe"
	AnimalBuck   AnimalType = "Buck"
	AnimalTurkey AnimalType = "Turkey"
	AnimalHog    AnimalType = "Hog"
)

// Sighting is one logged trail-camera capture, enriched with weather and
// lunar data at save time. Enriched fields are stored display-ready as
// strings; a failed lookup leaves them empty. Records are written once and
// never updated.
type Sighting struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	Image       []byte `gorm:"type:blob" json:"-"`
	AnimalType  string `gorm:"index:idx_sightings_animal" json:"animalType"`
	BuckSize    string `json:"buckSize,omitempty"`
	Date        string `gorm:"index:idx_sightings_date" json:"date"`
	Time        string `json:"time"`
	TrailCamera string `gorm:"index:idx_sightings_camera" json:"trailCamera"`

	Temperature        string `json:"temperature"`
	FeelsLike          string `json:"feelsLike"`
	Wind               string `json:"wind"`
	WindDirection      string `json:"windDirection"`
	Precipitation      string `json:"precipitation"`
	Sunrise            string `json:"sunrise"`
	Sunset             string `json:"sunset"`
	WeatherDescription string `json:"weatherDescription"`
	MoonPhase          string `json:"moonPhase"`

	CreatedAt time.Time `json:"createdAt"`
}

// Camera is a named, geolocated capture device. Sightings reference cameras
// by name, and coordinates are fixed at creation.
type Camera struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index:idx_cameras_name" json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Locality  string    `json:"locality,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// WeatherSnapshot is one hourly reading from the historical weather service.
// It is transient: the enrichment pipeline flattens it into Sighting fields
// and it is never persisted on its own.
type WeatherSnapshot struct {
	Time           time.Time
	Sunrise        int64 // epoch seconds
	Sunset         int64 // epoch seconds
	TimezoneOffset int   // seconds east of UTC at the camera's location
	Temperature    float64
	FeelsLike      float64
	WindSpeed      float64
	WindDeg        int
	WindGust       float64
	Precipitation  float64
	Descriptions   []string
}

// MoonPhaseReading is the fractional lunar phase for a calendar date,
// where 0.0 is new moon and 0.5 is full moon.
type MoonPhaseReading struct {
	Date  string // YYYY-MM-DD
	Phase float64
}
