package sighting

import (
	"context"
	"time"
)

// WeatherProvider abstracts the historical weather lookup
// (e.g. OpenWeather One Call time machine).
type WeatherProvider interface {
	Name() string
	Fetch(ctx context.Context, lat, lon float64, instant time.Time) (WeatherSnapshot, error)
}

// MoonProvider abstracts the lunar phase lookup for a single calendar day
// (date in YYYY-MM-DD form; the upstream has no intra-day granularity).
type MoonProvider interface {
	Name() string
	Fetch(ctx context.Context, lat, lon float64, date string) (MoonPhaseReading, error)
}

// Filter narrows a sighting listing. Zero values match everything.
type Filter struct {
	Camera     string
	AnimalType string
}

// Store is the contract the record store (embedded database or in-memory)
// must satisfy. Lookups that find nothing return ErrNotFound.
type Store interface {
	SaveSighting(s *Sighting) error
	SaveCamera(c *Camera) error
	CameraByName(name string) (Camera, error)
	Cameras() ([]Camera, error)
	Sightings(f Filter) ([]Sighting, error)
	CountsByAnimalType() (map[string]int, error)
}
