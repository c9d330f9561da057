package sighting

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kelvins/geocoder"
)

// Service is the enrichment pipeline: it turns a (photo, camera, timestamp)
// tuple into a fully populated Sighting via the weather and moon lookups and
// hands the result to the record store.
type Service struct {
	store       Store
	weather     WeatherProvider
	moon        MoonProvider
	geocoderKey string
}

// NewService creates a new Service. geocoderKey is optional; when empty,
// camera creation skips reverse geocoding.
func NewService(store Store, weather WeatherProvider, moon MoonProvider, geocoderKey string) *Service {
	return &Service{
		store:       store,
		weather:     weather,
		moon:        moon,
		geocoderKey: geocoderKey,
	}
}

// EnrichRequest carries the user-supplied half of a sighting. Date supplies
// the calendar day and Time the hour/minute; the pipeline combines them into
// one instant with seconds zeroed.
type EnrichRequest struct {
	CameraName string
	Name       string
	Image      []byte
	AnimalType string
	BuckSize   string
	Date       time.Time
	Time       time.Time
}

// Enrich resolves the camera, runs both lookups concurrently, assembles the
// record, and persists it. An unknown camera aborts before any network call.
// A failed lookup leaves its fields empty and is logged; the record is still
// persisted. Each call produces a record with a fresh identifier, so
// repeating identical inputs yields distinct records.
func (s *Service) Enrich(ctx context.Context, req EnrichRequest) (*Sighting, error) {
	cam, err := s.store.CameraByName(req.CameraName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrCameraNotFound, req.CameraName)
		}
		return nil, err
	}

	instant := CombineDateTime(req.Date, req.Time)

	var (
		wg         sync.WaitGroup
		snap       WeatherSnapshot
		weatherErr error
		phase      MoonPhaseReading
		moonErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		snap, weatherErr = s.weather.Fetch(ctx, cam.Latitude, cam.Longitude, instant)
	}()
	go func() {
		defer wg.Done()
		phase, moonErr = s.moon.Fetch(ctx, cam.Latitude, cam.Longitude, instant.Format(DateLayout))
	}()
	wg.Wait()

	// Both lookups have settled; never write after cancellation.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	rec := &Sighting{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Image:       req.Image,
		AnimalType:  req.AnimalType,
		Date:        instant.Format(DateLayout),
		Time:        instant.Format(TimeLayout),
		TrailCamera: cam.Name,
	}
	if req.AnimalType == string(AnimalBuck) {
		rec.BuckSize = req.BuckSize
	}

	if weatherErr != nil {
		log.Printf("sighting: weather lookup failed for camera %q: %v", cam.Name, weatherErr)
	} else {
		rec.Temperature = FormatMeasure(snap.Temperature)
		rec.FeelsLike = FormatMeasure(snap.FeelsLike)
		rec.Wind = FormatMeasure(snap.WindSpeed)
		rec.WindDirection = WindDirection(snap.WindDeg)
		rec.Precipitation = FormatMeasure(snap.Precipitation)
		rec.Sunrise = FormatClock(snap.Sunrise, snap.TimezoneOffset)
		rec.Sunset = FormatClock(snap.Sunset, snap.TimezoneOffset)
		if len(snap.Descriptions) > 0 {
			rec.WeatherDescription = snap.Descriptions[0]
		}
	}

	if moonErr != nil {
		log.Printf("sighting: moon phase lookup failed for camera %q: %v", cam.Name, moonErr)
	} else {
		rec.MoonPhase = FormatMeasure(phase.Phase)
	}

	if err := s.store.SaveSighting(rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}

	return rec, nil
}

// CreateCamera registers a new camera at the given map pin. When a geocoder
// key is configured the pin is reverse geocoded to a locality label;
// geocoding failures are logged and the camera is saved without one.
func (s *Service) CreateCamera(name string, lat, lon float64) (*Camera, error) {
	cam := &Camera{
		ID:        uuid.NewString(),
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
	}

	if s.geocoderKey != "" {
		geocoder.ApiKey = s.geocoderKey
		addresses, err := geocoder.GeocodingReverse(geocoder.Location{Latitude: lat, Longitude: lon})
		switch {
		case err != nil:
			log.Printf("sighting: reverse geocoding failed for camera %q: %v", name, err)
		case len(addresses) > 0:
			cam.Locality = formatLocality(addresses[0])
		}
	}

	if err := s.store.SaveCamera(cam); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return cam, nil
}

func formatLocality(addr geocoder.Address) string {
	city := addr.City
	if city == "" {
		city = addr.County
	}
	switch {
	case city != "" && addr.State != "":
		return city + ", " + addr.State
	case city != "":
		return city
	default:
		return addr.State
	}
}

// Cameras delegates to the underlying store.
func (s *Service) Cameras() ([]Camera, error) {
	return s.store.Cameras()
}

// Sightings delegates to the underlying store.
func (s *Service) Sightings(f Filter) ([]Sighting, error) {
	return s.store.Sightings(f)
}
