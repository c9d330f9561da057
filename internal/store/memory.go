package store

import (
	"sync"

	"github.com/josiah1121/BuckWatch/internal/sighting"
)

// MemoryStore is a concurrency-safe in-memory implementation of
// sighting.Store, used when no database path is configured and in tests.
type MemoryStore struct {
	mu        sync.RWMutex
	sightings []sighting.Sighting
	cameras   []sighting.Camera
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveSighting appends a copy of the record.
func (s *MemoryStore) SaveSighting(rec *sighting.Sighting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sightings = append(s.sightings, *rec)
	return nil
}

// SaveCamera appends a copy of the camera. Name uniqueness is not enforced,
// matching the lookup-by-name semantics of CameraByName.
func (s *MemoryStore) SaveCamera(cam *sighting.Camera) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cameras = append(s.cameras, *cam)
	return nil
}

// CameraByName returns the first camera with the given name in insertion
// order. Duplicate names resolve to the oldest camera.
func (s *MemoryStore) CameraByName(name string) (sighting.Camera, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cam := range s.cameras {
		if cam.Name == name {
			return cam, nil
		}
	}
	return sighting.Camera{}, sighting.ErrNotFound
}

// Cameras returns all cameras in insertion order.
func (s *MemoryStore) Cameras() ([]sighting.Camera, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]sighting.Camera, len(s.cameras))
	copy(out, s.cameras)
	return out, nil
}

// Sightings returns all records matching the filter, newest first.
func (s *MemoryStore) Sightings(f sighting.Filter) ([]sighting.Sighting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []sighting.Sighting
	for i := len(s.sightings) - 1; i >= 0; i-- {
		rec := s.sightings[i]
		if f.Camera != "" && rec.TrailCamera != f.Camera {
			continue
		}
		if f.AnimalType != "" && rec.AnimalType != f.AnimalType {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// CountsByAnimalType returns the number of sightings per animal type.
func (s *MemoryStore) CountsByAnimalType() (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, rec := range s.sightings {
		counts[rec.AnimalType]++
	}
	return counts, nil
}
