package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josiah1121/BuckWatch/internal/sighting"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "buckwatch.db"))
	require.NoError(t, err)
	return s
}

func TestSQLiteStoreRoundtrip(t *testing.T) {
	s := openTestDB(t)

	cam := &sighting.Camera{ID: "cam-1", Name: "North Ridge", Latitude: 35.0, Longitude: -80.0}
	require.NoError(t, s.SaveCamera(cam))

	got, err := s.CameraByName("North Ridge")
	require.NoError(t, err)
	assert.Equal(t, "cam-1", got.ID)
	assert.InDelta(t, -80.0, got.Longitude, 0.0001)

	_, err = s.CameraByName("missing")
	require.ErrorIs(t, err, sighting.ErrNotFound)

	rec := &sighting.Sighting{
		ID:            "s-1",
		AnimalType:    "Buck",
		BuckSize:      "8-point",
		Date:          "2024-11-03",
		Time:          "06:45",
		TrailCamera:   "North Ridge",
		Temperature:   "54.2",
		WindDirection: "SSW",
		MoonPhase:     "0.27",
		Image:         []byte{0xff, 0xd8, 0xff},
	}
	require.NoError(t, s.SaveSighting(rec))

	recs, err := s.Sightings(sighting.Filter{Camera: "North Ridge", AnimalType: "Buck"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "54.2", recs[0].Temperature)
	assert.Equal(t, "SSW", recs[0].WindDirection)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, recs[0].Image)
}

func TestSQLiteStoreDuplicateCameraNamesResolveToOldest(t *testing.T) {
	s := openTestDB(t)

	older := &sighting.Camera{ID: "first", Name: "North Ridge", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &sighting.Camera{ID: "second", Name: "North Ridge", CreatedAt: time.Now()}
	require.NoError(t, s.SaveCamera(older))
	require.NoError(t, s.SaveCamera(newer))

	cam, err := s.CameraByName("North Ridge")
	require.NoError(t, err)
	assert.Equal(t, "first", cam.ID)
}

func TestSQLiteStoreCountsByAnimalType(t *testing.T) {
	s := openTestDB(t)

	for i, animal := range []string{"Buck", "Buck", "Doe", "Hog"} {
		require.NoError(t, s.SaveSighting(&sighting.Sighting{
			ID:         string(rune('a' + i)),
			AnimalType: animal,
		}))
	}

	counts, err := s.CountsByAnimalType()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Buck": 2, "Doe": 1, "Hog": 1}, counts)
}

func TestSQLiteStoreEmptyListings(t *testing.T) {
	s := openTestDB(t)

	recs, err := s.Sightings(sighting.Filter{})
	require.NoError(t, err)
	assert.Empty(t, recs)

	cams, err := s.Cameras()
	require.NoError(t, err)
	assert.Empty(t, cams)

	counts, err := s.CountsByAnimalType()
	require.NoError(t, err)
	assert.Empty(t, counts)
}
