package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/josiah1121/BuckWatch/internal/sighting"
)

// SQLiteStore implements sighting.Store on an embedded SQLite database.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the database at path and migrates
// the sighting and camera tables.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&sighting.Sighting{}, &sighting.Camera{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// SaveSighting inserts a new sighting record.
func (s *SQLiteStore) SaveSighting(rec *sighting.Sighting) error {
	return s.db.Create(rec).Error
}

// SaveCamera inserts a new camera. Names are not unique; CameraByName
// resolves duplicates to the oldest row.
func (s *SQLiteStore) SaveCamera(cam *sighting.Camera) error {
	return s.db.Create(cam).Error
}

// CameraByName returns the oldest camera with the given name.
func (s *SQLiteStore) CameraByName(name string) (sighting.Camera, error) {
	var cam sighting.Camera
	err := s.db.Where("name = ?", name).Order("created_at asc").First(&cam).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sighting.Camera{}, sighting.ErrNotFound
		}
		return sighting.Camera{}, err
	}
	return cam, nil
}

// Cameras returns all cameras, oldest first.
func (s *SQLiteStore) Cameras() ([]sighting.Camera, error) {
	var cams []sighting.Camera
	if err := s.db.Order("created_at asc").Find(&cams).Error; err != nil {
		return nil, err
	}
	return cams, nil
}

// Sightings returns records matching the filter, newest first.
func (s *SQLiteStore) Sightings(f sighting.Filter) ([]sighting.Sighting, error) {
	tx := s.db.Model(&sighting.Sighting{})
	if f.Camera != "" {
		tx = tx.Where("trail_camera = ?", f.Camera)
	}
	if f.AnimalType != "" {
		tx = tx.Where("animal_type = ?", f.AnimalType)
	}

	var recs []sighting.Sighting
	if err := tx.Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// CountsByAnimalType returns the number of sightings per animal type.
func (s *SQLiteStore) CountsByAnimalType() (map[string]int, error) {
	var rows []struct {
		AnimalType string
		N          int
	}
	err := s.db.Model(&sighting.Sighting{}).
		Select("animal_type, count(*) as n").
		Group("animal_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.AnimalType] = r.N
	}
	return counts, nil
}
