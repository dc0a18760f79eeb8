// Package history persists past evaluations in a local sqlite database
// so recommendations can be reviewed later with `ventctl history`.
package history

import (
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ventlab/ventctl/internal/errors"
	"github.com/ventlab/ventctl/internal/vent"
)

// Record is one stored evaluation.
type Record struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	FanPower    float64   `json:"fan_power"`
	Overridden  bool      `json:"overridden"`
}

// NewRecord builds a record from a reading and its recommendation.
func NewRecord(s *vent.System, r vent.Reading, rec vent.Recommendation) *Record {
	return &Record{
		TempMin:     s.TempMin(),
		TempMax:     s.TempMax(),
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		FanPower:    rec.FanPower,
		Overridden:  rec.Overridden,
	}
}

// Store is a sqlite-backed evaluation history.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the history database at path and
// migrates its schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.HistoryOpenError(path, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.HistoryOpenError(path, err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, errors.HistoryOpenError(path, err)
	}

	return &Store{db: db}, nil
}

// Append stores one evaluation.
func (s *Store) Append(rec *Record) error {
	if err := s.db.Create(rec).Error; err != nil {
		return errors.Wrap(err, errors.ErrHistory, "failed to store evaluation")
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []Record
	err := s.db.Order("created_at DESC, id DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrHistory, "failed to read history")
	}
	return records, nil
}

// Count returns the total number of stored evaluations.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&Record{}).Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, errors.ErrHistory, "failed to count history")
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
