package kvstore

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the single table backing every collection key.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (KVEntry) TableName() string { return "kv_entries" }

type sqliteStore struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) Store { return &sqliteStore{db: db} }

func (s *sqliteStore) Get(key string) (string, bool, error) {
	var e KVEntry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *sqliteStore) Put(key, value string) error {
	e := KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (s *sqliteStore) Delete(key string) error {
	return s.db.Delete(&KVEntry{}, "key = ?", key).Error
}
