package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one persisted key-value row. Every collection in the app is a
// single JSON document under its own key.
type KVEntry struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// KVStore adapts the SQLite table to the string-key/JSON-value contract the
// rest of the app is written against. Writes rewrite the whole document;
// there are no transactional guarantees across keys.
type KVStore struct {
	database *gorm.DB
}

func NewKVStore(database *gorm.DB) *KVStore {
	return &KVStore{database: database}
}

// Get unmarshals the value stored under key into out. The second return is
// false when the key is absent.
func (store *KVStore) Get(key string, out any) (bool, error) {
	var entry KVEntry
	if err := store.database.First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read key %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(entry.Value), out); err != nil {
		return false, fmt.Errorf("decode key %s: %w", key, err)
	}
	return true, nil
}

func (store *KVStore) Set(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode key %s: %w", key, err)
	}

	entry := KVEntry{Key: key, Value: string(encoded), UpdatedAt: time.Now()}
	if err := store.database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error; err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	return nil
}

func (store *KVStore) Remove(key string) error {
	if err := store.database.Delete(&KVEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove key %s: %w", key, err)
	}
	return nil
}
