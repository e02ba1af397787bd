package models

import "time"

// EntityRecord is the row layout of the postgres storage backend: one row
// per collection key, the whole collection serialized in Value.
type EntityRecord struct {
	Key       string    `gorm:"column:record_key;primaryKey;size:100"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (EntityRecord) TableName() string {
	return "entity_records"
}
