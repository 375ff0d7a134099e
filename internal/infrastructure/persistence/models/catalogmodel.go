package models

import "time"

// CatalogEntryModel stores every catalog in one table keyed by kind.
// The key column is named entry_key because KEY is reserved in MySQL.
type CatalogEntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Kind      string `gorm:"size:20;not null;uniqueIndex:idx_catalog_kind_key,priority:1"`
	Key       string `gorm:"column:entry_key;size:100;not null;uniqueIndex:idx_catalog_kind_key,priority:2"`
	Name      string `gorm:"size:150;not null"`
	Active    bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CatalogEntryModel) TableName() string {
	return "catalog_entries"
}
