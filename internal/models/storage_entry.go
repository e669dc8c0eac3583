package models

import "time"

// StorageEntry is one key of the local-storage namespace. Value holds the
// raw string exactly as the web client keeps it (usually JSON).
type StorageEntry struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PutStorageRequest struct {
	Value string `json:"value"`
}
