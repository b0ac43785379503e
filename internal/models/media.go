package models

import (
	"time"

	"gorm.io/gorm"
)

// MediaItem tracks an object uploaded to the media bucket. URL is a
// presigned link computed on read, never stored.
type MediaItem struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Key         string         `json:"key" gorm:"unique;not null"`
	URL         string         `json:"url,omitempty" gorm:"-"`
	ContentType string         `json:"content_type"`
	Category    string         `json:"category" gorm:"index"` // staff, portfolio, product
	UploadedBy  uint           `json:"uploaded_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
