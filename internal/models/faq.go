package models

import (
	"time"

	"gorm.io/gorm"
)

type FAQ struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Question    string         `json:"question" gorm:"not null"`
	Answer      string         `json:"answer" gorm:"type:text;not null"`
	Category    string         `json:"category"`
	SortOrder   int            `json:"sort_order" gorm:"default:0"`
	IsPublished bool           `json:"is_published" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
