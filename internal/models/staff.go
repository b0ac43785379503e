package models

import (
	"time"

	"gorm.io/gorm"
)

type Staff struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Role        string         `json:"role" gorm:"not null"` // planner, coordinator, photographer, ...
	Bio         string         `json:"bio" gorm:"type:text"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phone_number"`
	PhotoKey    string         `json:"photo_key"`
	PhotoURL    string         `json:"photo_url,omitempty" gorm:"-"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
