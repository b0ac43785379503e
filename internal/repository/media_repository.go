package repository

import (
	"event_admin/internal/models"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(item *models.MediaItem) error
	GetByID(id uint) (*models.MediaItem, error)
	GetByKey(key string) (*models.MediaItem, error)
	GetByCategory(category string) ([]models.MediaItem, error)
	Delete(id uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(item *models.MediaItem) error {
	return r.db.Create(item).Error
}

func (r *mediaRepository) GetByID(id uint) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mediaRepository) GetByKey(key string) (*models.MediaItem, error) {
	var item models.MediaItem
	err := r.db.Where("key = ?", key).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mediaRepository) GetByCategory(category string) ([]models.MediaItem, error) {
	var items []models.MediaItem
	err := r.db.Where("category = ?", category).
		Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *mediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.MediaItem{}, id).Error
}
