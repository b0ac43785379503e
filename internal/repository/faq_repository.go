package repository

import (
	"event_admin/internal/models"

	"gorm.io/gorm"
)

type FAQRepository interface {
	Create(faq *models.FAQ) error
	GetByID(id uint) (*models.FAQ, error)
	GetAll() ([]models.FAQ, error)
	GetPublished() ([]models.FAQ, error)
	Update(faq *models.FAQ) error
	Delete(id uint) error
}

type faqRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Create(faq *models.FAQ) error {
	return r.db.Create(faq).Error
}

func (r *faqRepository) GetByID(id uint) (*models.FAQ, error) {
	var faq models.FAQ
	err := r.db.First(&faq, id).Error
	if err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) GetAll() ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.Order("sort_order ASC, id ASC").Find(&faqs).Error
	return faqs, err
}

func (r *faqRepository) GetPublished() ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.Where("is_published = ?", true).
		Order("sort_order ASC, id ASC").Find(&faqs).Error
	return faqs, err
}

func (r *faqRepository) Update(faq *models.FAQ) error {
	return r.db.Save(faq).Error
}

func (r *faqRepository) Delete(id uint) error {
	return r.db.Delete(&models.FAQ{}, id).Error
}
