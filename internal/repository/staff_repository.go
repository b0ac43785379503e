package repository

import (
	"event_admin/internal/models"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(staff *models.Staff) error
	GetByID(id uint) (*models.Staff, error)
	GetAll() ([]models.Staff, error)
	GetActive() ([]models.Staff, error)
	Update(staff *models.Staff) error
	Delete(id uint) error
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepository) GetByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) GetAll() ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.Order("name ASC").Find(&staff).Error
	return staff, err
}

func (r *staffRepository) GetActive() ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&staff).Error
	return staff, err
}

func (r *staffRepository) Update(staff *models.Staff) error {
	return r.db.Save(staff).Error
}

func (r *staffRepository) Delete(id uint) error {
	return r.db.Delete(&models.Staff{}, id).Error
}
