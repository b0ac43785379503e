package services

import (
	"log"

	"event_admin/internal/models"
	"event_admin/internal/repository"
)

type StaffService interface {
	CreateStaff(staff *models.Staff) error
	GetStaff(id uint) (*models.Staff, error)
	GetAllStaff() ([]models.Staff, error)
	GetActiveStaff() ([]models.Staff, error)
	UpdateStaff(staff *models.Staff) error
	SetPhoto(staffID uint, photoKey string) (*models.Staff, error)
	DeleteStaff(id uint) error
}

type staffService struct {
	staffRepo    repository.StaffRepository
	mediaService MediaService
}

func NewStaffService(staffRepo repository.StaffRepository, mediaService MediaService) StaffService {
	return &staffService{staffRepo: staffRepo, mediaService: mediaService}
}

func (s *staffService) CreateStaff(staff *models.Staff) error {
	if staff.Name == "" {
		return validation("staff name is required")
	}
	if staff.Role == "" {
		return validation("staff role is required")
	}
	return s.staffRepo.Create(staff)
}

func (s *staffService) GetStaff(id uint) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "staff member")
	}
	s.attachPhotoURL(staff)
	return staff, nil
}

func (s *staffService) GetAllStaff() ([]models.Staff, error) {
	staff, err := s.staffRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range staff {
		s.attachPhotoURL(&staff[i])
	}
	return staff, nil
}

func (s *staffService) GetActiveStaff() ([]models.Staff, error) {
	staff, err := s.staffRepo.GetActive()
	if err != nil {
		return nil, err
	}
	for i := range staff {
		s.attachPhotoURL(&staff[i])
	}
	return staff, nil
}

func (s *staffService) UpdateStaff(staff *models.Staff) error {
	return s.staffRepo.Update(staff)
}

func (s *staffService) SetPhoto(staffID uint, photoKey string) (*models.Staff, error) {
	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return nil, notFound(err, "staff member")
	}
	staff.PhotoKey = photoKey
	if err := s.staffRepo.Update(staff); err != nil {
		return nil, err
	}
	s.attachPhotoURL(staff)
	return staff, nil
}

func (s *staffService) DeleteStaff(id uint) error {
	return s.staffRepo.Delete(id)
}

func (s *staffService) attachPhotoURL(staff *models.Staff) {
	if staff.PhotoKey == "" || s.mediaService == nil {
		return
	}
	url, err := s.mediaService.PresignURL(staff.PhotoKey)
	if err != nil {
		log.Printf("warning: failed to presign staff photo: %v", err)
		return
	}
	staff.PhotoURL = url
}
