package services

import (
	"event_admin/internal/models"
	"event_admin/internal/repository"
)

type FAQService interface {
	CreateFAQ(faq *models.FAQ) error
	GetFAQ(id uint) (*models.FAQ, error)
	GetAllFAQs() ([]models.FAQ, error)
	GetPublishedFAQs() ([]models.FAQ, error)
	UpdateFAQ(faq *models.FAQ) error
	DeleteFAQ(id uint) error
}

type faqService struct {
	faqRepo repository.FAQRepository
}

func NewFAQService(faqRepo repository.FAQRepository) FAQService {
	return &faqService{faqRepo: faqRepo}
}

func (s *faqService) CreateFAQ(faq *models.FAQ) error {
	if faq.Question == "" || faq.Answer == "" {
		return validation("faq question and answer are required")
	}
	return s.faqRepo.Create(faq)
}

func (s *faqService) GetFAQ(id uint) (*models.FAQ, error) {
	faq, err := s.faqRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "faq")
	}
	return faq, nil
}

func (s *faqService) GetAllFAQs() ([]models.FAQ, error) {
	return s.faqRepo.GetAll()
}

func (s *faqService) GetPublishedFAQs() ([]models.FAQ, error) {
	return s.faqRepo.GetPublished()
}

func (s *faqService) UpdateFAQ(faq *models.FAQ) error {
	return s.faqRepo.Update(faq)
}

func (s *faqService) DeleteFAQ(id uint) error {
	return s.faqRepo.Delete(id)
}
