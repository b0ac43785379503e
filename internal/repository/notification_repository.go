package repository

import (
	"time"

	"event_admin/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	GetByRecipient(recipientID uint) ([]models.Notification, error)
	GetDueScheduled(now time.Time) ([]models.Notification, error)
	Update(notification *models.Notification) error
	CreateDeviceToken(token *models.DeviceToken) error
	GetActiveDeviceTokens(userID uint) ([]models.DeviceToken, error)
	DeactivateDeviceToken(userID uint, token string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) GetByRecipient(recipientID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) GetDueScheduled(now time.Time) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("status = ? AND scheduled_at <= ?",
		string(models.NotificationScheduled), now).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) Update(notification *models.Notification) error {
	return r.db.Save(notification).Error
}

func (r *notificationRepository) CreateDeviceToken(token *models.DeviceToken) error {
	return r.db.Create(token).Error
}

func (r *notificationRepository) GetActiveDeviceTokens(userID uint) ([]models.DeviceToken, error) {
	var tokens []models.DeviceToken
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&tokens).Error
	return tokens, err
}

func (r *notificationRepository) DeactivateDeviceToken(userID uint, token string) error {
	return r.db.Model(&models.DeviceToken{}).
		Where("user_id = ? AND token = ?", userID, token).
		Update("is_active", false).Error
}
