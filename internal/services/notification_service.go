package services

import (
	"fmt"
	"log"
	"time"

	"event_admin/internal/models"
	"event_admin/internal/repository"
	"event_admin/pkg/push"
)

// PushSender is the external push-delivery gateway. *push.Client satisfies
// it; tests substitute a local server or stub.
type PushSender interface {
	Send(userIDs []string, payload push.Payload, priority string) (*push.SendResponse, error)
}

type NotificationService interface {
	SendToUser(recipientID uint, title, body, notificationType, referenceType string, referenceID uint) (*models.Notification, error)
	Schedule(recipientID uint, title, body string, at time.Time) (*models.Notification, error)
	CancelScheduled(id uint) error
	ProcessScheduled(now time.Time) error
	GetByRecipient(recipientID uint) ([]models.Notification, error)
	RegisterDevice(userID uint, token, platform string) error
	UnregisterDevice(userID uint, token string) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	pushClient       PushSender
}

func NewNotificationService(notificationRepo repository.NotificationRepository, pushClient PushSender) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		pushClient:       pushClient,
	}
}

// SendToUser records the notification and attempts delivery exactly once.
// Without active device tokens the record is stored as delivered, meaning
// in-app only. A failed attempt is terminal; there are no retries.
func (s *notificationService) SendToUser(recipientID uint, title, body, notificationType, referenceType string, referenceID uint) (*models.Notification, error) {
	if title == "" {
		return nil, validation("notification title is required")
	}

	tokens, err := s.notificationRepo.GetActiveDeviceTokens(recipientID)
	if err != nil {
		return nil, err
	}

	notification := &models.Notification{
		RecipientID:   recipientID,
		Title:         title,
		Body:          body,
		Type:          notificationType,
		ReferenceType: referenceType,
		ReferenceID:   referenceID,
		Status:        string(models.NotificationPending),
	}
	if len(tokens) == 0 {
		notification.Status = string(models.NotificationDelivered)
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return notification, nil
	}

	s.attemptSend(notification)
	return notification, nil
}

// attemptSend performs the single delivery attempt and records the outcome.
func (s *notificationService) attemptSend(notification *models.Notification) {
	now := time.Now()
	notification.SentAt = &now

	resp, err := s.pushClient.Send(
		[]string{fmt.Sprintf("%d", notification.RecipientID)},
		push.Payload{
			Title: notification.Title,
			Body:  notification.Body,
			Data: map[string]string{
				"type":           notification.Type,
				"reference_type": notification.ReferenceType,
				"reference_id":   fmt.Sprintf("%d", notification.ReferenceID),
			},
		},
		"normal",
	)
	if err != nil {
		notification.Status = string(models.NotificationFailed)
		notification.FailureReason = err.Error()
	} else if resp.SuccessCount == 0 {
		notification.Status = string(models.NotificationFailed)
		notification.FailureReason = resp.Message
	} else {
		notification.Status = string(models.NotificationDelivered)
	}

	if err := s.notificationRepo.Update(notification); err != nil {
		// The attempt already happened; the stale status row is the only loss.
		log.Printf("warning: failed to record notification outcome: %v", err)
	}
}

func (s *notificationService) Schedule(recipientID uint, title, body string, at time.Time) (*models.Notification, error) {
	if title == "" {
		return nil, validation("notification title is required")
	}

	notification := &models.Notification{
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		Type:        string(models.NotificationTypeSystem),
		Status:      string(models.NotificationScheduled),
		ScheduledAt: &at,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// CancelScheduled cancels a scheduled notification. Only the scheduled state
// can be cancelled; anything else has already been attempted.
func (s *notificationService) CancelScheduled(id uint) error {
	notification, err := s.notificationRepo.GetByID(id)
	if err != nil {
		return notFound(err, "notification")
	}

	if notification.Status != string(models.NotificationScheduled) {
		return validation("notification %d is %s, only scheduled notifications can be cancelled",
			id, notification.Status)
	}

	notification.Status = string(models.NotificationCancelled)
	return s.notificationRepo.Update(notification)
}

// ProcessScheduled attempts delivery for every scheduled notification that
// has come due.
func (s *notificationService) ProcessScheduled(now time.Time) error {
	due, err := s.notificationRepo.GetDueScheduled(now)
	if err != nil {
		return err
	}

	for i := range due {
		s.attemptSend(&due[i])
	}
	return nil
}

func (s *notificationService) GetByRecipient(recipientID uint) ([]models.Notification, error) {
	return s.notificationRepo.GetByRecipient(recipientID)
}

func (s *notificationService) RegisterDevice(userID uint, token, platform string) error {
	if token == "" {
		return validation("device token is required")
	}
	return s.notificationRepo.CreateDeviceToken(&models.DeviceToken{
		UserID:   userID,
		Token:    token,
		Platform: platform,
		IsActive: true,
	})
}

func (s *notificationService) UnregisterDevice(userID uint, token string) error {
	return s.notificationRepo.DeactivateDeviceToken(userID, token)
}
