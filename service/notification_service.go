// api/service/notification_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskhive/taskhive/api/dao"
	taskhive_errors "github.com/taskhive/taskhive/api/errors"
	logger "github.com/taskhive/taskhive/api/logging"
	"github.com/taskhive/taskhive/api/model"
	"github.com/taskhive/taskhive/api/util"
)

// INotificationService defines the interface for notification operations
type INotificationService interface {
	CreateNotification(ctx context.Context, notification model.Notification, creatorID string) (*model.Notification, error)
	GetNotification(ctx context.Context, notificationID string) (*model.Notification, error)
	ListNotificationsForUser(ctx context.Context, userID string, limit, offset int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) (*model.Notification, error)
}

// NotificationService handles business logic for notification operations
type NotificationService struct {
	notificationDAO *dao.NotificationDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
}

var _ INotificationService = &NotificationService{}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(notificationDAO *dao.NotificationDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService) *NotificationService {
	return &NotificationService{
		notificationDAO: notificationDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
	}
}

func (s *NotificationService) CreateNotification(ctx context.Context, notification model.Notification, creatorID string) (*model.Notification, error) {
	notification.CreatedBy = creatorID
	if err := s.validationUtil.ValidateNotification(notification); err != nil {
		return nil, taskhive_errors.ErrInvalidNotificationData
	}

	notificationID, err := s.notificationDAO.CreateNotification(ctx, notification)
	if err != nil {
		return nil, err
	}

	return s.notificationDAO.GetNotification(ctx, notificationID)
}

func (s *NotificationService) GetNotification(ctx context.Context, notificationID string) (*model.Notification, error) {
	if cached, err := s.cacheService.GetNotification(ctx, notificationID); err == nil && cached != nil {
		return cached, nil
	}

	notification, err := s.notificationDAO.GetNotification(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetNotification(ctx, *notification); err != nil {
		logger.Warn("Failed to cache notification", zap.Error(err), zap.String("notificationID", notificationID))
	}
	return notification, nil
}

func (s *NotificationService) ListNotificationsForUser(ctx context.Context, userID string, limit, offset int) ([]*model.Notification, error) {
	return s.notificationDAO.ListNotificationsForUser(ctx, userID, limit, offset)
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID string) (*model.Notification, error) {
	marked, err := s.notificationDAO.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.DeleteNotification(ctx, notificationID); err != nil {
		logger.Warn("Failed to evict stale notification from cache",
			zap.Error(err),
			zap.String("notificationID", notificationID))
	}
	return marked, nil
}
