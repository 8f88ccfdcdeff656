// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/taskhive/taskhive/api/logging"
	"github.com/taskhive/taskhive/api/model"
)

// NotificationService broadcasts domain changes to external channels
// (email, chat webhooks). Delivery internals live behind this seam.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyTaskChange(ctx context.Context, changeType string, task model.Task) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New task created",
			zap.String("taskID", task.ID),
			zap.String("title", task.Title),
			zap.Strings("assignees", task.Assignees))
	case "updated":
		logger.Info("NOTIFICATION: Task updated",
			zap.String("taskID", task.ID),
			zap.String("title", task.Title))
	case "deleted":
		logger.Info("NOTIFICATION: Task deleted",
			zap.String("taskID", task.ID))
	case "restored":
		logger.Info("NOTIFICATION: Task restored",
			zap.String("taskID", task.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyOrganizationChange(ctx context.Context, changeType string, org model.Organization) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New organization created",
			zap.String("organizationID", org.ID),
			zap.String("name", org.Name))
	case "updated":
		logger.Info("NOTIFICATION: Organization updated",
			zap.String("organizationID", org.ID))
	case "deleted":
		logger.Info("NOTIFICATION: Organization deleted",
			zap.String("organizationID", org.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	// Mock email sending
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))
	return nil
}
