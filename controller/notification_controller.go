// api/controller/notification_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/api/authz"
	taskhive_errors "github.com/taskhive/taskhive/api/errors"
	"github.com/taskhive/taskhive/api/model"
	"github.com/taskhive/taskhive/api/service"
	"github.com/taskhive/taskhive/api/util"
	helper_util "github.com/taskhive/taskhive/api/util/helper"
)

type NotificationController struct {
	notificationService service.INotificationService
}

func NewNotificationController(notificationService service.INotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// RegisterRoutes registers the API routes
func (nc *NotificationController) RegisterRoutes(r *gin.RouterGroup, guard *authz.Guard) {
	notifications := r.Group("/notifications")
	{
		notifications.POST("", guard.Authorize(authz.ResourceNotification, authz.OpCreate, authz.WithBodyHints()), nc.CreateNotification)
		notifications.GET("/:id", guard.Authorize(authz.ResourceNotification, authz.OpRead), nc.GetNotification)
		notifications.GET("", guard.Authorize(authz.ResourceNotification, authz.OpList), nc.ListNotifications)
		notifications.POST("/:id/read", guard.Authorize(authz.ResourceNotification, authz.OpUpdate), nc.MarkRead)
	}
}

// CreateNotification endpoint
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	var notification model.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid notification data", taskhive_errors.ErrInvalidNotificationData)
		return
	}
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}
	notification.OrganizationID = caller.OrganizationID

	createdNotification, err := nc.notificationService.CreateNotification(c, notification, caller.ID)
	if err != nil {
		switch err {
		case taskhive_errors.ErrInvalidNotificationData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid notification data", err)
		case taskhive_errors.ErrDatabaseOperation:
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create notification", taskhive_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdNotification)
}

// GetNotification endpoint
func (nc *NotificationController) GetNotification(c *gin.Context) {
	notificationID := c.Param("id")

	notification, err := nc.notificationService.GetNotification(c, notificationID)
	if err != nil {
		if err == taskhive_errors.ErrNotificationNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Notification not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notification", err)
		}
		return
	}

	c.JSON(http.StatusOK, notification)
}

// ListNotifications endpoint
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	notifications, err := nc.notificationService.ListNotificationsForUser(c, caller.ID, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list notifications", err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead endpoint
func (nc *NotificationController) MarkRead(c *gin.Context) {
	notificationID := c.Param("id")
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}

	notification, err := nc.notificationService.MarkRead(c, notificationID, caller.ID)
	if err != nil {
		if err == taskhive_errors.ErrNotificationNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Notification not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to mark notification as read", err)
		}
		return
	}

	c.JSON(http.StatusOK, notification)
}
