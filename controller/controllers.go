// api/controller/controllers.go
package controller

import (
	"github.com/taskhive/taskhive/api/audit"
	"github.com/taskhive/taskhive/api/service"
)

type Controllers struct {
	Task         *TaskController
	Org          *OrganizationController
	Notification *NotificationController
	Audit        *AuditController
}

func InitializeControllers(services *service.Services, auditService audit.Service) *Controllers {
	return &Controllers{
		Task:         NewTaskController(services.Task),
		Org:          NewOrganizationController(services.Org),
		Notification: NewNotificationController(services.Notification),
		Audit:        NewAuditController(auditService),
	}
}
