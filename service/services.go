// api/service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/taskhive/taskhive/api/authz"
	"github.com/taskhive/taskhive/api/dao"
	"github.com/taskhive/taskhive/api/util"
)

type Services struct {
	Task         ITaskService
	Org          IOrganizationService
	Notification INotificationService
}

func InitializeServices(
	driver neo4j.Driver,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, authz.Stores, error) {
	taskDAO := dao.NewTaskDAO(driver)
	organizationDAO := dao.NewOrganizationDAO(driver)
	notificationDAO := dao.NewNotificationDAO(driver)

	stores := authz.Stores{
		Organizations:  organizationDAO,
		Departments:    dao.NewDepartmentDAO(driver),
		Users:          dao.NewUserDAO(driver),
		Tasks:          taskDAO,
		TaskActivities: dao.NewTaskActivityDAO(driver),
		TaskComments:   dao.NewTaskCommentDAO(driver),
		Materials:      dao.NewMaterialDAO(driver),
		Vendors:        dao.NewVendorDAO(driver),
		Notifications:  notificationDAO,
	}

	services := &Services{
		Task:         NewTaskService(taskDAO, validationUtil, cacheService, notificationSvc, eventBus),
		Org:          NewOrganizationService(organizationDAO, validationUtil, cacheService, notificationSvc, eventBus),
		Notification: NewNotificationService(notificationDAO, validationUtil, cacheService),
	}

	return services, stores, nil
}
