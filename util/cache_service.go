// api/util/cache_service.go

package util

import (
	"context"

	"github.com/taskhive/taskhive/api/db"
	"github.com/taskhive/taskhive/api/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetTask(ctx context.Context, taskID string) (*model.Task, error) {
	return db.GetCachedTask(ctx, taskID)
}

func (c *CacheService) SetTask(ctx context.Context, task model.Task) error {
	return db.CacheTask(ctx, &task)
}

func (c *CacheService) DeleteTask(ctx context.Context, taskID string) error {
	return db.DeleteCachedTask(ctx, taskID)
}

func (c *CacheService) GetOrganization(ctx context.Context, organizationID string) (*model.Organization, error) {
	return db.GetCachedOrganization(ctx, organizationID)
}

func (c *CacheService) SetOrganization(ctx context.Context, organization model.Organization) error {
	return db.CacheOrganization(ctx, &organization)
}

func (c *CacheService) DeleteOrganization(ctx context.Context, organizationID string) error {
	return db.DeleteCachedOrganization(ctx, organizationID)
}

func (c *CacheService) GetNotification(ctx context.Context, notificationID string) (*model.Notification, error) {
	return db.GetCachedNotification(ctx, notificationID)
}

func (c *CacheService) SetNotification(ctx context.Context, notification model.Notification) error {
	return db.CacheNotification(ctx, &notification)
}

func (c *CacheService) DeleteNotification(ctx context.Context, notificationID string) error {
	return db.DeleteCachedNotification(ctx, notificationID)
}
