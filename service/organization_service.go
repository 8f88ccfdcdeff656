// api/service/organization_service.go
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

// IOrganizationService defines the interface for organization operations
type IOrganizationService interface {
	CreateOrganization(ctx context.Context, org model.Organization, creatorID string) (*model.Organization, error)
	UpdateOrganization(ctx context.Context, org model.Organization, updaterID string) (*model.Organization, error)
	DeleteOrganization(ctx context.Context, organizationID string, deleterID string) error
	GetOrganization(ctx context.Context, organizationID string) (*model.Organization, error)
	ListOrganizations(ctx context.Context, limit, offset int) ([]*model.Organization, error)
}

// OrganizationService handles business logic for organization operations
type OrganizationService struct {
	organizationDAO *dao.OrganizationDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IOrganizationService = &OrganizationService{}

// NewOrganizationService creates a new instance of OrganizationService
func NewOrganizationService(organizationDAO *dao.OrganizationDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *OrganizationService {
	service := &OrganizationService{
		organizationDAO: organizationDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("organization.updated", service.handleOrganizationUpdated)
	eventBus.Subscribe("organization.deleted", service.handleOrganizationDeleted)

	return service
}

func (s *OrganizationService) handleOrganizationUpdated(ctx context.Context, event util.Event) error {
	org := event.Payload.(model.Organization)

	if err := s.notificationSvc.NotifyOrganizationChange(ctx, "updated", org); err != nil {
		logger.Warn("Failed to send organization change notification",
			zap.Error(err),
			zap.String("organizationID", org.ID))
	}

	if err := s.cacheService.SetOrganization(ctx, org); err != nil {
		logger.Warn("Failed to refresh organization cache",
			zap.Error(err),
			zap.String("organizationID", org.ID))
	}
	return nil
}

func (s *OrganizationService) handleOrganizationDeleted(ctx context.Context, event util.Event) error {
	organizationID := event.Payload.(string)

	if err := s.cacheService.DeleteOrganization(ctx, organizationID); err != nil {
		logger.Warn("Failed to evict deleted organization from cache",
			zap.Error(err),
			zap.String("organizationID", organizationID))
	}
	return nil
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, org model.Organization, creatorID string) (*model.Organization, error) {
	if err := s.validationUtil.ValidateOrganization(org); err != nil {
		return nil, taskhive_errors.ErrInvalidOrganizationData
	}

	organizationID, err := s.organizationDAO.CreateOrganization(ctx, org)
	if err != nil {
		return nil, err
	}

	return s.organizationDAO.GetOrganization(ctx, organizationID)
}

func (s *OrganizationService) UpdateOrganization(ctx context.Context, org model.Organization, updaterID string) (*model.Organization, error) {
	if org.ID == "" {
		return nil, taskhive_errors.ErrInvalidOrganizationData
	}

	updated, err := s.organizationDAO.UpdateOrganization(ctx, org)
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(ctx, "organization.updated", *updated)
	return updated, nil
}

func (s *OrganizationService) DeleteOrganization(ctx context.Context, organizationID string, deleterID string) error {
	if err := s.organizationDAO.DeleteOrganization(ctx, organizationID); err != nil {
		return err
	}

	s.eventBus.Publish(ctx, "organization.deleted", organizationID)
	return nil
}

func (s *OrganizationService) GetOrganization(ctx context.Context, organizationID string) (*model.Organization, error) {
	if cached, err := s.cacheService.GetOrganization(ctx, organizationID); err == nil && cached != nil {
		return cached, nil
	}

	org, err := s.organizationDAO.GetOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetOrganization(ctx, *org); err != nil {
		logger.Warn("Failed to cache organization", zap.Error(err), zap.String("organizationID", organizationID))
	}
	return org, nil
}

func (s *OrganizationService) ListOrganizations(ctx context.Context, limit, offset int) ([]*model.Organization, error) {
	return s.organizationDAO.ListOrganizations(ctx, limit, offset)
}
