// api/controller/organization_controller.go
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

type OrganizationController struct {
	orgService service.IOrganizationService
}

func NewOrganizationController(orgService service.IOrganizationService) *OrganizationController {
	return &OrganizationController{
		orgService: orgService,
	}
}

// RegisterRoutes registers the API routes
func (oc *OrganizationController) RegisterRoutes(r *gin.RouterGroup, guard *authz.Guard) {
	orgs := r.Group("/organizations")
	{
		orgs.POST("", guard.RequirePlatformMember(), guard.Authorize(authz.ResourceOrganization, authz.OpCreate), oc.CreateOrganization)
		orgs.PUT("/:id", guard.Authorize(authz.ResourceOrganization, authz.OpUpdate), oc.UpdateOrganization)
		orgs.DELETE("/:id", guard.RequirePlatformMember(), guard.Authorize(authz.ResourceOrganization, authz.OpDelete), oc.DeleteOrganization)
		orgs.GET("/:id", guard.Authorize(authz.ResourceOrganization, authz.OpRead), oc.GetOrganization)
		orgs.GET("", guard.Authorize(authz.ResourceOrganization, authz.OpList), oc.ListOrganizations)
	}
}

// CreateOrganization endpoint
func (oc *OrganizationController) CreateOrganization(c *gin.Context) {
	var org model.Organization
	if err := c.ShouldBindJSON(&org); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid organization data", taskhive_errors.ErrInvalidOrganizationData)
		return
	}
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}

	createdOrg, err := oc.orgService.CreateOrganization(c, org, caller.ID)
	if err != nil {
		switch err {
		case taskhive_errors.ErrInvalidOrganizationData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid organization data", err)
		case taskhive_errors.ErrOrganizationConflict:
			util.RespondWithError(c, http.StatusConflict, "Organization already exists", err)
		case taskhive_errors.ErrDatabaseOperation:
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create organization", taskhive_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdOrg)
}

// UpdateOrganization endpoint
func (oc *OrganizationController) UpdateOrganization(c *gin.Context) {
	organizationID := c.Param("id")
	var org model.Organization
	if err := c.ShouldBindJSON(&org); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid organization data", err)
		return
	}
	org.ID = organizationID
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}

	updatedOrg, err := oc.orgService.UpdateOrganization(c, org, caller.ID)
	if err != nil {
		if err == taskhive_errors.ErrOrganizationNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Organization not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update organization", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedOrg)
}

// DeleteOrganization endpoint
func (oc *OrganizationController) DeleteOrganization(c *gin.Context) {
	organizationID := c.Param("id")
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}

	if err := oc.orgService.DeleteOrganization(c, organizationID, caller.ID); err != nil {
		if err == taskhive_errors.ErrOrganizationNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Organization not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete organization", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOrganization endpoint
func (oc *OrganizationController) GetOrganization(c *gin.Context) {
	organizationID := c.Param("id")

	org, err := oc.orgService.GetOrganization(c, organizationID)
	if err != nil {
		if err == taskhive_errors.ErrOrganizationNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Organization not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve organization", err)
		}
		return
	}

	c.JSON(http.StatusOK, org)
}

// ListOrganizations endpoint
func (oc *OrganizationController) ListOrganizations(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	orgs, err := oc.orgService.ListOrganizations(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list organizations", err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}
