// api/controller/audit_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/api/audit"
	"github.com/taskhive/taskhive/api/authz"
	"github.com/taskhive/taskhive/api/util"
)

// AuditController exposes the decision trail to platform operators.
type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup, guard *authz.Guard) {
	decisions := r.Group("/audit/decisions")
	{
		decisions.GET("", guard.RequirePlatformMember(), ac.QueryDecisions)
	}
}

// QueryDecisions endpoint
func (ac *AuditController) QueryDecisions(c *gin.Context) {
	to := time.Now().UTC()
	from := to.Add(-24 * time.Hour)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp", err)
			return
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp", err)
			return
		}
		to = parsed
	}

	logs, err := ac.auditService.QueryDecisions(c, from, to, c.Query("userId"), c.Query("resource"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query decisions", err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
