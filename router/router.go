// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/api/authz"
	"github.com/taskhive/taskhive/api/controller"
	"github.com/taskhive/taskhive/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	guard *authz.Guard,
	jwtSecret string,
	platformOrgID string,
	rateLimitRequests int,
	rateLimitWindow time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitWindow))
	router.Use(middleware.Identity(jwtSecret, platformOrgID))

	api := router.Group("/api/v1")

	controllers.Task.RegisterRoutes(api, guard)
	controllers.Org.RegisterRoutes(api, guard)
	controllers.Notification.RegisterRoutes(api, guard)
	controllers.Audit.RegisterRoutes(api, guard)

	return router
}
