// api/middleware/identity_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taskhive/taskhive/api/authz"
	logger "github.com/taskhive/taskhive/api/logging"
	"github.com/taskhive/taskhive/api/middleware"
	"github.com/taskhive/taskhive/api/model"
)

const (
	testSecret      = "test-secret"
	testPlatformOrg = "org-platform"
)

func signToken(t *testing.T, claims middleware.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func TestIdentity(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()
	gin.SetMode(gin.TestMode)

	var captured *model.Identity
	router := gin.New()
	router.Use(middleware.Identity(testSecret, testPlatformOrg))
	router.GET("/whoami", func(c *gin.Context) {
		captured = nil
		if identity, ok := authz.CallerFrom(c); ok {
			captured = &identity
		}
		c.Status(http.StatusOK)
	})

	serve := func(authorization string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("MissingTokenPassesThroughAnonymously", func(t *testing.T) {
		w := serve("")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, captured)
	})

	t.Run("ValidTokenAttachesIdentity", func(t *testing.T) {
		token := signToken(t, middleware.Claims{
			Role:           "Admin",
			OrganizationID: "org-1",
			DepartmentID:   "dept-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		w := serve("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, captured)
		assert.Equal(t, "alice", captured.ID)
		assert.Equal(t, "Admin", captured.Role)
		assert.False(t, captured.IsPlatformMember)
	})

	t.Run("PlatformMembershipDerivedFromClaim", func(t *testing.T) {
		token := signToken(t, middleware.Claims{
			Role:           "SuperAdmin",
			OrganizationID: testPlatformOrg,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "root",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		w := serve("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, captured)
		assert.True(t, captured.IsPlatformMember)
	})

	t.Run("ExpiredTokenRejected", func(t *testing.T) {
		token := signToken(t, middleware.Claims{
			Role:           "User",
			OrganizationID: "org-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "alice",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		w := serve("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GarbageTokenRejected", func(t *testing.T) {
		w := serve("Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("WrongSecretRejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
			Role:           "Admin",
			OrganizationID: "org-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "mallory",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("other-secret"))
		assert.NoError(t, err)

		w := serve("Bearer " + signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
