package middleware

import (
	"net/http"

	"go-hrportal/internal/rbac"
	"go-hrportal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ContextKey string

const (
	ContextEmployeeID ContextKey = "employee_id"
	ContextCompanyID  ContextKey = "company_id"
	ContextHasReadAll ContextKey = "has_read_all"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(rbac.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(req rbac.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := enforceRequest(c, resource, action)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(req)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RBACReadScope sets has_read_all when the caller may list every employee's
// rows for resource. It never rejects; handlers narrow the query instead.
func RBACReadScope(service RBACService, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := enforceRequest(c, resource, rbac.ActionReadAll)
		if !ok {
			c.Set(string(ContextHasReadAll), false)
			c.Next()
			return
		}

		allowed, err := service.Enforce(req)
		c.Set(string(ContextHasReadAll), err == nil && allowed)
		c.Next()
	}
}

func enforceRequest(c *gin.Context, resource, action string) (rbac.EnforceRequest, bool) {
	employeeID := c.GetString(string(ContextEmployeeID))
	companyID := c.GetString(string(ContextCompanyID))
	if employeeID == "" || companyID == "" {
		return rbac.EnforceRequest{}, false
	}

	return rbac.EnforceRequest{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Resource:   resource,
		Action:     action,
	}, true
}
