package company

import (
	"go-hrportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	company := r.Group("/company")
	company.Use(auth)
	{
		// Dibaca setiap kali layar absensi dibuka
		company.GET("/office-location",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "company", "read"),
			handler.GetOfficeLocation,
		)

		// Jarang diubah, hanya admin
		company.PUT("/office-location",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "company", "update"),
			handler.UpdateOfficeLocation,
		)
	}
}
