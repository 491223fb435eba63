package attendance

import (
	"go-hrportal/internal/middleware"
	"go-hrportal/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	attendances := r.Group("/attendances")
	attendances.Use(auth)
	{
		attendances.GET("",
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			middleware.RBACReadScope(rbacService, "attendance"),
			h.GetAll,
		)
		attendances.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "attendance", rbac.ActionReadAll),
			h.Export,
		)
		attendances.GET("/:id",
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			middleware.RBACReadScope(rbacService, "attendance"),
			h.GetByID,
		)

		// Tombol absen sering ditekan berkali-kali, jadi dibatasi dan idempotent
		clockIn := []gin.HandlerFunc{
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
		}
		if rdb != nil {
			clockIn = append(clockIn, middleware.Idempotency(rdb))
		}
		attendances.POST("/clock-in", append(clockIn, h.ClockIn)...)

		attendances.POST("/clock-out",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			h.ClockOut,
		)
		attendances.POST("/geofence-check",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "create"),
			h.CheckLocation,
		)
	}
}
