package app

import (
	"context"
	"net/http"
	"time"

	"go-hrportal/internal/attendance"
	"go-hrportal/internal/company"
	"go-hrportal/internal/config"
	"go-hrportal/internal/middleware"
	"go-hrportal/internal/payroll"
	"go-hrportal/internal/rbac"
	"go-hrportal/internal/shared/apperror"
	"go-hrportal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and registers every route on router.
// The caller owns the returned Infra and must Close it.
func BuildApp(cfg config.Config, router *gin.Engine) (*Infra, error) {
	in, err := ConnectInfra(cfg, true)
	if err != nil {
		return nil, err
	}

	svcs, err := buildServices(cfg, in)
	if err != nil {
		in.Close()
		return nil, err
	}

	registerModules(router, cfg, in, svcs)
	return in, nil
}

func registerModules(router *gin.Engine, cfg config.Config, in *Infra, svcs *services) {
	router.Use(middleware.ContextLogger(zap.L()))
	router.GET("/healthz", healthHandler(in))

	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	// --- Handlers ---
	rbacHandler := rbac.NewHandler(svcs.rbac)
	companyHandler := company.NewHandler(svcs.company)
	attendanceHandler := attendance.NewHandler(svcs.attendance)
	payrollHandler := payroll.NewHandler(svcs.payroll)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(20, 40))
	{
		rbac.RegisterRoutes(api, rbacHandler, auth)
		company.RegisterRoutes(api, companyHandler, auth, svcs.rbac)
		attendance.RegisterRoutes(api, attendanceHandler, auth, svcs.rbac, in.Redis)
		payroll.RegisterRoutes(api, payrollHandler, auth, svcs.rbac)
	}
}

func healthHandler(in *Infra) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "up"}
		healthy := true

		if err := in.SQLDB.PingContext(ctx); err != nil {
			status["database"] = "down"
			healthy = false
		}
		if in.Redis != nil {
			status["redis"] = "up"
			if err := in.Redis.Ping(ctx).Err(); err != nil {
				status["redis"] = "down"
				healthy = false
			}
		}

		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "dependency unavailable", status)
			return
		}
		response.Success(c, http.StatusOK, status, nil)
	}
}
