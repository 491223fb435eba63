package payroll

import (
	"go-hrportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
) {
	payslips := r.Group("/payslips")
	payslips.Use(auth)
	{
		readScope := middleware.RBACReadScope(rbacService, "payroll")

		payslips.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), readScope, handler.GetAll)
		payslips.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), readScope, handler.GetByID)
		payslips.GET("/:id/download", middleware.RBACAuthorize(rbacService, "payroll", "read"), readScope, handler.DownloadPayslip)
		payslips.POST("/:id/preview", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.Preview)
		payslips.PUT("/:id/overrides", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.UpdateOverrides)
	}
}
