package payroll

import (
	"net/http"
	"strconv"
	"strings"

	"go-hrportal/internal/shared/apperror"
	"go-hrportal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func getActorID(c *gin.Context) string {
	actorID := c.GetString("employee_id")
	if actorID == "" {
		actorID = c.GetString("user_id_validated")
	}
	return actorID
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")

	var filterReq GetPayslipsFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.GetAll(ctx, companyID, getActorID(c), c.GetBool("has_read_all"), filterReq)
	if err != nil {
		response.Fail(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	rows, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, rows, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")

	resp, err := h.service.GetByID(ctx, companyID, getActorID(c), c.GetBool("has_read_all"), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")

	var req OverridesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Preview(ctx, companyID, c.Param("id"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateOverrides(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")

	var req OverridesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateOverrides(ctx, companyID, getActorID(c), c.Param("id"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := c.GetString("company_id")

	file, err := h.service.DownloadPayslip(ctx, companyID, getActorID(c), c.GetBool("has_read_all"), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+strings.ReplaceAll(file.FileName, `"`, "")+`"`)
	c.Data(http.StatusOK, "application/pdf", file.Content)
}
