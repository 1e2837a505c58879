package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type ReportHandler struct {
	*BaseHandler
	reportService services.ReportService
}

func NewReportHandler(base *BaseHandler, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{BaseHandler: base, reportService: reportService}
}

func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.CreateReportRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.reportService.Create(middleware.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *ReportHandler) Get(c *gin.Context) {
	resp, err := h.reportService.Get(
		middleware.CurrentUserID(c), middleware.CurrentRole(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ReportHandler) ListMine(c *gin.Context) {
	page, limit := h.PageLimit(c)
	reports, pagination, err := h.reportService.ListMine(middleware.CurrentUserID(c), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, reports, pagination)
}

func (h *ReportHandler) ListAll(c *gin.Context) {
	page, limit := h.PageLimit(c)
	reports, pagination, err := h.reportService.ListAll(c.Query("status"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, reports, pagination)
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateReportStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.reportService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
