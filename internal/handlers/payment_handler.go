package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, paymentService: paymentService}
}

func (h *PaymentHandler) Get(c *gin.Context) {
	resp, err := h.paymentService.Get(
		middleware.CurrentUserID(c), middleware.CurrentRole(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *PaymentHandler) List(c *gin.Context) {
	page, limit := h.PageLimit(c)
	payments, pagination, err := h.paymentService.List(c.Query("status"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, payments, pagination)
}

func (h *PaymentHandler) ListMine(c *gin.Context) {
	page, limit := h.PageLimit(c)
	payments, pagination, err := h.paymentService.ListMine(
		middleware.CurrentUserID(c), c.Query("status"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, payments, pagination)
}

func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.paymentService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
