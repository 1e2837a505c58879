package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type WithdrawalHandler struct {
	*BaseHandler
	withdrawalService services.WithdrawalService
}

func NewWithdrawalHandler(base *BaseHandler, withdrawalService services.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{BaseHandler: base, withdrawalService: withdrawalService}
}

func (h *WithdrawalHandler) Create(c *gin.Context) {
	var req dto.CreateWithdrawalRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.withdrawalService.Create(middleware.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *WithdrawalHandler) Get(c *gin.Context) {
	resp, err := h.withdrawalService.Get(
		middleware.CurrentUserID(c), middleware.CurrentRole(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *WithdrawalHandler) ListMine(c *gin.Context) {
	page, limit := h.PageLimit(c)
	withdrawals, pagination, err := h.withdrawalService.ListMine(
		middleware.CurrentUserID(c), c.Query("status"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, withdrawals, pagination)
}

func (h *WithdrawalHandler) ListAll(c *gin.Context) {
	page, limit := h.PageLimit(c)
	withdrawals, pagination, err := h.withdrawalService.ListAll(c.Query("status"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, withdrawals, pagination)
}

func (h *WithdrawalHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateWithdrawalStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.withdrawalService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
