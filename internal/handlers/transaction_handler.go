package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type TransactionHandler struct {
	*BaseHandler
	transactionService services.TransactionService
}

func NewTransactionHandler(base *BaseHandler, transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{BaseHandler: base, transactionService: transactionService}
}

func (h *TransactionHandler) Get(c *gin.Context) {
	resp, err := h.transactionService.Get(
		middleware.CurrentUserID(c), middleware.CurrentRole(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *TransactionHandler) ListMine(c *gin.Context) {
	page, limit := h.PageLimit(c)
	txs, pagination, err := h.transactionService.ListMine(
		middleware.CurrentUserID(c), middleware.CurrentRole(c), c.Query("status"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, txs, pagination)
}

func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateTransactionStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.transactionService.UpdateStatus(middleware.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *TransactionHandler) ApplyPromo(c *gin.Context) {
	var req dto.ApplyPromoRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.transactionService.ApplyPromo(middleware.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Promo code applied", resp)
}
