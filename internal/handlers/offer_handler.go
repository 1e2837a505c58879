package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type OfferHandler struct {
	*BaseHandler
	offerService services.OfferService
}

func NewOfferHandler(base *BaseHandler, offerService services.OfferService) *OfferHandler {
	return &OfferHandler{BaseHandler: base, offerService: offerService}
}

func (h *OfferHandler) Create(c *gin.Context) {
	var req dto.CreateOfferRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.offerService.Create(middleware.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *OfferHandler) Update(c *gin.Context) {
	var req dto.UpdateOfferRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.offerService.Update(middleware.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *OfferHandler) Withdraw(c *gin.Context) {
	if err := h.offerService.Withdraw(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Offer withdrawn", nil)
}

func (h *OfferHandler) Get(c *gin.Context) {
	resp, err := h.offerService.Get(middleware.CurrentUserID(c), middleware.CurrentRole(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *OfferHandler) ListForPosting(c *gin.Context) {
	page, limit := h.PageLimit(c)
	offers, pagination, err := h.offerService.ListForPosting(
		middleware.CurrentUserID(c), c.Param("id"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, offers, pagination)
}

func (h *OfferHandler) ListMine(c *gin.Context) {
	page, limit := h.PageLimit(c)
	offers, pagination, err := h.offerService.ListMine(
		middleware.CurrentUserID(c), c.Query("status"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, offers, pagination)
}

func (h *OfferHandler) Accept(c *gin.Context) {
	resp, err := h.offerService.Accept(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Offer accepted", resp)
}

func (h *OfferHandler) Reject(c *gin.Context) {
	resp, err := h.offerService.Reject(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Offer rejected", resp)
}
