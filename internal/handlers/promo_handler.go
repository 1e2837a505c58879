package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type PromoHandler struct {
	*BaseHandler
	promoService services.PromoService
}

func NewPromoHandler(base *BaseHandler, promoService services.PromoService) *PromoHandler {
	return &PromoHandler{BaseHandler: base, promoService: promoService}
}

func (h *PromoHandler) Create(c *gin.Context) {
	var req dto.CreatePromoCodeRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.promoService.Create(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *PromoHandler) Get(c *gin.Context) {
	resp, err := h.promoService.Get(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *PromoHandler) List(c *gin.Context) {
	page, limit := h.PageLimit(c)
	codes, pagination, err := h.promoService.List(repositories.PromoFilter{
		ActiveOnly: c.Query("active") == "true",
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, codes, pagination)
}

func (h *PromoHandler) Update(c *gin.Context) {
	var req dto.UpdatePromoCodeRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.promoService.Update(c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *PromoHandler) Delete(c *gin.Context) {
	if err := h.promoService.Delete(c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Promo code deleted", nil)
}

func (h *PromoHandler) Validate(c *gin.Context) {
	resp, err := h.promoService.Validate(c.Param("code"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
