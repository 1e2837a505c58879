package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviewService: reviewService}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.reviewService.Create(middleware.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	resp, err := h.reviewService.Get(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ReviewHandler) ListForUser(c *gin.Context) {
	page, limit := h.PageLimit(c)
	reviews, pagination, err := h.reviewService.ListForUser(c.Param("id"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, reviews, pagination)
}

func (h *ReviewHandler) ListForTransaction(c *gin.Context) {
	reviews, err := h.reviewService.ListForTransaction(
		middleware.CurrentUserID(c), middleware.CurrentRole(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, reviews)
}

func (h *ReviewHandler) ListAll(c *gin.Context) {
	page, limit := h.PageLimit(c)
	reviews, pagination, err := h.reviewService.ListAll(page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, reviews, pagination)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewService.Delete(c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Review deleted", nil)
}
