package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type PostingHandler struct {
	*BaseHandler
	postingService services.PostingService
}

func NewPostingHandler(base *BaseHandler, postingService services.PostingService) *PostingHandler {
	return &PostingHandler{BaseHandler: base, postingService: postingService}
}

func (h *PostingHandler) Create(c *gin.Context) {
	var req dto.CreatePostingRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.postingService.Create(middleware.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get counts a view unless the viewer owns the posting.
func (h *PostingHandler) Get(c *gin.Context) {
	resp, err := h.postingService.Get(c.Param("id"), false)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	if resp.ClientID != middleware.CurrentUserID(c) {
		if resp, err = h.postingService.Get(c.Param("id"), true); err != nil {
			apperrors.HandleError(c, err)
			return
		}
	}
	h.OK(c, resp)
}

func (h *PostingHandler) List(c *gin.Context) {
	page, limit := h.PageLimit(c)
	budgetMin, _ := strconv.ParseFloat(c.Query("budgetMin"), 64)
	budgetMax, _ := strconv.ParseFloat(c.Query("budgetMax"), 64)

	filter := repositories.PostingFilter{
		ProfessionID: c.Query("professionId"),
		City:         c.Query("city"),
		Status:       models.PostingStatus(c.DefaultQuery("status", string(models.PostingStatusOpen))),
		Search:       c.Query("search"),
		BudgetMin:    budgetMin,
		BudgetMax:    budgetMax,
		Page:         page,
		Limit:        limit,
	}
	postings, pagination, err := h.postingService.List(filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, postings, pagination)
}

func (h *PostingHandler) ListMine(c *gin.Context) {
	page, limit := h.PageLimit(c)
	filter := repositories.PostingFilter{
		ClientID: middleware.CurrentUserID(c),
		Status:   models.PostingStatus(c.Query("status")),
		Page:     page,
		Limit:    limit,
	}
	postings, pagination, err := h.postingService.List(filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, postings, pagination)
}

func (h *PostingHandler) Update(c *gin.Context) {
	var req dto.UpdatePostingRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.postingService.Update(middleware.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *PostingHandler) Delete(c *gin.Context) {
	if err := h.postingService.Delete(middleware.CurrentUserID(c), middleware.CurrentRole(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Posting deleted", nil)
}
