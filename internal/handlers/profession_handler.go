package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type ProfessionHandler struct {
	*BaseHandler
	professionService services.ProfessionService
}

func NewProfessionHandler(base *BaseHandler, professionService services.ProfessionService) *ProfessionHandler {
	return &ProfessionHandler{BaseHandler: base, professionService: professionService}
}

func (h *ProfessionHandler) List(c *gin.Context) {
	page, limit := h.PageLimit(c)
	resp, pagination, err := h.professionService.List(repositories.ProfessionFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, resp, pagination)
}

func (h *ProfessionHandler) Get(c *gin.Context) {
	resp, err := h.professionService.Get(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProfessionHandler) Create(c *gin.Context) {
	var req dto.CreateProfessionRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.professionService.Create(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *ProfessionHandler) Update(c *gin.Context) {
	var req dto.UpdateProfessionRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.professionService.Update(c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProfessionHandler) Delete(c *gin.Context) {
	if err := h.professionService.Delete(c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Profession deleted", nil)
}
