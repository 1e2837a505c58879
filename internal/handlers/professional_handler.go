package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type ProfessionalHandler struct {
	*BaseHandler
	professionalService services.ProfessionalService
}

func NewProfessionalHandler(base *BaseHandler, professionalService services.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{BaseHandler: base, professionalService: professionalService}
}

func (h *ProfessionalHandler) GetMyProfile(c *gin.Context) {
	resp, err := h.professionalService.GetMyProfile(middleware.CurrentUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProfessionalHandler) UpdateMyProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.professionalService.UpdateMyProfile(middleware.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	page, limit := h.PageLimit(c)
	minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)

	filter := repositories.ProfileFilter{
		ProfessionID: c.Query("professionId"),
		City:         c.Query("city"),
		Search:       c.Query("search"),
		MinRating:    minRating,
		Page:         page,
		Limit:        limit,
	}
	profiles, pagination, err := h.professionalService.List(filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, profiles, pagination)
}

func (h *ProfessionalHandler) GetProfile(c *gin.Context) {
	resp, err := h.professionalService.GetProfileByUserID(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ProfessionalHandler) AddProfession(c *gin.Context) {
	var req dto.AddProfessionRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.professionalService.AddProfession(middleware.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *ProfessionalHandler) RemoveProfession(c *gin.Context) {
	if err := h.professionalService.RemoveProfession(middleware.CurrentUserID(c), c.Param("linkId")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Profession removed", nil)
}

func (h *ProfessionalHandler) VerifyLink(c *gin.Context) {
	resp, err := h.professionalService.VerifyLink(c.Param("linkId"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Profession link verified", resp)
}
