package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	resp, err := h.userService.GetMe(middleware.CurrentUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.userService.UpdateMe(middleware.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UserHandler) GetPublicProfile(c *gin.Context) {
	resp, err := h.userService.GetPublicProfile(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UserHandler) List(c *gin.Context) {
	page, limit := h.PageLimit(c)
	users, pagination, err := h.userService.List(
		c.Query("role"), c.Query("status"), c.Query("search"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, users, pagination)
}

func (h *UserHandler) Suspend(c *gin.Context) {
	resp, err := h.userService.Suspend(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "User suspended", resp)
}

func (h *UserHandler) Activate(c *gin.Context) {
	resp, err := h.userService.Activate(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "User activated", resp)
}

func (h *UserHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.userService.SendOTP(middleware.CurrentUserID(c), &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "OTP sent", nil)
}

func (h *UserHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.userService.VerifyOTP(middleware.CurrentUserID(c), &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Phone verified", nil)
}

func (h *UserHandler) VerifyIdentity(c *gin.Context) {
	var req dto.VerifyIdentityRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.userService.VerifyIdentity(middleware.CurrentUserID(c), &req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Identity verified", nil)
}
