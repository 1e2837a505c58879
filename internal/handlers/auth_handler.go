package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.Logout(&req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Logged out", nil)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(&req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "If the email exists, a reset code was sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Password updated", nil)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.VerifyEmail(&req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Email verified", nil)
}
