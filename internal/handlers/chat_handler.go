package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/services"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type ChatHandler struct {
	*BaseHandler
	chatService services.ChatService
}

func NewChatHandler(base *BaseHandler, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{BaseHandler: base, chatService: chatService}
}

func (h *ChatHandler) StartConversation(c *gin.Context) {
	var req dto.StartConversationRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	conversation, exchange, err := h.chatService.StartConversation(
		c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{
		"conversation": conversation,
		"exchange":     exchange,
	})
}

func (h *ChatHandler) ListMyConversations(c *gin.Context) {
	page, limit := h.PageLimit(c)
	conversations, pagination, err := h.chatService.ListMyConversations(
		middleware.CurrentUserID(c), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, conversations, pagination)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	page, limit := h.PageLimit(c)
	messages, pagination, err := h.chatService.GetMessages(
		middleware.CurrentUserID(c), middleware.CurrentRole(c), c.Param("id"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, messages, pagination)
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.chatService.SendMessage(
		c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *ChatHandler) Escalate(c *gin.Context) {
	resp, err := h.chatService.Escalate(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Conversation escalated to a human agent", resp)
}

func (h *ChatHandler) Close(c *gin.Context) {
	resp, err := h.chatService.Close(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Conversation closed", resp)
}

func (h *ChatHandler) ListAllConversations(c *gin.Context) {
	page, limit := h.PageLimit(c)
	conversations, pagination, err := h.chatService.ListAllConversations(page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, conversations, pagination)
}

func (h *ChatHandler) ListTickets(c *gin.Context) {
	page, limit := h.PageLimit(c)
	tickets, pagination, err := h.chatService.ListTickets(c.Query("status"), page, limit)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Paginated(c, tickets, pagination)
}

func (h *ChatHandler) GetConversation(c *gin.Context) {
	resp, err := h.chatService.GetConversation(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ChatHandler) UpdateConversationStatus(c *gin.Context) {
	var req dto.UpdateConversationStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.chatService.UpdateConversationStatus(c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ChatHandler) GetTicket(c *gin.Context) {
	resp, err := h.chatService.GetTicket(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ChatHandler) Respond(c *gin.Context) {
	var req dto.AdminRespondRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.chatService.Respond(middleware.CurrentUserID(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *ChatHandler) UpdateTicketStatus(c *gin.Context) {
	var req dto.UpdateTicketStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.chatService.UpdateTicketStatus(c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ChatHandler) Playground(c *gin.Context) {
	var req dto.PlaygroundRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.chatService.Playground(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
