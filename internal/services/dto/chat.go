package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type StartConversationRequest struct {
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

type AdminRespondRequest struct {
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,is-ticket-status"`
}

type UpdateConversationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN CLOSED"`
}

type PlaygroundRequest struct {
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Sender         string    `json:"sender"`
	SenderID       *string   `json:"senderId,omitempty"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewMessageResponse(message *models.Message) MessageResponse {
	return MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		Sender:         string(message.Sender),
		SenderID:       message.SenderID,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt,
	}
}

func NewMessageListResponse(messages []models.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, NewMessageResponse(&messages[i]))
	}
	return out
}

type ConversationResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Subject       string          `json:"subject,omitempty"`
	Status        string          `json:"status"`
	LastMessageAt *time.Time      `json:"lastMessageAt,omitempty"`
	Ticket        *TicketResponse `json:"ticket,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func NewConversationResponse(conversation *models.Conversation) ConversationResponse {
	resp := ConversationResponse{
		ID:            conversation.ID,
		UserID:        conversation.UserID,
		Subject:       conversation.Subject,
		Status:        string(conversation.Status),
		LastMessageAt: conversation.LastMessageAt,
		CreatedAt:     conversation.CreatedAt,
	}
	if conversation.Ticket != nil {
		t := NewTicketResponse(conversation.Ticket)
		resp.Ticket = &t
	}
	return resp
}

func NewConversationListResponse(conversations []models.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(conversations))
	for i := range conversations {
		out = append(out, NewConversationResponse(&conversations[i]))
	}
	return out
}

type TicketResponse struct {
	ID              string     `json:"id"`
	ConversationID  string     `json:"conversationId"`
	UserID          string     `json:"userId"`
	Status          string     `json:"status"`
	AssignedAdminID *string    `json:"assignedAdminId,omitempty"`
	ClosedAt        *time.Time `json:"closedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func NewTicketResponse(ticket *models.SupportTicket) TicketResponse {
	return TicketResponse{
		ID:              ticket.ID,
		ConversationID:  ticket.ConversationID,
		UserID:          ticket.UserID,
		Status:          string(ticket.Status),
		AssignedAdminID: ticket.AssignedAdminID,
		ClosedAt:        ticket.ClosedAt,
		CreatedAt:       ticket.CreatedAt,
	}
}

func NewTicketListResponse(tickets []models.SupportTicket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, NewTicketResponse(&tickets[i]))
	}
	return out
}

// SendMessageResponse pairs the stored user message with the bot reply, when
// the bot is still handling the conversation.
type SendMessageResponse struct {
	UserMessage MessageResponse  `json:"userMessage"`
	BotReply    *MessageResponse `json:"botReply,omitempty"`
}

type PlaygroundResponse struct {
	Reply string `json:"reply"`
}
