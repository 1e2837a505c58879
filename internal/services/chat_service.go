package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"servimarket_backend/internal/chatbot"
	"servimarket_backend/internal/logger"
	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type ChatService interface {
	StartConversation(ctx context.Context, userID string, req *dto.StartConversationRequest) (*dto.ConversationResponse, *dto.SendMessageResponse, error)
	ListMyConversations(userID string, page, limit int) ([]dto.ConversationResponse, dto.Pagination, error)
	GetMessages(userID string, role models.UserRole, conversationID string, page, limit int) ([]dto.MessageResponse, dto.Pagination, error)
	SendMessage(ctx context.Context, userID, conversationID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	Escalate(userID, conversationID string) (*dto.TicketResponse, error)
	Close(userID, conversationID string) (*dto.ConversationResponse, error)

	ListAllConversations(page, limit int) ([]dto.ConversationResponse, dto.Pagination, error)
	GetConversation(conversationID string) (*dto.ConversationResponse, error)
	UpdateConversationStatus(conversationID string, req *dto.UpdateConversationStatusRequest) (*dto.ConversationResponse, error)
	ListTickets(status string, page, limit int) ([]dto.TicketResponse, dto.Pagination, error)
	GetTicket(ticketID string) (*dto.TicketResponse, error)
	Respond(adminID, ticketID string, req *dto.AdminRespondRequest) (*dto.MessageResponse, error)
	UpdateTicketStatus(ticketID string, req *dto.UpdateTicketStatusRequest) (*dto.TicketResponse, error)
	Playground(ctx context.Context, req *dto.PlaygroundRequest) (*dto.PlaygroundResponse, error)
}

type chatService struct {
	chatRepo  repositories.ChatRepository
	responder chatbot.Responder
}

func NewChatService(chatRepo repositories.ChatRepository, responder chatbot.Responder) ChatService {
	return &chatService{
		chatRepo:  chatRepo,
		responder: responder,
	}
}

// escalationKeyword hands the conversation off to a human when it appears in
// a user message.
const escalationKeyword = "agente"

func (s *chatService) StartConversation(ctx context.Context, userID string, req *dto.StartConversationRequest) (*dto.ConversationResponse, *dto.SendMessageResponse, error) {
	conversation := &models.Conversation{
		UserID:  userID,
		Subject: req.Subject,
		Status:  models.ConversationStatusOpen,
	}
	if err := s.chatRepo.CreateConversation(conversation); err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	ticket := &models.SupportTicket{
		ConversationID: conversation.ID,
		UserID:         userID,
		Status:         models.TicketStatusAIHandling,
	}
	if err := s.chatRepo.CreateTicket(ticket); err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	exchange, err := s.storeAndAnswer(ctx, conversation, ticket, userID, req.Message)
	if err != nil {
		return nil, nil, err
	}

	full, err := s.chatRepo.GetConversation(conversation.ID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	convResp := dto.NewConversationResponse(full)
	return &convResp, exchange, nil
}

func (s *chatService) ListMyConversations(userID string, page, limit int) ([]dto.ConversationResponse, dto.Pagination, error) {
	page, limit = dto.NormalizePageLimit(page, limit)
	conversations, total, err := s.chatRepo.ListConversationsForUser(userID, page, limit)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewConversationListResponse(conversations), dto.NewPagination(page, limit, total), nil
}

func (s *chatService) GetMessages(userID string, role models.UserRole, conversationID string, page, limit int) ([]dto.MessageResponse, dto.Pagination, error) {
	conversation, err := s.getConversation(conversationID)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	if role != models.UserRoleAdmin && conversation.UserID != userID {
		return nil, dto.Pagination{}, apperrors.NewForbiddenError("Not your conversation")
	}

	page, limit = dto.NormalizePageLimit(page, limit)
	messages, total, err := s.chatRepo.ListMessages(conversationID, page, limit)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewMessageListResponse(messages), dto.NewPagination(page, limit, total), nil
}

func (s *chatService) SendMessage(ctx context.Context, userID, conversationID string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	conversation, err := s.getConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if conversation.UserID != userID {
		return nil, apperrors.NewForbiddenError("Not your conversation")
	}
	if conversation.Status != models.ConversationStatusOpen {
		return nil, apperrors.NewConflictError("Conversation is closed")
	}

	ticket, err := s.chatRepo.GetTicketByConversation(conversationID)
	if err != nil && !errors.Is(err, repositories.ErrTicketNotFound) {
		return nil, apperrors.InternalError(err)
	}

	return s.storeAndAnswer(ctx, conversation, ticket, userID, req.Message)
}

// storeAndAnswer persists the user message and, while the ticket is still in
// automated handling, asks the responder for a reply. The escalation keyword
// skips the bot and queues the ticket for a human.
func (s *chatService) storeAndAnswer(ctx context.Context, conversation *models.Conversation, ticket *models.SupportTicket, userID, content string) (*dto.SendMessageResponse, error) {
	userMessage := &models.Message{
		ConversationID: conversation.ID,
		Sender:         models.MessageSenderUser,
		SenderID:       &userID,
		Content:        content,
	}
	if err := s.chatRepo.CreateMessage(userMessage); err != nil {
		return nil, apperrors.InternalError(err)
	}
	s.touchConversation(conversation)

	out := &dto.SendMessageResponse{UserMessage: dto.NewMessageResponse(userMessage)}

	if ticket == nil || ticket.Status != models.TicketStatusAIHandling {
		return out, nil
	}

	if strings.Contains(strings.ToLower(content), escalationKeyword) {
		ticket.Status = models.TicketStatusPendingAssignment
		if err := s.chatRepo.UpdateTicket(ticket); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return out, nil
	}

	reply, err := s.responder.Reply(ctx, s.recentHistory(conversation.ID), content)
	if err != nil {
		// A failed provider call should not lose the user's message. Queue
		// the ticket for a human instead.
		logger.WithError(err).Error("chatbot reply failed", "conversation_id", conversation.ID)
		ticket.Status = models.TicketStatusPendingAssignment
		if uErr := s.chatRepo.UpdateTicket(ticket); uErr != nil {
			return nil, apperrors.InternalError(uErr)
		}
		return out, nil
	}

	botMessage := &models.Message{
		ConversationID: conversation.ID,
		Sender:         models.MessageSenderBot,
		Content:        reply,
	}
	if err := s.chatRepo.CreateMessage(botMessage); err != nil {
		return nil, apperrors.InternalError(err)
	}
	s.touchConversation(conversation)

	botResp := dto.NewMessageResponse(botMessage)
	out.BotReply = &botResp
	return out, nil
}

func (s *chatService) Escalate(userID, conversationID string) (*dto.TicketResponse, error) {
	conversation, err := s.getConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if conversation.UserID != userID {
		return nil, apperrors.NewForbiddenError("Not your conversation")
	}

	ticket, err := s.getTicketByConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if ticket.Status != models.TicketStatusAIHandling {
		return nil, apperrors.NewConflictError("Ticket is already escalated or closed")
	}

	ticket.Status = models.TicketStatusPendingAssignment
	if err := s.chatRepo.UpdateTicket(ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewTicketResponse(ticket)
	return &resp, nil
}

func (s *chatService) Close(userID, conversationID string) (*dto.ConversationResponse, error) {
	conversation, err := s.getConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if conversation.UserID != userID {
		return nil, apperrors.NewForbiddenError("Not your conversation")
	}
	if conversation.Status == models.ConversationStatusClosed {
		return nil, apperrors.NewConflictError("Conversation is already closed")
	}

	conversation.Status = models.ConversationStatusClosed
	if err := s.chatRepo.UpdateConversation(conversation); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if ticket, err := s.chatRepo.GetTicketByConversation(conversationID); err == nil {
		now := time.Now()
		ticket.Status = models.TicketStatusClosedByClient
		ticket.ClosedAt = &now
		if err := s.chatRepo.UpdateTicket(ticket); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	full, err := s.chatRepo.GetConversation(conversationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewConversationResponse(full)
	return &resp, nil
}

func (s *chatService) ListAllConversations(page, limit int) ([]dto.ConversationResponse, dto.Pagination, error) {
	page, limit = dto.NormalizePageLimit(page, limit)
	conversations, total, err := s.chatRepo.ListAllConversations(page, limit)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewConversationListResponse(conversations), dto.NewPagination(page, limit, total), nil
}

func (s *chatService) ListTickets(status string, page, limit int) ([]dto.TicketResponse, dto.Pagination, error) {
	page, limit = dto.NormalizePageLimit(page, limit)
	tickets, total, err := s.chatRepo.ListTickets(repositories.TicketFilter{
		Status: models.TicketStatus(status),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewTicketListResponse(tickets), dto.NewPagination(page, limit, total), nil
}

func (s *chatService) GetConversation(conversationID string) (*dto.ConversationResponse, error) {
	conversation, err := s.getConversation(conversationID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewConversationResponse(conversation)
	return &resp, nil
}

func (s *chatService) UpdateConversationStatus(conversationID string, req *dto.UpdateConversationStatusRequest) (*dto.ConversationResponse, error) {
	conversation, err := s.getConversation(conversationID)
	if err != nil {
		return nil, err
	}

	conversation.Status = models.ConversationStatus(req.Status)
	if err := s.chatRepo.UpdateConversation(conversation); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewConversationResponse(conversation)
	return &resp, nil
}

func (s *chatService) GetTicket(ticketID string) (*dto.TicketResponse, error) {
	ticket, err := s.getTicket(ticketID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewTicketResponse(ticket)
	return &resp, nil
}

// Respond stores an admin message, claims the ticket for the admin, and puts
// it into the human chat state.
func (s *chatService) Respond(adminID, ticketID string, req *dto.AdminRespondRequest) (*dto.MessageResponse, error) {
	ticket, err := s.getTicket(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == models.TicketStatusClosedResolved || ticket.Status == models.TicketStatusClosedByClient {
		return nil, apperrors.NewConflictError("Ticket is closed")
	}

	message := &models.Message{
		ConversationID: ticket.ConversationID,
		Sender:         models.MessageSenderAdmin,
		SenderID:       &adminID,
		Content:        req.Message,
	}
	if err := s.chatRepo.CreateMessage(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	ticket.Status = models.TicketStatusActiveHumanChat
	ticket.AssignedAdminID = &adminID
	if err := s.chatRepo.UpdateTicket(ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if conversation, err := s.chatRepo.GetConversation(ticket.ConversationID); err == nil {
		s.touchConversation(conversation)
	}

	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

// UpdateTicketStatus accepts any status from the known set; there is no
// adjacency restriction between ticket states.
func (s *chatService) UpdateTicketStatus(ticketID string, req *dto.UpdateTicketStatusRequest) (*dto.TicketResponse, error) {
	ticket, err := s.getTicket(ticketID)
	if err != nil {
		return nil, err
	}

	target := models.TicketStatus(req.Status)
	ticket.Status = target
	if target == models.TicketStatusClosedResolved || target == models.TicketStatusClosedByClient {
		now := time.Now()
		ticket.ClosedAt = &now
		if conversation, cErr := s.chatRepo.GetConversation(ticket.ConversationID); cErr == nil {
			conversation.Status = models.ConversationStatusClosed
			if uErr := s.chatRepo.UpdateConversation(conversation); uErr != nil {
				logger.WithError(uErr).Warn("conversation not closed with ticket", "conversation_id", conversation.ID)
			}
		}
	} else {
		ticket.ClosedAt = nil
	}
	if err := s.chatRepo.UpdateTicket(ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewTicketResponse(ticket)
	return &resp, nil
}

// Playground lets admins try the responder without touching any
// conversation.
func (s *chatService) Playground(ctx context.Context, req *dto.PlaygroundRequest) (*dto.PlaygroundResponse, error) {
	reply, err := s.responder.Reply(ctx, nil, req.Message)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PlaygroundResponse{Reply: reply}, nil
}

func (s *chatService) recentHistory(conversationID string) []string {
	messages, _, err := s.chatRepo.ListMessages(conversationID, 1, 20)
	if err != nil {
		return nil
	}
	history := make([]string, 0, len(messages))
	for _, m := range messages {
		history = append(history, string(m.Sender)+": "+m.Content)
	}
	return history
}

func (s *chatService) touchConversation(conversation *models.Conversation) {
	now := time.Now()
	conversation.LastMessageAt = &now
	if err := s.chatRepo.UpdateConversation(conversation); err != nil {
		logger.WithError(err).Warn("conversation timestamp not updated", "conversation_id", conversation.ID)
	}
}

func (s *chatService) getConversation(id string) (*models.Conversation, error) {
	conversation, err := s.chatRepo.GetConversation(id)
	if err != nil {
		if errors.Is(err, repositories.ErrConversationNotFound) {
			return nil, apperrors.NewNotFoundError("Conversation not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return conversation, nil
}

func (s *chatService) getTicket(id string) (*models.SupportTicket, error) {
	ticket, err := s.chatRepo.GetTicket(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTicketNotFound) {
			return nil, apperrors.NewNotFoundError("Support ticket not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return ticket, nil
}

func (s *chatService) getTicketByConversation(conversationID string) (*models.SupportTicket, error) {
	ticket, err := s.chatRepo.GetTicketByConversation(conversationID)
	if err != nil {
		if errors.Is(err, repositories.ErrTicketNotFound) {
			return nil, apperrors.NewNotFoundError("Support ticket not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return ticket, nil
}
