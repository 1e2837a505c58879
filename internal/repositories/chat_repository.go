package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrTicketNotFound       = errors.New("support ticket not found")
)

type TicketFilter struct {
	Status          models.TicketStatus
	AssignedAdminID string
	Page            int
	Limit           int
}

type ChatRepository interface {
	CreateConversation(conversation *models.Conversation) error
	GetConversation(id string) (*models.Conversation, error)
	UpdateConversation(conversation *models.Conversation) error
	ListConversationsForUser(userID string, page, limit int) ([]models.Conversation, int64, error)
	ListAllConversations(page, limit int) ([]models.Conversation, int64, error)

	CreateMessage(message *models.Message) error
	ListMessages(conversationID string, page, limit int) ([]models.Message, int64, error)

	CreateTicket(ticket *models.SupportTicket) error
	GetTicket(id string) (*models.SupportTicket, error)
	GetTicketByConversation(conversationID string) (*models.SupportTicket, error)
	UpdateTicket(ticket *models.SupportTicket) error
	ListTickets(filter TicketFilter) ([]models.SupportTicket, int64, error)
}

type ChatRepositoryImpl struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &ChatRepositoryImpl{db: db}
}

func (r *ChatRepositoryImpl) CreateConversation(conversation *models.Conversation) error {
	return r.db.Create(conversation).Error
}

func (r *ChatRepositoryImpl) GetConversation(id string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.db.Preload("Ticket").First(&conversation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *ChatRepositoryImpl) UpdateConversation(conversation *models.Conversation) error {
	return r.db.Save(conversation).Error
}

func (r *ChatRepositoryImpl) ListConversationsForUser(userID string, page, limit int) ([]models.Conversation, int64, error) {
	query := r.db.Model(&models.Conversation{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var conversations []models.Conversation
	err := query.Order("updated_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&conversations).Error
	return conversations, total, err
}

func (r *ChatRepositoryImpl) ListAllConversations(page, limit int) ([]models.Conversation, int64, error) {
	query := r.db.Model(&models.Conversation{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var conversations []models.Conversation
	err := query.Preload("User").Preload("Ticket").
		Order("updated_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&conversations).Error
	return conversations, total, err
}

func (r *ChatRepositoryImpl) CreateMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *ChatRepositoryImpl) ListMessages(conversationID string, page, limit int) ([]models.Message, int64, error) {
	query := r.db.Model(&models.Message{}).Where("conversation_id = ?", conversationID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	err := query.Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	return messages, total, err
}

func (r *ChatRepositoryImpl) CreateTicket(ticket *models.SupportTicket) error {
	return r.db.Create(ticket).Error
}

func (r *ChatRepositoryImpl) GetTicket(id string) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := r.db.Preload("Conversation").Preload("User").First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ChatRepositoryImpl) GetTicketByConversation(conversationID string) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := r.db.First(&ticket, "conversation_id = ?", conversationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ChatRepositoryImpl) UpdateTicket(ticket *models.SupportTicket) error {
	return r.db.Save(ticket).Error
}

func (r *ChatRepositoryImpl) ListTickets(filter TicketFilter) ([]models.SupportTicket, int64, error) {
	query := r.db.Model(&models.SupportTicket{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AssignedAdminID != "" {
		query = query.Where("assigned_admin_id = ?", filter.AssignedAdminID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tickets []models.SupportTicket
	err := query.Preload("User").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&tickets).Error
	return tickets, total, err
}
