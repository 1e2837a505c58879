package models

import "time"

type Conversation struct {
	BaseModel
	UserID        string `gorm:"not null;index"`
	Subject       string
	Status        ConversationStatus `gorm:"type:varchar(20);default:'OPEN'"`
	LastMessageAt *time.Time

	User     *User          `gorm:"foreignKey:UserID"`
	Messages []Message      `gorm:"foreignKey:ConversationID"`
	Ticket   *SupportTicket `gorm:"foreignKey:ConversationID"`
}

type Message struct {
	BaseModel
	ConversationID string        `gorm:"not null;index"`
	Sender         MessageSender `gorm:"type:varchar(10);not null"`
	SenderID       *string       `gorm:"index"` // nil for bot messages
	Content        string        `gorm:"not null"`
}

// SupportTicket is the escalation record attached to a conversation once the
// bot hands off to a human.
type SupportTicket struct {
	BaseModel
	ConversationID  string       `gorm:"uniqueIndex;not null"`
	UserID          string       `gorm:"not null;index"`
	Status          TicketStatus `gorm:"type:varchar(30);default:'OPEN_AI_HANDLING'"`
	AssignedAdminID *string      `gorm:"index"`
	ClosedAt        *time.Time

	Conversation *Conversation `gorm:"foreignKey:ConversationID"`
	User         *User         `gorm:"foreignKey:UserID"`
}
