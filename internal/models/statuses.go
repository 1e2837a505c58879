package models

type UserRole string
type UserStatus string
type PostingStatus string
type OfferStatus string
type TransactionStatus string
type PaymentStatus string
type WithdrawalStatus string
type ReportStatus string
type TicketStatus string
type ConversationStatus string
type MessageSender string
type DiscountType string

const (
	UserRoleClient       UserRole = "CLIENT"
	UserRoleProfessional UserRole = "PROFESSIONAL"
	UserRoleAdmin        UserRole = "ADMIN"

	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"

	PostingStatusOpen    PostingStatus = "OPEN"
	PostingStatusClosed  PostingStatus = "CLOSED"
	PostingStatusExpired PostingStatus = "EXPIRED"

	OfferStatusPending  OfferStatus = "PENDING"
	OfferStatusAccepted OfferStatus = "ACCEPTED"
	OfferStatusRejected OfferStatus = "REJECTED"

	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusInProgress TransactionStatus = "IN_PROGRESS"
	TransactionStatusCompleted  TransactionStatus = "COMPLETED"
	TransactionStatusCancelled  TransactionStatus = "CANCELLED"

	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"

	WithdrawalStatusPending    WithdrawalStatus = "PENDING"
	WithdrawalStatusApproved   WithdrawalStatus = "APPROVED"
	WithdrawalStatusProcessing WithdrawalStatus = "PROCESSING"
	WithdrawalStatusCompleted  WithdrawalStatus = "COMPLETED"
	WithdrawalStatusRejected   WithdrawalStatus = "REJECTED"

	ReportStatusPending   ReportStatus = "PENDING"
	ReportStatusReviewing ReportStatus = "REVIEWING"
	ReportStatusResolved  ReportStatus = "RESOLVED"
	ReportStatusDismissed ReportStatus = "DISMISSED"

	TicketStatusAIHandling        TicketStatus = "OPEN_AI_HANDLING"
	TicketStatusPendingAssignment TicketStatus = "PENDING_HUMAN_ASSIGNMENT"
	TicketStatusActiveHumanChat   TicketStatus = "ACTIVE_HUMAN_CHAT"
	TicketStatusClosedResolved    TicketStatus = "CLOSED_RESOLVED"
	TicketStatusClosedByClient    TicketStatus = "CLOSED_BY_CLIENT"

	ConversationStatusOpen   ConversationStatus = "OPEN"
	ConversationStatusClosed ConversationStatus = "CLOSED"

	MessageSenderUser  MessageSender = "USER"
	MessageSenderBot   MessageSender = "BOT"
	MessageSenderAdmin MessageSender = "ADMIN"

	DiscountTypePercentage DiscountType = "PERCENTAGE"
	DiscountTypeFixed      DiscountType = "FIXED"
)

// AllTicketStatuses is the membership set used when updating a ticket. Any
// status may follow any other; there is no adjacency graph.
var AllTicketStatuses = []TicketStatus{
	TicketStatusAIHandling,
	TicketStatusPendingAssignment,
	TicketStatusActiveHumanChat,
	TicketStatusClosedResolved,
	TicketStatusClosedByClient,
}
