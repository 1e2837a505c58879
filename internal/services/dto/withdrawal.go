package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type CreateWithdrawalRequest struct {
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Method         string  `json:"method" validate:"required,oneof=BANK_TRANSFER PAGO_MOVIL ZELLE"`
	AccountDetails string  `json:"accountDetails" validate:"required,max=500"`
}

type UpdateWithdrawalStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=APPROVED PROCESSING COMPLETED REJECTED"`
	AdminNotes      string `json:"adminNotes" validate:"omitempty,max=1000"`
	RejectionReason string `json:"rejectionReason" validate:"omitempty,max=1000"`
}

type WithdrawalResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	Amount          float64    `json:"amount"`
	Method          string     `json:"method"`
	AccountDetails  string     `json:"accountDetails"`
	Status          string     `json:"status"`
	AdminNotes      string     `json:"adminNotes,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	ProcessedAt     *time.Time `json:"processedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func NewWithdrawalResponse(withdrawal *models.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:              withdrawal.ID,
		UserID:          withdrawal.UserID,
		Amount:          withdrawal.Amount,
		Method:          withdrawal.Method,
		AccountDetails:  withdrawal.AccountDetails,
		Status:          string(withdrawal.Status),
		AdminNotes:      withdrawal.AdminNotes,
		RejectionReason: withdrawal.RejectionReason,
		ProcessedAt:     withdrawal.ProcessedAt,
		CreatedAt:       withdrawal.CreatedAt,
	}
}

func NewWithdrawalListResponse(withdrawals []models.Withdrawal) []WithdrawalResponse {
	out := make([]WithdrawalResponse, 0, len(withdrawals))
	for i := range withdrawals {
		out = append(out, NewWithdrawalResponse(&withdrawals[i]))
	}
	return out
}
