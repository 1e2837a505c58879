package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING COMPLETED FAILED REFUNDED"`
}

type PaymentResponse struct {
	ID            string     `json:"id"`
	TransactionID string     `json:"transactionId"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func NewPaymentResponse(payment *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		Status:        string(payment.Status),
		PaidAt:        payment.PaidAt,
		CreatedAt:     payment.CreatedAt,
	}
}

func NewPaymentListResponse(payments []models.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, NewPaymentResponse(&payments[i]))
	}
	return out
}
