package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type UpdateTransactionStatusRequest struct {
	Status string `json:"status" validate:"required,is-transaction-status"`
}

type ApplyPromoRequest struct {
	Code string `json:"code" validate:"required,min=3,max=50"`
}

type TransactionResponse struct {
	ID             string           `json:"id"`
	PostingID      *string          `json:"postingId,omitempty"`
	OfferID        string           `json:"offerId"`
	ClientID       string           `json:"clientId"`
	ProfessionalID string           `json:"professionalId"`
	Amount         float64          `json:"amount"`
	FinalAmount    float64          `json:"finalAmount"`
	PromoCodeID    *string          `json:"promoCodeId,omitempty"`
	Status         string           `json:"status"`
	Payment        *PaymentResponse `json:"payment,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func NewTransactionResponse(tx *models.ServiceTransaction) TransactionResponse {
	resp := TransactionResponse{
		ID:             tx.ID,
		PostingID:      tx.PostingID,
		OfferID:        tx.OfferID,
		ClientID:       tx.ClientID,
		ProfessionalID: tx.ProfessionalID,
		Amount:         tx.Amount,
		FinalAmount:    tx.FinalAmount,
		PromoCodeID:    tx.PromoCodeID,
		Status:         string(tx.Status),
		CreatedAt:      tx.CreatedAt,
	}
	if tx.Payment != nil {
		p := NewPaymentResponse(tx.Payment)
		resp.Payment = &p
	}
	return resp
}

func NewTransactionListResponse(txs []models.ServiceTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionResponse(&txs[i]))
	}
	return out
}
