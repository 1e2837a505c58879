package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type CreateOfferRequest struct {
	PostingID     string  `json:"postingId" validate:"required,uuid"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Message       string  `json:"message" validate:"omitempty,max=2000"`
	EstimatedDays int     `json:"estimatedDays" validate:"omitempty,gte=1,lte=365"`
}

type UpdateOfferRequest struct {
	Amount        *float64 `json:"amount" validate:"omitempty,gt=0"`
	Message       *string  `json:"message" validate:"omitempty,max=2000"`
	EstimatedDays *int     `json:"estimatedDays" validate:"omitempty,gte=1,lte=365"`
}

type OfferResponse struct {
	ID             string              `json:"id"`
	PostingID      string              `json:"postingId"`
	ProfessionalID string              `json:"professionalId"`
	Professional   *PublicUserResponse `json:"professional,omitempty"`
	Amount         float64             `json:"amount"`
	Message        string              `json:"message,omitempty"`
	EstimatedDays  int                 `json:"estimatedDays,omitempty"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
}

func NewOfferResponse(offer *models.Offer) OfferResponse {
	resp := OfferResponse{
		ID:             offer.ID,
		PostingID:      offer.PostingID,
		ProfessionalID: offer.ProfessionalID,
		Amount:         offer.Amount,
		Message:        offer.Message,
		EstimatedDays:  offer.EstimatedDays,
		Status:         string(offer.Status),
		CreatedAt:      offer.CreatedAt,
	}
	if offer.Professional != nil {
		p := NewPublicUserResponse(offer.Professional)
		resp.Professional = &p
	}
	return resp
}

func NewOfferListResponse(offers []models.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for i := range offers {
		out = append(out, NewOfferResponse(&offers[i]))
	}
	return out
}

// AcceptOfferResponse returns the accepted offer together with the
// transaction created for it.
type AcceptOfferResponse struct {
	Offer       OfferResponse       `json:"offer"`
	Transaction TransactionResponse `json:"transaction"`
}
