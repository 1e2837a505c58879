package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type CreatePromoCodeRequest struct {
	Code         string    `json:"code" validate:"required,min=3,max=50"`
	Description  string    `json:"description" validate:"omitempty,max=500"`
	DiscountType string    `json:"discountType" validate:"required,is-discount-type"`
	Value        float64   `json:"value" validate:"required,gt=0"`
	MaxUses      int       `json:"maxUses" validate:"required,gte=1"`
	ValidFrom    time.Time `json:"validFrom" validate:"required"`
	ValidUntil   time.Time `json:"validUntil" validate:"required,gtfield=ValidFrom"`
}

type UpdatePromoCodeRequest struct {
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Value       *float64   `json:"value" validate:"omitempty,gt=0"`
	MaxUses     *int       `json:"maxUses" validate:"omitempty,gte=1"`
	ValidUntil  *time.Time `json:"validUntil"`
	IsActive    *bool      `json:"isActive"`
}

type PromoCodeResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Description  string    `json:"description,omitempty"`
	DiscountType string    `json:"discountType"`
	Value        float64   `json:"value"`
	MaxUses      int       `json:"maxUses"`
	UsesCount    int       `json:"usesCount"`
	ValidFrom    time.Time `json:"validFrom"`
	ValidUntil   time.Time `json:"validUntil"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewPromoCodeResponse(code *models.PromoCode) PromoCodeResponse {
	return PromoCodeResponse{
		ID:           code.ID,
		Code:         code.Code,
		Description:  code.Description,
		DiscountType: string(code.DiscountType),
		Value:        code.Value,
		MaxUses:      code.MaxUses,
		UsesCount:    code.UsesCount,
		ValidFrom:    code.ValidFrom,
		ValidUntil:   code.ValidUntil,
		IsActive:     code.IsActive,
		CreatedAt:    code.CreatedAt,
	}
}

func NewPromoCodeListResponse(codes []models.PromoCode) []PromoCodeResponse {
	out := make([]PromoCodeResponse, 0, len(codes))
	for i := range codes {
		out = append(out, NewPromoCodeResponse(&codes[i]))
	}
	return out
}

// PromoValidationResponse is the public answer for GET /promo-codes/validate/:code.
type PromoValidationResponse struct {
	Valid        bool    `json:"valid"`
	Code         string  `json:"code"`
	DiscountType string  `json:"discountType,omitempty"`
	Value        float64 `json:"value,omitempty"`
}
