package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type CreatePostingRequest struct {
	ProfessionID  string     `json:"professionId" validate:"required,uuid"`
	Title         string     `json:"title" validate:"required,min=5,max=200"`
	Description   string     `json:"description" validate:"required,min=10,max=5000"`
	City          string     `json:"city" validate:"required,max=100"`
	BudgetMin     float64    `json:"budgetMin" validate:"gte=0"`
	BudgetMax     float64    `json:"budgetMax" validate:"gte=0,gtefield=BudgetMin"`
	PreferredDate *time.Time `json:"preferredDate"`
}

type UpdatePostingRequest struct {
	Title         *string    `json:"title" validate:"omitempty,min=5,max=200"`
	Description   *string    `json:"description" validate:"omitempty,min=10,max=5000"`
	City          *string    `json:"city" validate:"omitempty,max=100"`
	BudgetMin     *float64   `json:"budgetMin" validate:"omitempty,gte=0"`
	BudgetMax     *float64   `json:"budgetMax" validate:"omitempty,gte=0"`
	PreferredDate *time.Time `json:"preferredDate"`
	Status        *string    `json:"status" validate:"omitempty,oneof=OPEN CLOSED"`
}

type PostingResponse struct {
	ID            string              `json:"id"`
	ClientID      string              `json:"clientId"`
	ProfessionID  string              `json:"professionId,omitempty"`
	Profession    *ProfessionResponse `json:"profession,omitempty"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	City          string              `json:"city"`
	BudgetMin     float64             `json:"budgetMin"`
	BudgetMax     float64             `json:"budgetMax"`
	PreferredDate *time.Time          `json:"preferredDate,omitempty"`
	Status        string              `json:"status"`
	Views         int                 `json:"views"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func NewPostingResponse(posting *models.ServicePosting) PostingResponse {
	resp := PostingResponse{
		ID:            posting.ID,
		ClientID:      posting.ClientID,
		ProfessionID:  posting.ProfessionID,
		Title:         posting.Title,
		Description:   posting.Description,
		City:          posting.City,
		BudgetMin:     posting.BudgetMin,
		BudgetMax:     posting.BudgetMax,
		PreferredDate: posting.PreferredDate,
		Status:        string(posting.Status),
		Views:         posting.Views,
		CreatedAt:     posting.CreatedAt,
	}
	if posting.Profession != nil {
		p := NewProfessionResponse(posting.Profession)
		resp.Profession = &p
	}
	return resp
}

func NewPostingListResponse(postings []models.ServicePosting) []PostingResponse {
	out := make([]PostingResponse, 0, len(postings))
	for i := range postings {
		out = append(out, NewPostingResponse(&postings[i]))
	}
	return out
}
