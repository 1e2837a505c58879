package dto

import "servimarket_backend/internal/models"

type CreateProfessionRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Category    string `json:"category" validate:"omitempty,max=100"`
}

type UpdateProfessionRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
}

type ProfessionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

func NewProfessionResponse(profession *models.Profession) ProfessionResponse {
	return ProfessionResponse{
		ID:          profession.ID,
		Name:        profession.Name,
		Description: profession.Description,
		Category:    profession.Category,
	}
}
