package dto

import (
	"encoding/json"

	"servimarket_backend/internal/models"
)

type UpdateProfileRequest struct {
	Bio             *string  `json:"bio" validate:"omitempty,max=2000"`
	YearsExperience *int     `json:"yearsExperience" validate:"omitempty,gte=0,lte=80"`
	HourlyRate      *float64 `json:"hourlyRate" validate:"omitempty,gte=0"`
	City            *string  `json:"city" validate:"omitempty,max=100"`
	Certifications  []string `json:"certifications" validate:"omitempty,dive,uuid"`
	Portfolio       []string `json:"portfolio" validate:"omitempty,dive,uuid"`
}

type AddProfessionRequest struct {
	ProfessionID string `json:"professionId" validate:"required,uuid"`
}

type ProfessionLinkResponse struct {
	ID           string              `json:"id"`
	ProfessionID string              `json:"professionId"`
	Verified     bool                `json:"verified"`
	Profession   *ProfessionResponse `json:"profession,omitempty"`
}

type ProfileResponse struct {
	ID              string                   `json:"id"`
	UserID          string                   `json:"userId"`
	Bio             string                   `json:"bio,omitempty"`
	YearsExperience int                      `json:"yearsExperience"`
	HourlyRate      float64                  `json:"hourlyRate"`
	City            string                   `json:"city,omitempty"`
	Rating          float64                  `json:"rating"`
	ReviewCount     int                      `json:"reviewCount"`
	Certifications  []string                 `json:"certifications,omitempty"`
	Portfolio       []string                 `json:"portfolio,omitempty"`
	Professions     []ProfessionLinkResponse `json:"professions,omitempty"`
}

func NewProfileResponse(profile *models.ProfessionalProfile) ProfileResponse {
	resp := ProfileResponse{
		ID:              profile.ID,
		UserID:          profile.UserID,
		Bio:             profile.Bio,
		YearsExperience: profile.YearsExperience,
		HourlyRate:      profile.HourlyRate,
		City:            profile.City,
		Rating:          profile.Rating,
		ReviewCount:     profile.ReviewCount,
	}
	if len(profile.Certifications) > 0 {
		json.Unmarshal(profile.Certifications, &resp.Certifications)
	}
	if len(profile.Portfolio) > 0 {
		json.Unmarshal(profile.Portfolio, &resp.Portfolio)
	}
	for _, link := range profile.Links {
		linkResp := ProfessionLinkResponse{
			ID:           link.ID,
			ProfessionID: link.ProfessionID,
			Verified:     link.Verified,
		}
		if link.Profession != nil {
			p := NewProfessionResponse(link.Profession)
			linkResp.Profession = &p
		}
		resp.Professions = append(resp.Professions, linkResp)
	}
	return resp
}
