package models

import "gorm.io/datatypes"

type ProfessionalProfile struct {
	BaseModel
	UserID          string `gorm:"uniqueIndex;not null"`
	Bio             string
	YearsExperience int
	HourlyRate      float64
	City            string
	Rating          float64 `gorm:"default:0"`
	ReviewCount     int     `gorm:"default:0"`

	// Upload references
	Certifications datatypes.JSON `gorm:"type:jsonb"`
	Portfolio      datatypes.JSON `gorm:"type:jsonb"`

	// Relations
	Links []ProfessionLink `gorm:"foreignKey:ProfessionalID"`
}
