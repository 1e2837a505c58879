package models

import (
	"time"

	"gorm.io/gorm"
)

type ServicePosting struct {
	BaseModel
	ClientID      string `gorm:"not null;index"`
	ProfessionID  string `gorm:"index"`
	Title         string `gorm:"not null"`
	Description   string
	City          string
	BudgetMin     float64
	BudgetMax     float64
	PreferredDate *time.Time
	Status        PostingStatus  `gorm:"type:varchar(20);default:'OPEN'"`
	Views         int            `gorm:"default:0"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	// Relations
	Client     *User       `gorm:"foreignKey:ClientID"`
	Profession *Profession `gorm:"foreignKey:ProfessionID"`
	Offers     []Offer     `gorm:"foreignKey:PostingID"`
}
