package models

type ServiceTransaction struct {
	BaseModel
	PostingID      *string `gorm:"index"`
	OfferID        string  `gorm:"uniqueIndex;not null"`
	ClientID       string  `gorm:"not null;index"`
	ProfessionalID string  `gorm:"not null;index"`
	Amount         float64
	FinalAmount    float64
	PromoCodeID    *string           `gorm:"index"`
	Status         TransactionStatus `gorm:"type:varchar(20);default:'PENDING'"`

	// Relations
	Posting      *ServicePosting `gorm:"foreignKey:PostingID"`
	Client       *User           `gorm:"foreignKey:ClientID"`
	Professional *User           `gorm:"foreignKey:ProfessionalID"`
	PromoCode    *PromoCode      `gorm:"foreignKey:PromoCodeID"`
	Payment      *Payment        `gorm:"foreignKey:TransactionID"`
	Reviews      []Review        `gorm:"foreignKey:TransactionID"`
}
