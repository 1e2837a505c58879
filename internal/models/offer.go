package models

type Offer struct {
	BaseModel
	PostingID      string `gorm:"not null;index;uniqueIndex:idx_offer_posting_prof"`
	ProfessionalID string `gorm:"not null;index;uniqueIndex:idx_offer_posting_prof"`
	Amount         float64
	Message        string
	EstimatedDays  int
	Status         OfferStatus `gorm:"type:varchar(20);default:'PENDING'"`

	// Relations
	Posting      *ServicePosting `gorm:"foreignKey:PostingID"`
	Professional *User           `gorm:"foreignKey:ProfessionalID"`
}
