package models

type Review struct {
	BaseModel
	TransactionID string `gorm:"not null;index"`
	ReviewerID    string `gorm:"not null;index"`
	RevieweeID    string `gorm:"not null;index"`
	Rating        int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment       string

	Transaction *ServiceTransaction `gorm:"foreignKey:TransactionID"`
	Reviewer    *User               `gorm:"foreignKey:ReviewerID"`
	Reviewee    *User               `gorm:"foreignKey:RevieweeID"`
}
