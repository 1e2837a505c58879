package models

import "time"

type Payment struct {
	BaseModel
	TransactionID string `gorm:"uniqueIndex;not null"`
	Amount        float64
	Status        PaymentStatus `gorm:"type:varchar(20);default:'PENDING'"`
	PaidAt        *time.Time

	Transaction *ServiceTransaction `gorm:"foreignKey:TransactionID"`
}
