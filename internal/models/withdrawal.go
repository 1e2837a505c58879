package models

import "time"

type Withdrawal struct {
	BaseModel
	UserID          string `gorm:"not null;index"`
	Amount          float64
	Method          string
	AccountDetails  string
	Status          WithdrawalStatus `gorm:"type:varchar(20);default:'PENDING'"`
	AdminNotes      string
	RejectionReason string
	ProcessedAt     *time.Time

	User *User `gorm:"foreignKey:UserID"`
}
