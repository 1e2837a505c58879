package models

import "time"

type PromoCode struct {
	BaseModel
	Code         string       `gorm:"uniqueIndex;not null"`
	Description  string
	DiscountType DiscountType `gorm:"type:varchar(20);not null"`
	Value        float64      `gorm:"not null"`
	MaxUses      int          `gorm:"not null"`
	UsesCount    int          `gorm:"default:0"`
	ValidFrom    time.Time
	ValidUntil   time.Time
	IsActive     bool `gorm:"default:true"`

	Usages []PromoCodeUsage `gorm:"foreignKey:PromoCodeID"`
}

// PromoCodeUsage is the ledger row written when a code is applied to a
// transaction.
type PromoCodeUsage struct {
	BaseModel
	PromoCodeID   string `gorm:"not null;index"`
	UserID        string `gorm:"not null;index"`
	TransactionID string `gorm:"uniqueIndex;not null"`
	Discount      float64
}
