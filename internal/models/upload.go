package models

import "gorm.io/gorm"

type Upload struct {
	BaseModel
	UserID    string `gorm:"not null;index"`
	Kind      string `gorm:"not null"` // "certification" | "portfolio"
	FileName  string `gorm:"not null"`
	Path      string `gorm:"not null"`
	URL       string
	MimeType  string
	Size      int64
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
