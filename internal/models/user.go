package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	Name         string     `gorm:"not null"`
	Role         UserRole   `gorm:"type:varchar(20);not null"`
	Status       UserStatus `gorm:"type:varchar(20);default:'ACTIVE'"`
	City         string
	AvatarURL    string
	Balance      float64 `gorm:"default:0"`

	// Email verification and password reset
	IsVerified        bool `gorm:"default:false"`
	VerificationToken string
	ResetToken        string
	ResetTokenExp     *time.Time

	// Phone verification (OTP)
	Phone         string
	PhoneVerified bool `gorm:"default:false"`
	OTPCode       string
	OTPExpiresAt  *time.Time

	// Identity verification (cedula)
	Cedula           string
	IdentityVerified bool `gorm:"default:false"`

	// Relations
	ProfessionalProfile *ProfessionalProfile `gorm:"foreignKey:UserID"`
	RefreshTokens       []RefreshToken       `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
