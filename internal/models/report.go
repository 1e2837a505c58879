package models

type Report struct {
	BaseModel
	ReporterID     string  `gorm:"not null;index"`
	ReportedUserID string  `gorm:"not null;index"`
	TransactionID  *string `gorm:"index"`
	Reason         string  `gorm:"not null"`
	Description    string
	Status         ReportStatus `gorm:"type:varchar(20);default:'PENDING'"`
	Resolution     string

	Reporter     *User `gorm:"foreignKey:ReporterID"`
	ReportedUser *User `gorm:"foreignKey:ReportedUserID"`
}
