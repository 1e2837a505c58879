package models

type Profession struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	Category    string
}

// ProfessionLink joins a professional profile to a catalog profession. Links
// start unverified; an admin verifies them.
type ProfessionLink struct {
	BaseModel
	ProfessionalID string `gorm:"not null;index;uniqueIndex:idx_prof_profession"`
	ProfessionID   string `gorm:"not null;index;uniqueIndex:idx_prof_profession"`
	Verified       bool   `gorm:"default:false"`

	Profession *Profession `gorm:"foreignKey:ProfessionID"`
}
