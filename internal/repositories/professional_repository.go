package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
)

var (
	ErrProfileNotFound = errors.New("professional profile not found")
	ErrLinkNotFound    = errors.New("profession link not found")
)

type ProfileFilter struct {
	ProfessionID string
	City         string
	Search       string
	MinRating    float64
	Page         int
	Limit        int
}

type ProfessionalRepository interface {
	CreateProfile(profile *models.ProfessionalProfile) error
	GetProfileByUserID(userID string) (*models.ProfessionalProfile, error)
	GetProfileByID(id string) (*models.ProfessionalProfile, error)
	UpdateProfile(profile *models.ProfessionalProfile) error
	ListProfiles(filter ProfileFilter) ([]models.ProfessionalProfile, int64, error)

	CreateLink(link *models.ProfessionLink) error
	GetLink(id string) (*models.ProfessionLink, error)
	GetLinkByPair(professionalID, professionID string) (*models.ProfessionLink, error)
	ListLinks(professionalID string) ([]models.ProfessionLink, error)
	UpdateLink(link *models.ProfessionLink) error
	DeleteLink(id string) error
}

type ProfessionalRepositoryImpl struct {
	db *gorm.DB
}

func NewProfessionalRepository(db *gorm.DB) ProfessionalRepository {
	return &ProfessionalRepositoryImpl{db: db}
}

func (r *ProfessionalRepositoryImpl) CreateProfile(profile *models.ProfessionalProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfessionalRepositoryImpl) GetProfileByUserID(userID string) (*models.ProfessionalProfile, error) {
	var profile models.ProfessionalProfile
	err := r.db.Preload("Links.Profession").First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfessionalRepositoryImpl) GetProfileByID(id string) (*models.ProfessionalProfile, error) {
	var profile models.ProfessionalProfile
	err := r.db.Preload("Links.Profession").First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfessionalRepositoryImpl) UpdateProfile(profile *models.ProfessionalProfile) error {
	return r.db.Save(profile).Error
}

func (r *ProfessionalRepositoryImpl) ListProfiles(filter ProfileFilter) ([]models.ProfessionalProfile, int64, error) {
	query := r.db.Model(&models.ProfessionalProfile{})
	if filter.ProfessionID != "" {
		query = query.Where("id IN (?)", r.db.Model(&models.ProfessionLink{}).
			Select("professional_id").
			Where("profession_id = ?", filter.ProfessionID))
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("bio LIKE ?", like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.ProfessionalProfile
	err := query.Preload("Links.Profession").
		Order("rating DESC, review_count DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&profiles).Error
	return profiles, total, err
}

func (r *ProfessionalRepositoryImpl) CreateLink(link *models.ProfessionLink) error {
	return r.db.Create(link).Error
}

func (r *ProfessionalRepositoryImpl) GetLink(id string) (*models.ProfessionLink, error) {
	var link models.ProfessionLink
	err := r.db.Preload("Profession").First(&link, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *ProfessionalRepositoryImpl) GetLinkByPair(professionalID, professionID string) (*models.ProfessionLink, error) {
	var link models.ProfessionLink
	err := r.db.First(&link, "professional_id = ? AND profession_id = ?", professionalID, professionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *ProfessionalRepositoryImpl) ListLinks(professionalID string) ([]models.ProfessionLink, error) {
	var links []models.ProfessionLink
	err := r.db.Preload("Profession").Where("professional_id = ?", professionalID).Find(&links).Error
	return links, err
}

func (r *ProfessionalRepositoryImpl) UpdateLink(link *models.ProfessionLink) error {
	return r.db.Save(link).Error
}

func (r *ProfessionalRepositoryImpl) DeleteLink(id string) error {
	return r.db.Delete(&models.ProfessionLink{}, "id = ?", id).Error
}
