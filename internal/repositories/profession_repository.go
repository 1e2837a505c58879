package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
)

var ErrProfessionNotFound = errors.New("profession not found")

// ProfessionFilter narrows the catalog listing.
type ProfessionFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type ProfessionRepository interface {
	Create(profession *models.Profession) error
	GetByID(id string) (*models.Profession, error)
	GetByName(name string) (*models.Profession, error)
	List(filter ProfessionFilter) ([]models.Profession, int64, error)
	Update(profession *models.Profession) error
	Delete(id string) error
	CountLinks(professionID string) (int64, error)
	CountPostings(professionID string) (int64, error)
}

type ProfessionRepositoryImpl struct {
	db *gorm.DB
}

func NewProfessionRepository(db *gorm.DB) ProfessionRepository {
	return &ProfessionRepositoryImpl{db: db}
}

func (r *ProfessionRepositoryImpl) Create(profession *models.Profession) error {
	return r.db.Create(profession).Error
}

func (r *ProfessionRepositoryImpl) GetByID(id string) (*models.Profession, error) {
	var profession models.Profession
	err := r.db.First(&profession, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profession, nil
}

func (r *ProfessionRepositoryImpl) GetByName(name string) (*models.Profession, error) {
	var profession models.Profession
	err := r.db.First(&profession, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profession, nil
}

func (r *ProfessionRepositoryImpl) List(filter ProfessionFilter) ([]models.Profession, int64, error) {
	query := r.db.Model(&models.Profession{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var professions []models.Profession
	err := query.Order("name ASC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&professions).Error
	return professions, total, err
}

func (r *ProfessionRepositoryImpl) Update(profession *models.Profession) error {
	return r.db.Save(profession).Error
}

func (r *ProfessionRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Profession{}, "id = ?", id).Error
}

func (r *ProfessionRepositoryImpl) CountLinks(professionID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProfessionLink{}).Where("profession_id = ?", professionID).Count(&count).Error
	return count, err
}

func (r *ProfessionRepositoryImpl) CountPostings(professionID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ServicePosting{}).Where("profession_id = ?", professionID).Count(&count).Error
	return count, err
}
