package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
)

var ErrOfferNotFound = errors.New("offer not found")

type OfferFilter struct {
	PostingID      string
	ProfessionalID string
	Status         models.OfferStatus
	Page           int
	Limit          int
}

type OfferRepository interface {
	Create(offer *models.Offer) error
	GetByID(id string) (*models.Offer, error)
	GetByPostingAndProfessional(postingID, professionalID string) (*models.Offer, error)
	Update(offer *models.Offer) error
	Delete(id string) error
	List(filter OfferFilter) ([]models.Offer, int64, error)
}

type OfferRepositoryImpl struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &OfferRepositoryImpl{db: db}
}

func (r *OfferRepositoryImpl) Create(offer *models.Offer) error {
	return r.db.Create(offer).Error
}

func (r *OfferRepositoryImpl) GetByID(id string) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.Preload("Posting").Preload("Professional").First(&offer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepositoryImpl) GetByPostingAndProfessional(postingID, professionalID string) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.First(&offer, "posting_id = ? AND professional_id = ?", postingID, professionalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepositoryImpl) Update(offer *models.Offer) error {
	return r.db.Save(offer).Error
}

func (r *OfferRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Offer{}, "id = ?", id).Error
}

func (r *OfferRepositoryImpl) List(filter OfferFilter) ([]models.Offer, int64, error) {
	query := r.db.Model(&models.Offer{})
	if filter.PostingID != "" {
		query = query.Where("posting_id = ?", filter.PostingID)
	}
	if filter.ProfessionalID != "" {
		query = query.Where("professional_id = ?", filter.ProfessionalID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var offers []models.Offer
	err := query.Preload("Professional").Preload("Posting").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&offers).Error
	return offers, total, err
}
