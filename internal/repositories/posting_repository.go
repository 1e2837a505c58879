package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
)

var ErrPostingNotFound = errors.New("service posting not found")

type PostingFilter struct {
	ProfessionID string
	City         string
	Status       models.PostingStatus
	ClientID     string
	BudgetMin    float64
	BudgetMax    float64
	Search       string
	Page         int
	Limit        int
}

type PostingRepository interface {
	Create(posting *models.ServicePosting) error
	GetByID(id string) (*models.ServicePosting, error)
	Update(posting *models.ServicePosting) error
	Delete(id string) error
	List(filter PostingFilter) ([]models.ServicePosting, int64, error)
	IncrementViews(id string) error
	ExpireOlderThan(cutoff time.Time) (int64, error)
	CountTransactions(postingID string) (int64, error)
}

type PostingRepositoryImpl struct {
	db *gorm.DB
}

func NewPostingRepository(db *gorm.DB) PostingRepository {
	return &PostingRepositoryImpl{db: db}
}

func (r *PostingRepositoryImpl) Create(posting *models.ServicePosting) error {
	return r.db.Create(posting).Error
}

func (r *PostingRepositoryImpl) GetByID(id string) (*models.ServicePosting, error) {
	var posting models.ServicePosting
	err := r.db.Preload("Profession").Preload("Client").First(&posting, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &posting, nil
}

func (r *PostingRepositoryImpl) Update(posting *models.ServicePosting) error {
	return r.db.Save(posting).Error
}

func (r *PostingRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.ServicePosting{}, "id = ?", id).Error
}

func (r *PostingRepositoryImpl) List(filter PostingFilter) ([]models.ServicePosting, int64, error) {
	query := r.db.Model(&models.ServicePosting{})
	if filter.ProfessionID != "" {
		query = query.Where("profession_id = ?", filter.ProfessionID)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ClientID != "" {
		query = query.Where("client_id = ?", filter.ClientID)
	}
	if filter.BudgetMin > 0 {
		query = query.Where("budget_max >= ?", filter.BudgetMin)
	}
	if filter.BudgetMax > 0 {
		query = query.Where("budget_min <= ?", filter.BudgetMax)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var postings []models.ServicePosting
	err := query.Preload("Profession").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&postings).Error
	return postings, total, err
}

// IncrementViews bumps the counter atomically in the database.
func (r *PostingRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.ServicePosting{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *PostingRepositoryImpl) ExpireOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Model(&models.ServicePosting{}).
		Where("status = ? AND created_at < ?", models.PostingStatusOpen, cutoff).
		Update("status", models.PostingStatusExpired)
	return res.RowsAffected, res.Error
}

func (r *PostingRepositoryImpl) CountTransactions(postingID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ServiceTransaction{}).Where("posting_id = ?", postingID).Count(&count).Error
	return count, err
}
