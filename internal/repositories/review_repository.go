package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(tx *gorm.DB, review *models.Review) error
	GetByID(id string) (*models.Review, error)
	GetByTransactionAndReviewer(tx *gorm.DB, transactionID, reviewerID string) (*models.Review, error)
	ListForTransaction(transactionID string) ([]models.Review, error)
	ListForUser(revieweeID string, page, limit int) ([]models.Review, int64, error)
	ListAll(page, limit int) ([]models.Review, int64, error)
	Delete(tx *gorm.DB, id string) error
	AggregateForUser(tx *gorm.DB, revieweeID string) (avg float64, count int64, err error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(tx *gorm.DB, review *models.Review) error {
	return tx.Create(review).Error
}

func (r *ReviewRepositoryImpl) GetByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("Reviewer").First(&review, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) GetByTransactionAndReviewer(tx *gorm.DB, transactionID, reviewerID string) (*models.Review, error) {
	var review models.Review
	err := tx.First(&review, "transaction_id = ? AND reviewer_id = ?", transactionID, reviewerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) ListForTransaction(transactionID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Reviewer").
		Where("transaction_id = ?", transactionID).
		Order("created_at ASC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) ListForUser(revieweeID string, page, limit int) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{}).Where("reviewee_id = ?", revieweeID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Preload("Reviewer").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) ListAll(page, limit int) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Preload("Reviewer").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) Delete(tx *gorm.DB, id string) error {
	return tx.Delete(&models.Review{}, "id = ?", id).Error
}

func (r *ReviewRepositoryImpl) AggregateForUser(tx *gorm.DB, revieweeID string) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("reviewee_id = ?", revieweeID).
		Scan(&result).Error
	return result.Avg, result.Count, err
}
