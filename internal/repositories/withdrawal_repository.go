package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
)

var ErrWithdrawalNotFound = errors.New("withdrawal not found")

type WithdrawalFilter struct {
	UserID string
	Status models.WithdrawalStatus
	Page   int
	Limit  int
}

type WithdrawalRepository interface {
	Create(withdrawal *models.Withdrawal) error
	GetByID(id string) (*models.Withdrawal, error)
	Update(withdrawal *models.Withdrawal) error
	List(filter WithdrawalFilter) ([]models.Withdrawal, int64, error)
}

type WithdrawalRepositoryImpl struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &WithdrawalRepositoryImpl{db: db}
}

func (r *WithdrawalRepositoryImpl) Create(withdrawal *models.Withdrawal) error {
	return r.db.Create(withdrawal).Error
}

func (r *WithdrawalRepositoryImpl) GetByID(id string) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := r.db.First(&withdrawal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

func (r *WithdrawalRepositoryImpl) Update(withdrawal *models.Withdrawal) error {
	return r.db.Save(withdrawal).Error
}

func (r *WithdrawalRepositoryImpl) List(filter WithdrawalFilter) ([]models.Withdrawal, int64, error) {
	query := r.db.Model(&models.Withdrawal{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var withdrawals []models.Withdrawal
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&withdrawals).Error
	return withdrawals, total, err
}
