package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("service transaction not found")
	ErrPaymentNotFound     = errors.New("payment not found")
)

type TransactionFilter struct {
	ClientID       string
	ProfessionalID string
	Status         models.TransactionStatus
	Page           int
	Limit          int
}

type TransactionRepository interface {
	Create(tx *models.ServiceTransaction) error
	GetByID(id string) (*models.ServiceTransaction, error)
	Update(tx *models.ServiceTransaction) error
	List(filter TransactionFilter) ([]models.ServiceTransaction, int64, error)

	CreatePayment(payment *models.Payment) error
	GetPaymentByID(id string) (*models.Payment, error)
	GetPaymentByTransactionID(transactionID string) (*models.Payment, error)
	UpdatePayment(payment *models.Payment) error
	ListPayments(page, limit int, status models.PaymentStatus) ([]models.Payment, int64, error)
	ListPaymentsForUser(userID string, page, limit int, status models.PaymentStatus) ([]models.Payment, int64, error)
}

type TransactionRepositoryImpl struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

func (r *TransactionRepositoryImpl) Create(tx *models.ServiceTransaction) error {
	return r.db.Create(tx).Error
}

func (r *TransactionRepositoryImpl) GetByID(id string) (*models.ServiceTransaction, error) {
	var tx models.ServiceTransaction
	err := r.db.Preload("Payment").Preload("Posting").Preload("PromoCode").
		First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepositoryImpl) Update(tx *models.ServiceTransaction) error {
	return r.db.Save(tx).Error
}

func (r *TransactionRepositoryImpl) List(filter TransactionFilter) ([]models.ServiceTransaction, int64, error) {
	query := r.db.Model(&models.ServiceTransaction{})
	if filter.ClientID != "" {
		query = query.Where("client_id = ?", filter.ClientID)
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

	var txs []models.ServiceTransaction
	err := query.Preload("Payment").Preload("Posting").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&txs).Error
	return txs, total, err
}

func (r *TransactionRepositoryImpl) CreatePayment(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *TransactionRepositoryImpl) GetPaymentByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Preload("Transaction").First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *TransactionRepositoryImpl) GetPaymentByTransactionID(transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "transaction_id = ?", transactionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *TransactionRepositoryImpl) UpdatePayment(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

func (r *TransactionRepositoryImpl) ListPayments(page, limit int, status models.PaymentStatus) ([]models.Payment, int64, error) {
	query := r.db.Model(&models.Payment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []models.Payment
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error
	return payments, total, err
}

func (r *TransactionRepositoryImpl) ListPaymentsForUser(userID string, page, limit int, status models.PaymentStatus) ([]models.Payment, int64, error) {
	query := r.db.Model(&models.Payment{}).
		Joins("JOIN service_transactions ON service_transactions.id = payments.transaction_id").
		Where("service_transactions.client_id = ? OR service_transactions.professional_id = ?", userID, userID)
	if status != "" {
		query = query.Where("payments.status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []models.Payment
	err := query.Preload("Transaction").
		Order("payments.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error
	return payments, total, err
}
