package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type TransactionService interface {
	Get(userID string, role models.UserRole, id string) (*dto.TransactionResponse, error)
	ListMine(userID string, role models.UserRole, status string, page, limit int) ([]dto.TransactionResponse, dto.Pagination, error)
	UpdateStatus(userID string, id string, req *dto.UpdateTransactionStatusRequest) (*dto.TransactionResponse, error)
	ApplyPromo(userID string, id string, req *dto.ApplyPromoRequest) (*dto.TransactionResponse, error)
}

type transactionService struct {
	db        *gorm.DB
	txRepo    repositories.TransactionRepository
	promoRepo repositories.PromoRepository
	userRepo  repositories.UserRepository
}

func NewTransactionService(db *gorm.DB, txRepo repositories.TransactionRepository, promoRepo repositories.PromoRepository, userRepo repositories.UserRepository) TransactionService {
	return &transactionService{
		db:        db,
		txRepo:    txRepo,
		promoRepo: promoRepo,
		userRepo:  userRepo,
	}
}

func (s *transactionService) Get(userID string, role models.UserRole, id string) (*dto.TransactionResponse, error) {
	tx, err := s.getTransaction(id)
	if err != nil {
		return nil, err
	}
	if role != models.UserRoleAdmin && tx.ClientID != userID && tx.ProfessionalID != userID {
		return nil, apperrors.NewForbiddenError("Not a participant of this transaction")
	}

	resp := dto.NewTransactionResponse(tx)
	return &resp, nil
}

func (s *transactionService) ListMine(userID string, role models.UserRole, status string, page, limit int) ([]dto.TransactionResponse, dto.Pagination, error) {
	page, limit = dto.NormalizePageLimit(page, limit)
	filter := repositories.TransactionFilter{
		Status: models.TransactionStatus(status),
		Page:   page,
		Limit:  limit,
	}
	if role == models.UserRoleProfessional {
		filter.ProfessionalID = userID
	} else {
		filter.ClientID = userID
	}

	txs, total, err := s.txRepo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewTransactionListResponse(txs), dto.NewPagination(page, limit, total), nil
}

var transactionTransitions = map[models.TransactionStatus][]models.TransactionStatus{
	models.TransactionStatusPending:    {models.TransactionStatusInProgress, models.TransactionStatusCancelled},
	models.TransactionStatusInProgress: {models.TransactionStatusCompleted, models.TransactionStatusCancelled},
}

// UpdateStatus moves the transaction along its lifecycle. Completion settles
// the payment and credits the professional's balance in the same database
// transaction.
func (s *transactionService) UpdateStatus(userID string, id string, req *dto.UpdateTransactionStatusRequest) (*dto.TransactionResponse, error) {
	tx, err := s.getTransaction(id)
	if err != nil {
		return nil, err
	}
	if tx.ClientID != userID && tx.ProfessionalID != userID {
		return nil, apperrors.NewForbiddenError("Not a participant of this transaction")
	}

	target := models.TransactionStatus(req.Status)
	if !transitionAllowed(tx.Status, target) {
		return nil, apperrors.NewConflictError("Invalid status transition")
	}

	err = s.db.Transaction(func(dbTx *gorm.DB) error {
		res := dbTx.Model(&models.ServiceTransaction{}).
			Where("id = ? AND status = ?", tx.ID, tx.Status).
			Update("status", target)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.NewConflictError("Invalid status transition")
		}

		switch target {
		case models.TransactionStatusCompleted:
			now := time.Now()
			if err := dbTx.Model(&models.Payment{}).
				Where("transaction_id = ?", tx.ID).
				Updates(map[string]interface{}{
					"status":  models.PaymentStatusCompleted,
					"paid_at": &now,
				}).Error; err != nil {
				return err
			}
			return dbTx.Model(&models.User{}).
				Where("id = ?", tx.ProfessionalID).
				UpdateColumn("balance", gorm.Expr("balance + ?", tx.FinalAmount)).Error
		case models.TransactionStatusCancelled:
			return dbTx.Model(&models.Payment{}).
				Where("transaction_id = ? AND status = ?", tx.ID, models.PaymentStatusPending).
				Update("status", models.PaymentStatusFailed).Error
		}
		return nil
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	return s.response(id)
}

// ApplyPromo attaches a promo code to a pending or in-progress transaction.
// The usage increment is guarded so the last use of a code cannot be applied
// twice.
func (s *transactionService) ApplyPromo(userID string, id string, req *dto.ApplyPromoRequest) (*dto.TransactionResponse, error) {
	tx, err := s.getTransaction(id)
	if err != nil {
		return nil, err
	}
	if tx.ClientID != userID {
		return nil, apperrors.NewForbiddenError("Only the client can apply a promo code")
	}
	if tx.Status != models.TransactionStatusPending && tx.Status != models.TransactionStatusInProgress {
		return nil, apperrors.NewConflictError("Promo codes can only be applied before completion")
	}
	if tx.PromoCodeID != nil {
		return nil, apperrors.NewConflictError("A promo code was already applied to this transaction")
	}

	promo, err := s.promoRepo.GetByCode(req.Code)
	if err != nil {
		if errors.Is(err, repositories.ErrPromoCodeNotFound) {
			return nil, apperrors.NewNotFoundError("Promo code not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !promoUsable(promo, time.Now()) {
		return nil, apperrors.NewValidationError("Promo code is not valid")
	}

	discount := promoDiscount(promo, tx.Amount)
	finalAmount := tx.Amount - discount
	if finalAmount < 0 {
		finalAmount = 0
	}

	err = s.db.Transaction(func(dbTx *gorm.DB) error {
		if err := s.promoRepo.IncrementUses(dbTx, promo.ID); err != nil {
			if errors.Is(err, repositories.ErrPromoCodeExhausted) {
				return apperrors.NewValidationError("Promo code has no uses left")
			}
			return err
		}

		usage := &models.PromoCodeUsage{
			PromoCodeID:   promo.ID,
			UserID:        userID,
			TransactionID: tx.ID,
			Discount:      discount,
		}
		if err := s.promoRepo.CreateUsage(dbTx, usage); err != nil {
			return err
		}

		if err := dbTx.Model(&models.ServiceTransaction{}).
			Where("id = ?", tx.ID).
			Updates(map[string]interface{}{
				"promo_code_id": promo.ID,
				"final_amount":  finalAmount,
			}).Error; err != nil {
			return err
		}

		return dbTx.Model(&models.Payment{}).
			Where("transaction_id = ?", tx.ID).
			Update("amount", finalAmount).Error
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	return s.response(id)
}

func transitionAllowed(from, to models.TransactionStatus) bool {
	for _, allowed := range transactionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func promoUsable(promo *models.PromoCode, now time.Time) bool {
	if !promo.IsActive {
		return false
	}
	if now.Before(promo.ValidFrom) || now.After(promo.ValidUntil) {
		return false
	}
	return promo.UsesCount < promo.MaxUses
}

func promoDiscount(promo *models.PromoCode, amount float64) float64 {
	if promo.DiscountType == models.DiscountTypePercentage {
		return amount * promo.Value / 100
	}
	return promo.Value
}

func (s *transactionService) response(id string) (*dto.TransactionResponse, error) {
	tx, err := s.txRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewTransactionResponse(tx)
	return &resp, nil
}

func (s *transactionService) getTransaction(id string) (*models.ServiceTransaction, error) {
	tx, err := s.txRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.NewNotFoundError("Transaction not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return tx, nil
}
