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

type PaymentService interface {
	Get(userID string, role models.UserRole, id string) (*dto.PaymentResponse, error)
	List(status string, page, limit int) ([]dto.PaymentResponse, dto.Pagination, error)
	ListMine(userID string, status string, page, limit int) ([]dto.PaymentResponse, dto.Pagination, error)
	UpdateStatus(id string, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentResponse, error)
}

type paymentService struct {
	db     *gorm.DB
	txRepo repositories.TransactionRepository
}

func NewPaymentService(db *gorm.DB, txRepo repositories.TransactionRepository) PaymentService {
	return &paymentService{db: db, txRepo: txRepo}
}

func (s *paymentService) Get(userID string, role models.UserRole, id string) (*dto.PaymentResponse, error) {
	payment, err := s.getPayment(id)
	if err != nil {
		return nil, err
	}
	if role != models.UserRoleAdmin {
		if payment.Transaction == nil ||
			(payment.Transaction.ClientID != userID && payment.Transaction.ProfessionalID != userID) {
			return nil, apperrors.NewForbiddenError("Not a participant of this payment")
		}
	}

	resp := dto.NewPaymentResponse(payment)
	return &resp, nil
}

func (s *paymentService) List(status string, page, limit int) ([]dto.PaymentResponse, dto.Pagination, error) {
	page, limit = dto.NormalizePageLimit(page, limit)
	payments, total, err := s.txRepo.ListPayments(page, limit, models.PaymentStatus(status))
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewPaymentListResponse(payments), dto.NewPagination(page, limit, total), nil
}

func (s *paymentService) ListMine(userID string, status string, page, limit int) ([]dto.PaymentResponse, dto.Pagination, error) {
	page, limit = dto.NormalizePageLimit(page, limit)
	payments, total, err := s.txRepo.ListPaymentsForUser(userID, page, limit, models.PaymentStatus(status))
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewPaymentListResponse(payments), dto.NewPagination(page, limit, total), nil
}

// UpdateStatus is the admin override. Refunding a completed payment takes the
// amount back out of the professional's balance.
func (s *paymentService) UpdateStatus(id string, req *dto.UpdatePaymentStatusRequest) (*dto.PaymentResponse, error) {
	payment, err := s.getPayment(id)
	if err != nil {
		return nil, err
	}

	target := models.PaymentStatus(req.Status)
	if target == payment.Status {
		resp := dto.NewPaymentResponse(payment)
		return &resp, nil
	}
	if target == models.PaymentStatusRefunded && payment.Status != models.PaymentStatusCompleted {
		return nil, apperrors.NewConflictError("Only completed payments can be refunded")
	}

	err = s.db.Transaction(func(dbTx *gorm.DB) error {
		updates := map[string]interface{}{"status": target}
		if target == models.PaymentStatusCompleted && payment.PaidAt == nil {
			now := time.Now()
			updates["paid_at"] = &now
		}
		if err := dbTx.Model(&models.Payment{}).
			Where("id = ?", payment.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		if target == models.PaymentStatusRefunded && payment.Transaction != nil {
			return dbTx.Model(&models.User{}).
				Where("id = ?", payment.Transaction.ProfessionalID).
				UpdateColumn("balance", gorm.Expr("balance - ?", payment.Amount)).Error
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.Get("", models.UserRoleAdmin, id)
}

func (s *paymentService) getPayment(id string) (*models.Payment, error) {
	payment, err := s.txRepo.GetPaymentByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.NewNotFoundError("Payment not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return payment, nil
}
