package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"servimarket_backend/internal/email"
	"servimarket_backend/internal/logger"
	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type WithdrawalService interface {
	Create(userID string, req *dto.CreateWithdrawalRequest) (*dto.WithdrawalResponse, error)
	Get(userID string, role models.UserRole, id string) (*dto.WithdrawalResponse, error)
	ListMine(userID string, status string, page, limit int) ([]dto.WithdrawalResponse, dto.Pagination, error)
	ListAll(status string, page, limit int) ([]dto.WithdrawalResponse, dto.Pagination, error)
	UpdateStatus(id string, req *dto.UpdateWithdrawalStatusRequest) (*dto.WithdrawalResponse, error)
}

type withdrawalService struct {
	db             *gorm.DB
	withdrawalRepo repositories.WithdrawalRepository
	userRepo       repositories.UserRepository
	emailProvider  email.Provider
}

func NewWithdrawalService(db *gorm.DB, withdrawalRepo repositories.WithdrawalRepository, userRepo repositories.UserRepository, emailProvider email.Provider) WithdrawalService {
	return &withdrawalService{
		db:             db,
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
		emailProvider:  emailProvider,
	}
}

// Create debits the balance immediately so the funds cannot be withdrawn
// twice while the request waits for an admin. The debit is guarded against
// the current balance inside the transaction.
func (s *withdrawalService) Create(userID string, req *dto.CreateWithdrawalRequest) (*dto.WithdrawalResponse, error) {
	var withdrawal models.Withdrawal
	err := s.db.Transaction(func(dbTx *gorm.DB) error {
		res := dbTx.Model(&models.User{}).
			Where("id = ? AND balance >= ?", userID, req.Amount).
			UpdateColumn("balance", gorm.Expr("balance - ?", req.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInsufficientBalance
		}

		withdrawal = models.Withdrawal{
			UserID:         userID,
			Amount:         req.Amount,
			Method:         req.Method,
			AccountDetails: req.AccountDetails,
			Status:         models.WithdrawalStatusPending,
		}
		return dbTx.Create(&withdrawal).Error
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewWithdrawalResponse(&withdrawal)
	return &resp, nil
}

func (s *withdrawalService) Get(userID string, role models.UserRole, id string) (*dto.WithdrawalResponse, error) {
	withdrawal, err := s.getWithdrawal(id)
	if err != nil {
		return nil, err
	}
	if role != models.UserRoleAdmin && withdrawal.UserID != userID {
		return nil, apperrors.NewForbiddenError("Not your withdrawal")
	}

	resp := dto.NewWithdrawalResponse(withdrawal)
	return &resp, nil
}

func (s *withdrawalService) ListMine(userID string, status string, page, limit int) ([]dto.WithdrawalResponse, dto.Pagination, error) {
	return s.list(repositories.WithdrawalFilter{UserID: userID, Status: models.WithdrawalStatus(status)}, page, limit)
}

func (s *withdrawalService) ListAll(status string, page, limit int) ([]dto.WithdrawalResponse, dto.Pagination, error) {
	return s.list(repositories.WithdrawalFilter{Status: models.WithdrawalStatus(status)}, page, limit)
}

func (s *withdrawalService) list(filter repositories.WithdrawalFilter, page, limit int) ([]dto.WithdrawalResponse, dto.Pagination, error) {
	filter.Page, filter.Limit = dto.NormalizePageLimit(page, limit)
	withdrawals, total, err := s.withdrawalRepo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewWithdrawalListResponse(withdrawals), dto.NewPagination(filter.Page, filter.Limit, total), nil
}

// UpdateStatus is the admin review step. Admins move a withdrawal to any
// status; the held amount follows the REJECTED boundary. Crossing into
// REJECTED refunds the user's balance, crossing back out debits it again.
func (s *withdrawalService) UpdateStatus(id string, req *dto.UpdateWithdrawalStatusRequest) (*dto.WithdrawalResponse, error) {
	withdrawal, err := s.getWithdrawal(id)
	if err != nil {
		return nil, err
	}

	target := models.WithdrawalStatus(req.Status)
	err = s.db.Transaction(func(dbTx *gorm.DB) error {
		now := time.Now()
		updates := map[string]interface{}{
			"status":           target,
			"admin_notes":      req.AdminNotes,
			"processed_at":     nil,
			"rejection_reason": "",
		}
		if target == models.WithdrawalStatusCompleted || target == models.WithdrawalStatusRejected {
			updates["processed_at"] = &now
		}
		if target == models.WithdrawalStatusRejected {
			updates["rejection_reason"] = req.RejectionReason
		}
		if err := dbTx.Model(&models.Withdrawal{}).
			Where("id = ?", withdrawal.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		wasRejected := withdrawal.Status == models.WithdrawalStatusRejected
		if target == models.WithdrawalStatusRejected && !wasRejected {
			return dbTx.Model(&models.User{}).
				Where("id = ?", withdrawal.UserID).
				UpdateColumn("balance", gorm.Expr("balance + ?", withdrawal.Amount)).Error
		}
		if target != models.WithdrawalStatusRejected && wasRejected {
			// Re-holding the amount after a rejection needs the funds to
			// still be there.
			res := dbTx.Model(&models.User{}).
				Where("id = ? AND balance >= ?", withdrawal.UserID, withdrawal.Amount).
				UpdateColumn("balance", gorm.Expr("balance - ?", withdrawal.Amount))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperrors.ErrInsufficientBalance
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	if user, uErr := s.userRepo.GetByID(withdrawal.UserID); uErr == nil {
		if mErr := s.emailProvider.SendWithdrawalProcessedEmail(user.Email, user.Name, withdrawal.Amount, string(target)); mErr != nil {
			logger.WithError(mErr).Warn("withdrawal email not sent", "withdrawal_id", withdrawal.ID)
		}
	}

	updated, err := s.getWithdrawal(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewWithdrawalResponse(updated)
	return &resp, nil
}

func (s *withdrawalService) getWithdrawal(id string) (*models.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrWithdrawalNotFound) {
			return nil, apperrors.NewNotFoundError("Withdrawal not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return withdrawal, nil
}
