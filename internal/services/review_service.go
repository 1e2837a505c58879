package services

import (
	"errors"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Get(id string) (*dto.ReviewResponse, error)
	ListForUser(revieweeID string, page, limit int) ([]dto.ReviewResponse, dto.Pagination, error)
	ListForTransaction(userID string, role models.UserRole, transactionID string) ([]dto.ReviewResponse, error)

	ListAll(page, limit int) ([]dto.ReviewResponse, dto.Pagination, error)
	Delete(id string) error
}

type reviewService struct {
	db         *gorm.DB
	reviewRepo repositories.ReviewRepository
	txRepo     repositories.TransactionRepository
}

func NewReviewService(db *gorm.DB, reviewRepo repositories.ReviewRepository, txRepo repositories.TransactionRepository) ReviewService {
	return &reviewService{
		db:         db,
		reviewRepo: reviewRepo,
		txRepo:     txRepo,
	}
}

// Create allows one review per participant per completed transaction. The
// duplicate check and insert run in the same database transaction, and the
// reviewee's cached rating is refreshed from the same snapshot.
func (s *reviewService) Create(reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	tx, err := s.txRepo.GetByID(req.TransactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.NewNotFoundError("Transaction not found")
		}
		return nil, apperrors.InternalError(err)
	}

	var revieweeID string
	switch reviewerID {
	case tx.ClientID:
		revieweeID = tx.ProfessionalID
	case tx.ProfessionalID:
		revieweeID = tx.ClientID
	default:
		return nil, apperrors.NewForbiddenError("Only transaction participants can leave a review")
	}
	if tx.Status != models.TransactionStatusCompleted {
		return nil, apperrors.NewConflictError("Only completed transactions can be reviewed")
	}

	review := &models.Review{
		TransactionID: tx.ID,
		ReviewerID:    reviewerID,
		RevieweeID:    revieweeID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	err = s.db.Transaction(func(dbTx *gorm.DB) error {
		if _, err := s.reviewRepo.GetByTransactionAndReviewer(dbTx, tx.ID, reviewerID); err == nil {
			return apperrors.NewConflictError("You already reviewed this transaction")
		} else if !errors.Is(err, repositories.ErrReviewNotFound) {
			return err
		}

		if err := s.reviewRepo.Create(dbTx, review); err != nil {
			return err
		}
		return s.refreshProfileRating(dbTx, revieweeID)
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	return s.Get(review.ID)
}

func (s *reviewService) Get(id string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.NewNotFoundError("Review not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) ListForUser(revieweeID string, page, limit int) ([]dto.ReviewResponse, dto.Pagination, error) {
	page, limit = dto.NormalizePageLimit(page, limit)
	reviews, total, err := s.reviewRepo.ListForUser(revieweeID, page, limit)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewReviewListResponse(reviews), dto.NewPagination(page, limit, total), nil
}

func (s *reviewService) ListForTransaction(userID string, role models.UserRole, transactionID string) ([]dto.ReviewResponse, error) {
	tx, err := s.txRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.NewNotFoundError("Transaction not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if role != models.UserRoleAdmin && tx.ClientID != userID && tx.ProfessionalID != userID {
		return nil, apperrors.NewForbiddenError("Not a participant of this transaction")
	}

	reviews, err := s.reviewRepo.ListForTransaction(transactionID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewListResponse(reviews), nil
}

func (s *reviewService) ListAll(page, limit int) ([]dto.ReviewResponse, dto.Pagination, error) {
	page, limit = dto.NormalizePageLimit(page, limit)
	reviews, total, err := s.reviewRepo.ListAll(page, limit)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewReviewListResponse(reviews), dto.NewPagination(page, limit, total), nil
}

// Delete removes a review and refreshes the reviewee's cached rating from the
// remaining ones.
func (s *reviewService) Delete(id string) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.NewNotFoundError("Review not found")
		}
		return apperrors.InternalError(err)
	}

	err = s.db.Transaction(func(dbTx *gorm.DB) error {
		if err := s.reviewRepo.Delete(dbTx, review.ID); err != nil {
			return err
		}
		return s.refreshProfileRating(dbTx, review.RevieweeID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *reviewService) refreshProfileRating(dbTx *gorm.DB, revieweeID string) error {
	avg, count, err := s.reviewRepo.AggregateForUser(dbTx, revieweeID)
	if err != nil {
		return err
	}
	// Clients have no professional profile; nothing to refresh then.
	return dbTx.Model(&models.ProfessionalProfile{}).
		Where("user_id = ?", revieweeID).
		Updates(map[string]interface{}{
			"rating":       avg,
			"review_count": count,
		}).Error
}
