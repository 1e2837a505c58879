package services

import (
	"errors"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type OfferService interface {
	Create(professionalID string, req *dto.CreateOfferRequest) (*dto.OfferResponse, error)
	Update(professionalID, id string, req *dto.UpdateOfferRequest) (*dto.OfferResponse, error)
	Withdraw(professionalID, id string) error
	Get(userID string, role models.UserRole, id string) (*dto.OfferResponse, error)
	ListForPosting(clientID, postingID string, page, limit int) ([]dto.OfferResponse, dto.Pagination, error)
	ListMine(professionalID string, status string, page, limit int) ([]dto.OfferResponse, dto.Pagination, error)
	Accept(clientID, id string) (*dto.AcceptOfferResponse, error)
	Reject(clientID, id string) (*dto.OfferResponse, error)
}

type offerService struct {
	db          *gorm.DB
	offerRepo   repositories.OfferRepository
	postingRepo repositories.PostingRepository
	txRepo      repositories.TransactionRepository
}

func NewOfferService(db *gorm.DB, offerRepo repositories.OfferRepository, postingRepo repositories.PostingRepository, txRepo repositories.TransactionRepository) OfferService {
	return &offerService{
		db:          db,
		offerRepo:   offerRepo,
		postingRepo: postingRepo,
		txRepo:      txRepo,
	}
}

func (s *offerService) Create(professionalID string, req *dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	posting, err := s.postingRepo.GetByID(req.PostingID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostingNotFound) {
			return nil, apperrors.NewNotFoundError("Service posting not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if posting.Status != models.PostingStatusOpen {
		return nil, apperrors.NewConflictError("Posting is not open for offers")
	}
	if posting.ClientID == professionalID {
		return nil, apperrors.NewForbiddenError("Cannot offer on your own posting")
	}

	if _, err := s.offerRepo.GetByPostingAndProfessional(req.PostingID, professionalID); err == nil {
		return nil, apperrors.NewConflictError("You already made an offer on this posting")
	} else if !errors.Is(err, repositories.ErrOfferNotFound) {
		return nil, apperrors.InternalError(err)
	}

	offer := &models.Offer{
		PostingID:      req.PostingID,
		ProfessionalID: professionalID,
		Amount:         req.Amount,
		Message:        req.Message,
		EstimatedDays:  req.EstimatedDays,
		Status:         models.OfferStatusPending,
	}
	if err := s.offerRepo.Create(offer); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewOfferResponse(offer)
	return &resp, nil
}

func (s *offerService) Update(professionalID, id string, req *dto.UpdateOfferRequest) (*dto.OfferResponse, error) {
	offer, err := s.getOffer(id)
	if err != nil {
		return nil, err
	}
	if offer.ProfessionalID != professionalID {
		return nil, apperrors.NewForbiddenError("Cannot update another professional's offer")
	}
	if offer.Status != models.OfferStatusPending {
		return nil, apperrors.NewConflictError("Only pending offers can be updated")
	}

	if req.Amount != nil {
		offer.Amount = *req.Amount
	}
	if req.Message != nil {
		offer.Message = *req.Message
	}
	if req.EstimatedDays != nil {
		offer.EstimatedDays = *req.EstimatedDays
	}
	if err := s.offerRepo.Update(offer); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewOfferResponse(offer)
	return &resp, nil
}

func (s *offerService) Withdraw(professionalID, id string) error {
	offer, err := s.getOffer(id)
	if err != nil {
		return err
	}
	if offer.ProfessionalID != professionalID {
		return apperrors.NewForbiddenError("Cannot withdraw another professional's offer")
	}
	if offer.Status != models.OfferStatusPending {
		return apperrors.NewConflictError("Only pending offers can be withdrawn")
	}

	if err := s.offerRepo.Delete(offer.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *offerService) Get(userID string, role models.UserRole, id string) (*dto.OfferResponse, error) {
	offer, err := s.getOffer(id)
	if err != nil {
		return nil, err
	}
	if role != models.UserRoleAdmin && offer.ProfessionalID != userID &&
		(offer.Posting == nil || offer.Posting.ClientID != userID) {
		return nil, apperrors.NewForbiddenError("Not a participant of this offer")
	}

	resp := dto.NewOfferResponse(offer)
	return &resp, nil
}

func (s *offerService) ListForPosting(clientID, postingID string, page, limit int) ([]dto.OfferResponse, dto.Pagination, error) {
	posting, err := s.postingRepo.GetByID(postingID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostingNotFound) {
			return nil, dto.Pagination{}, apperrors.NewNotFoundError("Service posting not found")
		}
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	if posting.ClientID != clientID {
		return nil, dto.Pagination{}, apperrors.NewForbiddenError("Only the posting owner can list its offers")
	}

	page, limit = dto.NormalizePageLimit(page, limit)
	offers, total, err := s.offerRepo.List(repositories.OfferFilter{PostingID: postingID, Page: page, Limit: limit})
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewOfferListResponse(offers), dto.NewPagination(page, limit, total), nil
}

func (s *offerService) ListMine(professionalID string, status string, page, limit int) ([]dto.OfferResponse, dto.Pagination, error) {
	page, limit = dto.NormalizePageLimit(page, limit)
	offers, total, err := s.offerRepo.List(repositories.OfferFilter{
		ProfessionalID: professionalID,
		Status:         models.OfferStatus(status),
		Page:           page,
		Limit:          limit,
	})
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewOfferListResponse(offers), dto.NewPagination(page, limit, total), nil
}

// Accept runs the whole handshake in one database transaction: the offer is
// accepted, sibling offers are rejected, the posting closes, and the service
// transaction with its pending payment is created. Either everything lands or
// nothing does.
func (s *offerService) Accept(clientID, id string) (*dto.AcceptOfferResponse, error) {
	offer, err := s.getOffer(id)
	if err != nil {
		return nil, err
	}
	if offer.Posting == nil || offer.Posting.ClientID != clientID {
		return nil, apperrors.NewForbiddenError("Only the posting owner can accept offers")
	}
	if offer.Status != models.OfferStatusPending {
		return nil, apperrors.NewConflictError("Offer is not pending")
	}
	if offer.Posting.Status != models.PostingStatusOpen {
		return nil, apperrors.NewConflictError("Posting is not open")
	}

	var created models.ServiceTransaction
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Re-check under the transaction so two concurrent accepts on the
		// same posting cannot both pass.
		res := tx.Model(&models.Offer{}).
			Where("id = ? AND status = ?", offer.ID, models.OfferStatusPending).
			Update("status", models.OfferStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.NewConflictError("Offer is not pending")
		}

		if err := tx.Model(&models.Offer{}).
			Where("posting_id = ? AND id <> ? AND status = ?", offer.PostingID, offer.ID, models.OfferStatusPending).
			Update("status", models.OfferStatusRejected).Error; err != nil {
			return err
		}

		res = tx.Model(&models.ServicePosting{}).
			Where("id = ? AND status = ?", offer.PostingID, models.PostingStatusOpen).
			Update("status", models.PostingStatusClosed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.NewConflictError("Posting is not open")
		}

		created = models.ServiceTransaction{
			PostingID:      &offer.PostingID,
			OfferID:        offer.ID,
			ClientID:       clientID,
			ProfessionalID: offer.ProfessionalID,
			Amount:         offer.Amount,
			FinalAmount:    offer.Amount,
			Status:         models.TransactionStatusPending,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		payment := models.Payment{
			TransactionID: created.ID,
			Amount:        offer.Amount,
			Status:        models.PaymentStatusPending,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	full, err := s.txRepo.GetByID(created.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	offer.Status = models.OfferStatusAccepted

	return &dto.AcceptOfferResponse{
		Offer:       dto.NewOfferResponse(offer),
		Transaction: dto.NewTransactionResponse(full),
	}, nil
}

func (s *offerService) Reject(clientID, id string) (*dto.OfferResponse, error) {
	offer, err := s.getOffer(id)
	if err != nil {
		return nil, err
	}
	if offer.Posting == nil || offer.Posting.ClientID != clientID {
		return nil, apperrors.NewForbiddenError("Only the posting owner can reject offers")
	}
	if offer.Status != models.OfferStatusPending {
		return nil, apperrors.NewConflictError("Offer is not pending")
	}

	offer.Status = models.OfferStatusRejected
	if err := s.offerRepo.Update(offer); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewOfferResponse(offer)
	return &resp, nil
}

func (s *offerService) getOffer(id string) (*models.Offer, error) {
	offer, err := s.offerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferNotFound) {
			return nil, apperrors.NewNotFoundError("Offer not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return offer, nil
}
