package services

import (
	"errors"

	"servimarket_backend/internal/logger"
	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type PostingService interface {
	Create(clientID string, req *dto.CreatePostingRequest) (*dto.PostingResponse, error)
	Get(id string, countView bool) (*dto.PostingResponse, error)
	List(filter repositories.PostingFilter) ([]dto.PostingResponse, dto.Pagination, error)
	Update(clientID, id string, req *dto.UpdatePostingRequest) (*dto.PostingResponse, error)
	Delete(userID string, role models.UserRole, id string) error
}

type postingService struct {
	postingRepo    repositories.PostingRepository
	professionRepo repositories.ProfessionRepository
}

func NewPostingService(postingRepo repositories.PostingRepository, professionRepo repositories.ProfessionRepository) PostingService {
	return &postingService{
		postingRepo:    postingRepo,
		professionRepo: professionRepo,
	}
}

func (s *postingService) Create(clientID string, req *dto.CreatePostingRequest) (*dto.PostingResponse, error) {
	if _, err := s.professionRepo.GetByID(req.ProfessionID); err != nil {
		if errors.Is(err, repositories.ErrProfessionNotFound) {
			return nil, apperrors.NewNotFoundError("Profession not found")
		}
		return nil, apperrors.InternalError(err)
	}

	posting := &models.ServicePosting{
		ClientID:      clientID,
		ProfessionID:  req.ProfessionID,
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		BudgetMin:     req.BudgetMin,
		BudgetMax:     req.BudgetMax,
		PreferredDate: req.PreferredDate,
		Status:        models.PostingStatusOpen,
	}
	if err := s.postingRepo.Create(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.response(posting.ID)
}

func (s *postingService) Get(id string, countView bool) (*dto.PostingResponse, error) {
	posting, err := s.getPosting(id)
	if err != nil {
		return nil, err
	}

	if countView {
		if err := s.postingRepo.IncrementViews(id); err != nil {
			logger.WithError(err).Warn("view counter not incremented", "posting_id", id)
		} else {
			posting.Views++
		}
	}

	resp := dto.NewPostingResponse(posting)
	return &resp, nil
}

func (s *postingService) List(filter repositories.PostingFilter) ([]dto.PostingResponse, dto.Pagination, error) {
	filter.Page, filter.Limit = dto.NormalizePageLimit(filter.Page, filter.Limit)
	postings, total, err := s.postingRepo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewPostingListResponse(postings), dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *postingService) Update(clientID, id string, req *dto.UpdatePostingRequest) (*dto.PostingResponse, error) {
	posting, err := s.getPosting(id)
	if err != nil {
		return nil, err
	}
	if posting.ClientID != clientID {
		return nil, apperrors.NewForbiddenError("Only the owner can update this posting")
	}
	if posting.Status != models.PostingStatusOpen && req.Status == nil {
		return nil, apperrors.NewConflictError("Only open postings can be edited")
	}

	if req.Title != nil {
		posting.Title = *req.Title
	}
	if req.Description != nil {
		posting.Description = *req.Description
	}
	if req.City != nil {
		posting.City = *req.City
	}
	if req.BudgetMin != nil {
		posting.BudgetMin = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		posting.BudgetMax = *req.BudgetMax
	}
	if req.PreferredDate != nil {
		posting.PreferredDate = req.PreferredDate
	}
	if req.Status != nil {
		posting.Status = models.PostingStatus(*req.Status)
	}
	if posting.BudgetMax < posting.BudgetMin {
		return nil, apperrors.NewBadRequestError("budgetMax must be greater than or equal to budgetMin")
	}

	if err := s.postingRepo.Update(posting); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.response(posting.ID)
}

// Delete soft-deletes the posting. A posting with transactions stays for the
// transaction history. Admins may delete any posting.
func (s *postingService) Delete(userID string, role models.UserRole, id string) error {
	posting, err := s.getPosting(id)
	if err != nil {
		return err
	}
	if role != models.UserRoleAdmin && posting.ClientID != userID {
		return apperrors.NewForbiddenError("Only the owner can delete this posting")
	}

	count, err := s.postingRepo.CountTransactions(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count > 0 {
		return apperrors.NewValidationError("Posting has transactions and cannot be deleted")
	}

	if err := s.postingRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *postingService) response(id string) (*dto.PostingResponse, error) {
	posting, err := s.postingRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewPostingResponse(posting)
	return &resp, nil
}

func (s *postingService) getPosting(id string) (*models.ServicePosting, error) {
	posting, err := s.postingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPostingNotFound) {
			return nil, apperrors.NewNotFoundError("Service posting not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return posting, nil
}
