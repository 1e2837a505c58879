package services

import (
	"errors"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type ProfessionService interface {
	Create(req *dto.CreateProfessionRequest) (*dto.ProfessionResponse, error)
	Get(id string) (*dto.ProfessionResponse, error)
	List(filter repositories.ProfessionFilter) ([]dto.ProfessionResponse, dto.Pagination, error)
	Update(id string, req *dto.UpdateProfessionRequest) (*dto.ProfessionResponse, error)
	Delete(id string) error
}

type professionService struct {
	professionRepo repositories.ProfessionRepository
}

func NewProfessionService(professionRepo repositories.ProfessionRepository) ProfessionService {
	return &professionService{professionRepo: professionRepo}
}

func (s *professionService) Create(req *dto.CreateProfessionRequest) (*dto.ProfessionResponse, error) {
	if _, err := s.professionRepo.GetByName(req.Name); err == nil {
		return nil, apperrors.NewConflictError("Profession already exists")
	} else if !errors.Is(err, repositories.ErrProfessionNotFound) {
		return nil, apperrors.InternalError(err)
	}

	profession := &models.Profession{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := s.professionRepo.Create(profession); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProfessionResponse(profession)
	return &resp, nil
}

func (s *professionService) Get(id string) (*dto.ProfessionResponse, error) {
	profession, err := s.getProfession(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewProfessionResponse(profession)
	return &resp, nil
}

func (s *professionService) List(filter repositories.ProfessionFilter) ([]dto.ProfessionResponse, dto.Pagination, error) {
	filter.Page, filter.Limit = dto.NormalizePageLimit(filter.Page, filter.Limit)
	professions, total, err := s.professionRepo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	out := make([]dto.ProfessionResponse, 0, len(professions))
	for i := range professions {
		out = append(out, dto.NewProfessionResponse(&professions[i]))
	}
	return out, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *professionService) Update(id string, req *dto.UpdateProfessionRequest) (*dto.ProfessionResponse, error) {
	profession, err := s.getProfession(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != profession.Name {
		if _, err := s.professionRepo.GetByName(*req.Name); err == nil {
			return nil, apperrors.NewConflictError("Profession already exists")
		} else if !errors.Is(err, repositories.ErrProfessionNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profession.Name = *req.Name
	}
	if req.Description != nil {
		profession.Description = *req.Description
	}
	if req.Category != nil {
		profession.Category = *req.Category
	}
	if err := s.professionRepo.Update(profession); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProfessionResponse(profession)
	return &resp, nil
}

// Delete refuses while professionals or postings still reference the
// profession.
func (s *professionService) Delete(id string) error {
	if _, err := s.getProfession(id); err != nil {
		return err
	}

	links, err := s.professionRepo.CountLinks(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	postings, err := s.professionRepo.CountPostings(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if links > 0 || postings > 0 {
		return apperrors.NewValidationError("Profession is in use and cannot be deleted")
	}

	if err := s.professionRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *professionService) getProfession(id string) (*models.Profession, error) {
	profession, err := s.professionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfessionNotFound) {
			return nil, apperrors.NewNotFoundError("Profession not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profession, nil
}
