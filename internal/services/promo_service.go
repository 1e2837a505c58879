package services

import (
	"errors"
	"strings"
	"time"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type PromoService interface {
	Create(req *dto.CreatePromoCodeRequest) (*dto.PromoCodeResponse, error)
	Get(id string) (*dto.PromoCodeResponse, error)
	List(filter repositories.PromoFilter) ([]dto.PromoCodeResponse, dto.Pagination, error)
	Update(id string, req *dto.UpdatePromoCodeRequest) (*dto.PromoCodeResponse, error)
	Delete(id string) error
	Validate(code string) (*dto.PromoValidationResponse, error)
}

type promoService struct {
	promoRepo repositories.PromoRepository
}

func NewPromoService(promoRepo repositories.PromoRepository) PromoService {
	return &promoService{promoRepo: promoRepo}
}

func (s *promoService) Create(req *dto.CreatePromoCodeRequest) (*dto.PromoCodeResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if _, err := s.promoRepo.GetByCode(code); err == nil {
		return nil, apperrors.NewConflictError("Promo code already exists")
	} else if !errors.Is(err, repositories.ErrPromoCodeNotFound) {
		return nil, apperrors.InternalError(err)
	}

	promo := &models.PromoCode{
		Code:         code,
		Description:  req.Description,
		DiscountType: models.DiscountType(req.DiscountType),
		Value:        req.Value,
		MaxUses:      req.MaxUses,
		ValidFrom:    req.ValidFrom,
		ValidUntil:   req.ValidUntil,
		IsActive:     true,
	}
	if promo.DiscountType == models.DiscountTypePercentage && promo.Value > 100 {
		return nil, apperrors.NewBadRequestError("Percentage discount cannot exceed 100")
	}

	if err := s.promoRepo.Create(promo); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewPromoCodeResponse(promo)
	return &resp, nil
}

func (s *promoService) Get(id string) (*dto.PromoCodeResponse, error) {
	promo, err := s.getPromo(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewPromoCodeResponse(promo)
	return &resp, nil
}

func (s *promoService) List(filter repositories.PromoFilter) ([]dto.PromoCodeResponse, dto.Pagination, error) {
	filter.Page, filter.Limit = dto.NormalizePageLimit(filter.Page, filter.Limit)
	codes, total, err := s.promoRepo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewPromoCodeListResponse(codes), dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *promoService) Update(id string, req *dto.UpdatePromoCodeRequest) (*dto.PromoCodeResponse, error) {
	promo, err := s.getPromo(id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		promo.Description = *req.Description
	}
	if req.Value != nil {
		promo.Value = *req.Value
	}
	if req.MaxUses != nil {
		if *req.MaxUses < promo.UsesCount {
			return nil, apperrors.NewBadRequestError("maxUses cannot be lower than current uses")
		}
		promo.MaxUses = *req.MaxUses
	}
	if req.ValidUntil != nil {
		promo.ValidUntil = *req.ValidUntil
	}
	if req.IsActive != nil {
		promo.IsActive = *req.IsActive
	}
	if promo.DiscountType == models.DiscountTypePercentage && promo.Value > 100 {
		return nil, apperrors.NewBadRequestError("Percentage discount cannot exceed 100")
	}

	if err := s.promoRepo.Update(promo); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewPromoCodeResponse(promo)
	return &resp, nil
}

// Delete refuses once the code has been used; the usage ledger must keep its
// reference.
func (s *promoService) Delete(id string) error {
	if _, err := s.getPromo(id); err != nil {
		return err
	}

	usages, err := s.promoRepo.CountUsages(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if usages > 0 {
		return apperrors.NewValidationError("Promo code has been used and cannot be deleted")
	}

	if err := s.promoRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *promoService) Validate(code string) (*dto.PromoValidationResponse, error) {
	promo, err := s.promoRepo.GetByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, repositories.ErrPromoCodeNotFound) {
			return &dto.PromoValidationResponse{Valid: false, Code: code}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	if !promoUsable(promo, time.Now()) {
		return &dto.PromoValidationResponse{Valid: false, Code: promo.Code}, nil
	}
	return &dto.PromoValidationResponse{
		Valid:        true,
		Code:         promo.Code,
		DiscountType: string(promo.DiscountType),
		Value:        promo.Value,
	}, nil
}

func (s *promoService) getPromo(id string) (*models.PromoCode, error) {
	promo, err := s.promoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPromoCodeNotFound) {
			return nil, apperrors.NewNotFoundError("Promo code not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return promo, nil
}
