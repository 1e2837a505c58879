package services

import (
	"encoding/json"
	"errors"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type ProfessionalService interface {
	GetMyProfile(userID string) (*dto.ProfileResponse, error)
	UpdateMyProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	GetProfileByUserID(userID string) (*dto.ProfileResponse, error)
	List(filter repositories.ProfileFilter) ([]dto.ProfileResponse, dto.Pagination, error)

	AddProfession(userID string, req *dto.AddProfessionRequest) (*dto.ProfessionLinkResponse, error)
	RemoveProfession(userID, linkID string) error
	VerifyLink(linkID string) (*dto.ProfessionLinkResponse, error)
}

type professionalService struct {
	professionalRepo repositories.ProfessionalRepository
	professionRepo   repositories.ProfessionRepository
}

func NewProfessionalService(professionalRepo repositories.ProfessionalRepository, professionRepo repositories.ProfessionRepository) ProfessionalService {
	return &professionalService{
		professionalRepo: professionalRepo,
		professionRepo:   professionRepo,
	}
}

func (s *professionalService) GetMyProfile(userID string) (*dto.ProfileResponse, error) {
	return s.GetProfileByUserID(userID)
}

func (s *professionalService) GetProfileByUserID(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.getProfile(userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *professionalService) List(filter repositories.ProfileFilter) ([]dto.ProfileResponse, dto.Pagination, error) {
	filter.Page, filter.Limit = dto.NormalizePageLimit(filter.Page, filter.Limit)
	profiles, total, err := s.professionalRepo.ListProfiles(filter)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	out := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, dto.NewProfileResponse(&profiles[i]))
	}
	return out, dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *professionalService) UpdateMyProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.getProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.YearsExperience != nil {
		profile.YearsExperience = *req.YearsExperience
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = *req.HourlyRate
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Certifications != nil {
		raw, _ := json.Marshal(req.Certifications)
		profile.Certifications = raw
	}
	if req.Portfolio != nil {
		raw, _ := json.Marshal(req.Portfolio)
		profile.Portfolio = raw
	}

	if err := s.professionalRepo.UpdateProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *professionalService) AddProfession(userID string, req *dto.AddProfessionRequest) (*dto.ProfessionLinkResponse, error) {
	profile, err := s.getProfile(userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.professionRepo.GetByID(req.ProfessionID); err != nil {
		if errors.Is(err, repositories.ErrProfessionNotFound) {
			return nil, apperrors.NewNotFoundError("Profession not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.professionalRepo.GetLinkByPair(profile.ID, req.ProfessionID); err == nil {
		return nil, apperrors.NewConflictError("Profession already added")
	} else if !errors.Is(err, repositories.ErrLinkNotFound) {
		return nil, apperrors.InternalError(err)
	}

	link := &models.ProfessionLink{
		ProfessionalID: profile.ID,
		ProfessionID:   req.ProfessionID,
	}
	if err := s.professionalRepo.CreateLink(link); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.linkResponse(link.ID)
}

func (s *professionalService) RemoveProfession(userID, linkID string) error {
	profile, err := s.getProfile(userID)
	if err != nil {
		return err
	}

	link, err := s.professionalRepo.GetLink(linkID)
	if err != nil {
		if errors.Is(err, repositories.ErrLinkNotFound) {
			return apperrors.NewNotFoundError("Profession link not found")
		}
		return apperrors.InternalError(err)
	}
	if link.ProfessionalID != profile.ID {
		return apperrors.NewForbiddenError("Cannot remove another professional's link")
	}

	if err := s.professionalRepo.DeleteLink(linkID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *professionalService) VerifyLink(linkID string) (*dto.ProfessionLinkResponse, error) {
	link, err := s.professionalRepo.GetLink(linkID)
	if err != nil {
		if errors.Is(err, repositories.ErrLinkNotFound) {
			return nil, apperrors.NewNotFoundError("Profession link not found")
		}
		return nil, apperrors.InternalError(err)
	}

	link.Verified = true
	if err := s.professionalRepo.UpdateLink(link); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.linkResponse(link.ID)
}

func (s *professionalService) linkResponse(linkID string) (*dto.ProfessionLinkResponse, error) {
	link, err := s.professionalRepo.GetLink(linkID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ProfessionLinkResponse{
		ID:           link.ID,
		ProfessionID: link.ProfessionID,
		Verified:     link.Verified,
	}
	if link.Profession != nil {
		p := dto.NewProfessionResponse(link.Profession)
		resp.Profession = &p
	}
	return &resp, nil
}

func (s *professionalService) getProfile(userID string) (*models.ProfessionalProfile, error) {
	profile, err := s.professionalRepo.GetProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("Professional profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
