package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type UserService interface {
	GetMe(userID string) (*dto.UserResponse, error)
	UpdateMe(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	GetPublicProfile(id string) (*dto.PublicUserResponse, error)
	List(role, status, search string, page, limit int) ([]dto.UserResponse, dto.Pagination, error)
	Suspend(id string) (*dto.UserResponse, error)
	Activate(id string) (*dto.UserResponse, error)

	SendOTP(userID string, req *dto.SendOTPRequest) error
	VerifyOTP(userID string, req *dto.VerifyOTPRequest) error
	VerifyIdentity(userID string, req *dto.VerifyIdentityRequest) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetMe(userID string) (*dto.UserResponse, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateMe(userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) GetPublicProfile(id string) (*dto.PublicUserResponse, error) {
	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewPublicUserResponse(user)
	return &resp, nil
}

func (s *userService) List(role, status, search string, page, limit int) ([]dto.UserResponse, dto.Pagination, error) {
	page, limit = dto.NormalizePageLimit(page, limit)
	users, total, err := s.userRepo.List(repositories.UserFilter{
		Role:   models.UserRole(role),
		Status: models.UserStatus(status),
		Search: search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return out, dto.NewPagination(page, limit, total), nil
}

func (s *userService) Suspend(id string) (*dto.UserResponse, error) {
	return s.setStatus(id, models.UserStatusSuspended)
}

func (s *userService) Activate(id string) (*dto.UserResponse, error) {
	return s.setStatus(id, models.UserStatusActive)
}

func (s *userService) setStatus(id string, status models.UserStatus) (*dto.UserResponse, error) {
	user, err := s.getUser(id)
	if err != nil {
		return nil, err
	}
	if user.Role == models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("Cannot change status of an admin account")
	}

	user.Status = status
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if status == models.UserStatusSuspended {
		s.userRepo.DeleteRefreshTokensForUser(user.ID)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

const otpTTL = 10 * time.Minute

func (s *userService) SendOTP(userID string, req *dto.SendOTPRequest) error {
	user, err := s.getUser(userID)
	if err != nil {
		return err
	}

	code, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return apperrors.InternalError(err)
	}

	exp := time.Now().Add(otpTTL)
	user.Phone = req.Phone
	user.PhoneVerified = false
	user.OTPCode = fmt.Sprintf("%06d", code)
	user.OTPExpiresAt = &exp
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	// Delivery over SMS is out of scope; the code sits on the row until a
	// gateway integration picks it up.
	return nil
}

func (s *userService) VerifyOTP(userID string, req *dto.VerifyOTPRequest) error {
	user, err := s.getUser(userID)
	if err != nil {
		return err
	}
	if user.OTPCode == "" || user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		return apperrors.NewBadRequestError("OTP expired, request a new one")
	}
	if user.OTPCode != req.Code {
		return apperrors.NewBadRequestError("Invalid OTP code")
	}

	user.PhoneVerified = true
	user.OTPCode = ""
	user.OTPExpiresAt = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) VerifyIdentity(userID string, req *dto.VerifyIdentityRequest) error {
	user, err := s.getUser(userID)
	if err != nil {
		return err
	}
	if user.IdentityVerified {
		return apperrors.NewConflictError("Identity already verified")
	}

	user.Cedula = req.Cedula
	user.IdentityVerified = true
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) getUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
