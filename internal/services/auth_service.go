package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"servimarket_backend/internal/auth"
	"servimarket_backend/internal/config"
	"servimarket_backend/internal/email"
	"servimarket_backend/internal/logger"
	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error)
	Logout(req *dto.LogoutRequest) error
	ForgotPassword(req *dto.ForgotPasswordRequest) error
	ResetPassword(req *dto.ResetPasswordRequest) error
	VerifyEmail(req *dto.VerifyEmailRequest) error
}

type authService struct {
	cfg              *config.Config
	userRepo         repositories.UserRepository
	professionalRepo repositories.ProfessionalRepository
	emailProvider    email.Provider
}

func NewAuthService(cfg *config.Config, userRepo repositories.UserRepository, professionalRepo repositories.ProfessionalRepository, emailProvider email.Provider) AuthService {
	return &authService{
		cfg:              cfg,
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		emailProvider:    emailProvider,
	}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if role == models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("Cannot self-register as admin")
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		Name:              req.Name,
		Role:              role,
		Status:            models.UserStatusActive,
		City:              req.City,
		Phone:             req.Phone,
		VerificationToken: uuid.NewString(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if role == models.UserRoleProfessional {
		profile := &models.ProfessionalProfile{UserID: user.ID, City: req.City}
		if err := s.professionalRepo.CreateProfile(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.emailProvider.SendVerificationEmail(user.Email, user.Name, user.VerificationToken); err != nil {
		logger.WithError(err).Warn("verification email not sent", "user_id", user.ID)
	}

	return s.issueTokens(user)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	row, err := s.userRepo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(row.ExpiresAt) {
		s.userRepo.DeleteRefreshToken(row.Token)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(row.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	// Rotate: the old token is single-use.
	if err := s.userRepo.DeleteRefreshToken(row.Token); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.issueTokens(user)
}

func (s *authService) Logout(req *dto.LogoutRequest) error {
	if err := s.userRepo.DeleteRefreshToken(req.RefreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ForgotPassword always succeeds from the caller's point of view so the
// endpoint does not leak which emails are registered.
func (s *authService) ForgotPassword(req *dto.ForgotPasswordRequest) error {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	exp := time.Now().Add(time.Hour)
	user.ResetToken = uuid.NewString()
	user.ResetTokenExp = &exp
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordResetEmail(user.Email, user.Name, user.ResetToken); err != nil {
		logger.WithError(err).Warn("password reset email not sent", "user_id", user.ID)
	}
	return nil
}

func (s *authService) ResetPassword(req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.GetByResetToken(req.Token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewBadRequestError("Invalid or expired reset token")
		}
		return apperrors.InternalError(err)
	}
	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.NewBadRequestError("Invalid or expired reset token")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	// Invalidate existing sessions after a password change.
	s.userRepo.DeleteRefreshTokensForUser(user.ID)
	return nil
}

func (s *authService) VerifyEmail(req *dto.VerifyEmailRequest) error {
	user, err := s.userRepo.GetByVerificationToken(req.Token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewBadRequestError("Invalid verification token")
		}
		return apperrors.InternalError(err)
	}

	user.IsVerified = true
	user.VerificationToken = ""
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Role, s.cfg.JWT.Secret, time.Duration(s.cfg.JWT.TTL)*time.Minute)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh, err := auth.NewRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	row := &models.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.JWT.RefreshTTL) * time.Hour),
	}
	if err := s.userRepo.CreateRefreshToken(row); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewAuthResponse(token, refresh, user)
	return &resp, nil
}
