package services

import (
	"errors"

	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/pkg/apperrors"
)

type ReportService interface {
	Create(reporterID string, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
	Get(userID string, role models.UserRole, id string) (*dto.ReportResponse, error)
	ListMine(reporterID string, page, limit int) ([]dto.ReportResponse, dto.Pagination, error)
	ListAll(status string, page, limit int) ([]dto.ReportResponse, dto.Pagination, error)
	UpdateStatus(id string, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error)
}

type reportService struct {
	reportRepo repositories.ReportRepository
	userRepo   repositories.UserRepository
}

func NewReportService(reportRepo repositories.ReportRepository, userRepo repositories.UserRepository) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

func (s *reportService) Create(reporterID string, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if req.ReportedUserID == reporterID {
		return nil, apperrors.NewBadRequestError("Cannot report yourself")
	}
	if _, err := s.userRepo.GetByID(req.ReportedUserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("Reported user not found")
		}
		return nil, apperrors.InternalError(err)
	}

	report := &models.Report{
		ReporterID:     reporterID,
		ReportedUserID: req.ReportedUserID,
		TransactionID:  req.TransactionID,
		Reason:         req.Reason,
		Description:    req.Description,
		Status:         models.ReportStatusPending,
	}
	if err := s.reportRepo.Create(report); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewReportResponse(report)
	return &resp, nil
}

func (s *reportService) Get(userID string, role models.UserRole, id string) (*dto.ReportResponse, error) {
	report, err := s.getReport(id)
	if err != nil {
		return nil, err
	}
	if role != models.UserRoleAdmin && report.ReporterID != userID {
		return nil, apperrors.NewForbiddenError("Not your report")
	}

	resp := dto.NewReportResponse(report)
	return &resp, nil
}

func (s *reportService) ListMine(reporterID string, page, limit int) ([]dto.ReportResponse, dto.Pagination, error) {
	return s.list(repositories.ReportFilter{ReporterID: reporterID}, page, limit)
}

func (s *reportService) ListAll(status string, page, limit int) ([]dto.ReportResponse, dto.Pagination, error) {
	return s.list(repositories.ReportFilter{Status: models.ReportStatus(status)}, page, limit)
}

func (s *reportService) list(filter repositories.ReportFilter, page, limit int) ([]dto.ReportResponse, dto.Pagination, error) {
	filter.Page, filter.Limit = dto.NormalizePageLimit(page, limit)
	reports, total, err := s.reportRepo.List(filter)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}
	return dto.NewReportListResponse(reports), dto.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *reportService) UpdateStatus(id string, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error) {
	report, err := s.getReport(id)
	if err != nil {
		return nil, err
	}

	report.Status = models.ReportStatus(req.Status)
	if req.Resolution != "" {
		report.Resolution = req.Resolution
	}
	if err := s.reportRepo.Update(report); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if report.Status == models.ReportStatusResolved && req.SuspendUser {
		if err := s.suspendReportedUser(report.ReportedUserID); err != nil {
			return nil, err
		}
	}

	resp := dto.NewReportResponse(report)
	return &resp, nil
}

func (s *reportService) suspendReportedUser(userID string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("Reported user not found")
		}
		return apperrors.InternalError(err)
	}
	if user.Role == models.UserRoleAdmin {
		return apperrors.NewForbiddenError("Cannot suspend an admin account")
	}

	user.Status = models.UserStatusSuspended
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	s.userRepo.DeleteRefreshTokensForUser(user.ID)
	return nil
}

func (s *reportService) getReport(id string) (*models.Report, error) {
	report, err := s.reportRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return nil, apperrors.NewNotFoundError("Report not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return report, nil
}
