package repositories

import (
	"errors"

	"gorm.io/gorm"

	"servimarket_backend/internal/models"
)

var ErrReportNotFound = errors.New("report not found")

type ReportFilter struct {
	Status     models.ReportStatus
	ReporterID string
	Page       int
	Limit      int
}

type ReportRepository interface {
	Create(report *models.Report) error
	GetByID(id string) (*models.Report, error)
	Update(report *models.Report) error
	List(filter ReportFilter) ([]models.Report, int64, error)
}

type ReportRepositoryImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

func (r *ReportRepositoryImpl) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

func (r *ReportRepositoryImpl) GetByID(id string) (*models.Report, error) {
	var report models.Report
	err := r.db.Preload("Reporter").Preload("ReportedUser").First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) Update(report *models.Report) error {
	return r.db.Save(report).Error
}

func (r *ReportRepositoryImpl) List(filter ReportFilter) ([]models.Report, int64, error) {
	query := r.db.Model(&models.Report{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ReporterID != "" {
		query = query.Where("reporter_id = ?", filter.ReporterID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.Report
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&reports).Error
	return reports, total, err
}
