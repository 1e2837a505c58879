package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type CreateReportRequest struct {
	ReportedUserID string  `json:"reportedUserId" validate:"required,uuid"`
	TransactionID  *string `json:"transactionId" validate:"omitempty,uuid"`
	Reason         string  `json:"reason" validate:"required,min=3,max=200"`
	Description    string  `json:"description" validate:"omitempty,max=5000"`
}

type UpdateReportStatusRequest struct {
	Status      string `json:"status" validate:"required,oneof=PENDING REVIEWING RESOLVED DISMISSED"`
	Resolution  string `json:"resolution" validate:"omitempty,max=2000"`
	SuspendUser bool   `json:"suspendUser"`
}

type ReportResponse struct {
	ID             string    `json:"id"`
	ReporterID     string    `json:"reporterId"`
	ReportedUserID string    `json:"reportedUserId"`
	TransactionID  *string   `json:"transactionId,omitempty"`
	Reason         string    `json:"reason"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"`
	Resolution     string    `json:"resolution,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewReportResponse(report *models.Report) ReportResponse {
	return ReportResponse{
		ID:             report.ID,
		ReporterID:     report.ReporterID,
		ReportedUserID: report.ReportedUserID,
		TransactionID:  report.TransactionID,
		Reason:         report.Reason,
		Description:    report.Description,
		Status:         string(report.Status),
		Resolution:     report.Resolution,
		CreatedAt:      report.CreatedAt,
	}
}

func NewReportListResponse(reports []models.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, NewReportResponse(&reports[i]))
	}
	return out
}
