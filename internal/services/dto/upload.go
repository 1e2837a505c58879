package dto

import (
	"time"

	"servimarket_backend/internal/models"
)

type UploadResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	FileName  string    `json:"fileName"`
	URL       string    `json:"url"`
	MimeType  string    `json:"mimeType"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUploadResponse(upload *models.Upload) UploadResponse {
	return UploadResponse{
		ID:        upload.ID,
		Kind:      upload.Kind,
		FileName:  upload.FileName,
		URL:       upload.URL,
		MimeType:  upload.MimeType,
		Size:      upload.Size,
		CreatedAt: upload.CreatedAt,
	}
}

func NewUploadListResponse(uploads []models.Upload) []UploadResponse {
	out := make([]UploadResponse, 0, len(uploads))
	for i := range uploads {
		out = append(out, NewUploadResponse(&uploads[i]))
	}
	return out
}
