package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"servimarket_backend/internal/config"
	"servimarket_backend/internal/models"
	"servimarket_backend/internal/repositories"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/internal/storage"
	"servimarket_backend/pkg/apperrors"
)

type UploadService interface {
	Upload(userID, kind, fileName, mimeType string, size int64, src io.Reader) (*dto.UploadResponse, error)
	ListMine(userID string) ([]dto.UploadResponse, error)
	Delete(userID, id string) error
}

type uploadService struct {
	cfg        *config.Config
	uploadRepo repositories.UploadRepository
	store      storage.Storage
}

func NewUploadService(cfg *config.Config, uploadRepo repositories.UploadRepository, store storage.Storage) UploadService {
	return &uploadService{
		cfg:        cfg,
		uploadRepo: uploadRepo,
		store:      store,
	}
}

// Upload validates the MIME type against the allowlist and the size against
// the per-category limit before anything hits disk.
func (s *uploadService) Upload(userID, kind, fileName, mimeType string, size int64, src io.Reader) (*dto.UploadResponse, error) {
	if kind != "certification" && kind != "portfolio" {
		return nil, apperrors.NewBadRequestError("kind must be certification or portfolio")
	}
	if !s.typeAllowed(mimeType) {
		return nil, apperrors.ErrInvalidFileType
	}
	if size > s.maxSize(mimeType) {
		return nil, apperrors.ErrFileTooLarge
	}

	storedName := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(fileName))
	path, err := s.store.Save(filepath.Join(kind, userID), storedName, src)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	upload := &models.Upload{
		UserID:   userID,
		Kind:     kind,
		FileName: fileName,
		Path:     path,
		URL:      s.store.URL(path),
		MimeType: mimeType,
		Size:     size,
	}
	if err := s.uploadRepo.Create(upload); err != nil {
		s.store.Delete(path)
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUploadResponse(upload)
	return &resp, nil
}

func (s *uploadService) ListMine(userID string) ([]dto.UploadResponse, error) {
	uploads, err := s.uploadRepo.ListForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUploadListResponse(uploads), nil
}

func (s *uploadService) Delete(userID, id string) error {
	upload, err := s.uploadRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUploadNotFound) {
			return apperrors.NewNotFoundError("Upload not found")
		}
		return apperrors.InternalError(err)
	}
	if upload.UserID != userID {
		return apperrors.NewForbiddenError("Not your upload")
	}

	if err := s.uploadRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	s.store.Delete(upload.Path)
	return nil
}

func (s *uploadService) typeAllowed(mimeType string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if allowed == mimeType {
			return true
		}
	}
	return false
}

func (s *uploadService) maxSize(mimeType string) int64 {
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return s.cfg.Upload.MaxVideoSize
	case mimeType == "application/pdf":
		return s.cfg.Upload.MaxDocumentSize
	default:
		return s.cfg.Upload.MaxImageSize
	}
}
