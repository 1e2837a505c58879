package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/internal/middleware"
	"servimarket_backend/internal/services"
	"servimarket_backend/pkg/apperrors"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{BaseHandler: base, uploadService: uploadService}
}

// Upload accepts a multipart form with a "file" field and a "kind" field
// (certification or portfolio).
func (h *UploadHandler) Upload(c *gin.Context) {
	h.upload(c, c.PostForm("kind"))
}

// UploadKind fixes the kind from the route instead of the form.
func (h *UploadHandler) UploadKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.upload(c, kind)
	}
}

func (h *UploadHandler) upload(c *gin.Context, kind string) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file field is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	resp, err := h.uploadService.Upload(
		middleware.CurrentUserID(c),
		kind,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *UploadHandler) ListMine(c *gin.Context) {
	resp, err := h.uploadService.ListMine(middleware.CurrentUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.uploadService.Delete(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OKWithMessage(c, "Upload deleted", nil)
}
