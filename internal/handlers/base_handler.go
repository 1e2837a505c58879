package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"servimarket_backend/internal/logger"
	"servimarket_backend/internal/services/dto"
	"servimarket_backend/internal/validator"
	"servimarket_backend/pkg/apperrors"
	"servimarket_backend/pkg/contextkeys"
)

type BaseHandler struct{}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// SuccessResponse is the uniform success envelope.
type SuccessResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
}

func (h *BaseHandler) OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

func (h *BaseHandler) OKWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data, Message: message})
}

func (h *BaseHandler) Paginated(c *gin.Context, data interface{}, pagination dto.Pagination) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data, Pagination: &pagination})
}

// BindAndValidate binds the JSON body and runs struct validation. On failure
// it writes the error response and returns false.
func (h *BaseHandler) BindAndValidate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := validator.ValidateStruct(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.InternalError(err))
		return false
	}
	return true
}

// GetDB pulls the request-scoped database handle injected by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	value, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		value = c.Request.Context().Value(contextkeys.DBContextKey)
	}
	db, ok := value.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "database handle missing from request context")
		panic("DBMiddleware did not set the database handle")
	}
	return db
}

// PageLimit reads the standard pagination query parameters.
func (h *BaseHandler) PageLimit(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
