package handlers

import (
	"github.com/gin-gonic/gin"

	"servimarket_backend/pkg/apperrors"
)

type HealthHandler struct {
	*BaseHandler
}

func NewHealthHandler(base *BaseHandler) *HealthHandler {
	return &HealthHandler{BaseHandler: base}
}

// Health pings the database through the request-scoped handle.
func (h *HealthHandler) Health(c *gin.Context) {
	db := h.GetDB(c)
	sqlDB, err := db.DB()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	h.OK(c, gin.H{"status": "ok"})
}
