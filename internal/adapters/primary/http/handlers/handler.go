package handlers

import (
	"pipe-sizing-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sizingSvc *services.SizingService
	fieldSvc  *services.FieldService
}

func New(
	sizingSvc *services.SizingService,
	fieldSvc *services.FieldService,
) *Handler {
	return &Handler{
		sizingSvc: sizingSvc,
		fieldSvc:  fieldSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Diameter calculation
	r.GET("/diameter", h.GetDiameter)
	r.POST("/diameter", h.CalculateDiameter)

	// Reference field
	r.GET("/field", h.GetField)
	r.GET("/field.png", h.GetFieldImage)
}

// RegisterPage mounts the interactive page and health check at the root
func (h *Handler) RegisterPage(r gin.IRouter) {
	r.GET("/", h.Page)
	r.GET("/healthz", h.Health)
}
