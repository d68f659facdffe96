package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"pipe-sizing-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GetField(c *gin.Context) {
	field, err := h.fieldSvc.Field(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("build diameter field failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFieldResponse(h.fieldSvc.Domain(), field))
}

func (h *Handler) GetFieldImage(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.fieldSvc.Render(c.Request.Context(), &buf); err != nil {
		log.WithError(err).Error("render diameter field failed")
		mapDomainError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"cache":  h.fieldSvc.CacheStatus(c.Request.Context()),
	})
}
