package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pipe-sizing-service/internal/adapters/primary/http/dto"
)

func (h *Handler) CalculateDiameter(c *gin.Context) {
	var req dto.CalculateDiameterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respondDiameter(c, req.FlowRate, req.Velocity)
}

func (h *Handler) GetDiameter(c *gin.Context) {
	flowRate, err := strconv.ParseFloat(c.Query("flow_rate"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flow_rate"})
		return
	}

	velocity, err := strconv.ParseFloat(c.Query("velocity"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid velocity"})
		return
	}

	h.respondDiameter(c, flowRate, velocity)
}

func (h *Handler) respondDiameter(c *gin.Context, flowRate, velocity float64) {
	sizing, err := h.sizingSvc.Calculate(c.Request.Context(), flowRate, velocity)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDiameterResponse(sizing))
}
