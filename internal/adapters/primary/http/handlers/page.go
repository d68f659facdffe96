package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	log "github.com/sirupsen/logrus"

	"pipe-sizing-service/internal/core/domain"
)

// FieldImagePath is where the page loads the contour image from
const FieldImagePath = "/api/v1/pipe-sizing/field.png"

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

type pageView struct {
	FlowRate float64
	Velocity float64
	Result   bool
	Diameter float64
	Error    string
	ImageURL string
}

// Page serves the calculator. The diameter is only computed when the form was
// submitted with the calculate button; the field image is always shown.
func (h *Handler) Page(c *gin.Context) {
	view := pageView{
		FlowRate: formValue(c, "flow_rate"),
		Velocity: formValue(c, "velocity"),
		ImageURL: FieldImagePath,
	}

	if _, ok := c.GetQuery("calculate"); ok {
		sizing, err := h.sizingSvc.Calculate(c.Request.Context(), view.FlowRate, view.Velocity)
		switch {
		case err == nil:
			view.Result = true
			view.Diameter = float64(sizing.Diameter)
		case errors.Is(err, domain.ErrInvalidInput):
			view.Error = domain.InvalidInputMessage
		default:
			log.WithError(err).Error("calculate diameter failed")
			view.Error = "internal server error"
		}
	}

	c.Render(http.StatusOK, render.HTML{Template: pageTemplate, Name: "page", Data: view})
}

// formValue reads a numeric input the way the number widget does: anything
// missing, unparseable or below zero reads as 0.
func formValue(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil || !(v > 0) {
		return 0
	}
	return v
}
