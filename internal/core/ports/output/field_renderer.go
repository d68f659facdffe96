package ports

import (
	"context"
	"io"

	"pipe-sizing-service/internal/core/domain"
)

// RenderOptions sizes the rendered image
type RenderOptions struct {
	WidthInches  float64
	HeightInches float64
	DPI          int
}

// FieldRenderer defines the contract for drawing a diameter field
type FieldRenderer interface {
	// RenderPNG draws a filled contour of the field and writes it as PNG
	RenderPNG(ctx context.Context, field *domain.DiameterField, opts RenderOptions, w io.Writer) error
}
