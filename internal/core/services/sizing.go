package services

import (
	"context"

	"pipe-sizing-service/internal/core/domain"
)

// SizingService turns a flow rate and permissible velocity into a pipe diameter
type SizingService struct{}

// NewSizingService creates a new sizing service
func NewSizingService() *SizingService {
	return &SizingService{}
}

// Calculate validates the inputs before computing, so callers never reach the
// formula with a non-positive value.
func (s *SizingService) Calculate(_ context.Context, flowRate, velocity float64) (*domain.Sizing, error) {
	if err := domain.ValidateInputs(flowRate, velocity); err != nil {
		return nil, err
	}

	d, err := domain.PipeDiameter(flowRate, velocity)
	if err != nil {
		return nil, err
	}

	return &domain.Sizing{
		FlowRate: flowRate,
		Velocity: velocity,
		Diameter: d,
	}, nil
}
