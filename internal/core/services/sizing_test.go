package services

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipe-sizing-service/internal/core/domain"
)

func TestSizingService_Calculate(t *testing.T) {
	svc := NewSizingService()

	sizing, err := svc.Calculate(context.Background(), 1.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sizing.FlowRate)
	assert.Equal(t, 1.0, sizing.Velocity)
	assert.InEpsilon(t, 1.1284, float64(sizing.Diameter), 1e-4)
	assert.Equal(t, "The recommended pipe diameter is: **1.13 meters**", sizing.Message())
}

func TestSizingService_Calculate_HalfFlowDoubleVelocity(t *testing.T) {
	svc := NewSizingService()

	sizing, err := svc.Calculate(context.Background(), 0.5, 2.0)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Sqrt(1/math.Pi), float64(sizing.Diameter), 1e-9)
	assert.Equal(t, "The recommended pipe diameter is: **0.56 meters**", sizing.Message())
}

func TestSizingService_Calculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		flowRate float64
		velocity float64
	}{
		{name: "zero flow rate", flowRate: 0, velocity: 1},
		{name: "zero velocity", flowRate: 1, velocity: 0},
		{name: "negative flow rate", flowRate: -0.5, velocity: 1},
	}

	svc := NewSizingService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizing, err := svc.Calculate(context.Background(), tt.flowRate, tt.velocity)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, sizing)
		})
	}
}
