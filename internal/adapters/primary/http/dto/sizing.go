package dto

import (
	"pipe-sizing-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// CalculateDiameterRequest carries the two page inputs. Positivity is checked
// by the sizing service so the error message stays the same on every surface.
type CalculateDiameterRequest struct {
	FlowRate float64 `json:"flow_rate" form:"flow_rate"`
	Velocity float64 `json:"velocity" form:"velocity"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// DiameterResponse represents a sizing result in API responses
type DiameterResponse struct {
	FlowRate        float64 `json:"flow_rate"`
	Velocity        float64 `json:"velocity"`
	Diameter        float64 `json:"diameter"`
	DiameterRounded float64 `json:"diameter_rounded"`
	Unit            string  `json:"unit"`
	Message         string  `json:"message"`
}

// FieldResponse represents the sampled diameter surface
type FieldResponse struct {
	Domain     domain.FieldDomain `json:"domain"`
	FlowRates  []float64          `json:"flow_rates"`
	Velocities []float64          `json:"velocities"`
	Diameters  [][]float64        `json:"diameters"`
	Min        float64            `json:"min"`
	Max        float64            `json:"max"`
}

// ============================================================================
// Mappers
// ============================================================================

func ToDiameterResponse(s *domain.Sizing) DiameterResponse {
	return DiameterResponse{
		FlowRate:        s.FlowRate,
		Velocity:        s.Velocity,
		Diameter:        float64(s.Diameter),
		DiameterRounded: s.Rounded(),
		Unit:            "m",
		Message:         s.Message(),
	}
}

func ToFieldResponse(fd domain.FieldDomain, f *domain.DiameterField) FieldResponse {
	return FieldResponse{
		Domain:     fd,
		FlowRates:  f.FlowRates,
		Velocities: f.Velocities,
		Diameters:  f.Rows(),
		Min:        f.Min(),
		Max:        f.Max(),
	}
}
