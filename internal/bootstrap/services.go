package bootstrap

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"pipe-sizing-service/internal/adapters/secondary/gonumplot"
	"pipe-sizing-service/internal/adapters/secondary/rediscache"
	"pipe-sizing-service/internal/config"
	"pipe-sizing-service/internal/core/domain"
	ports "pipe-sizing-service/internal/core/ports/output"
	"pipe-sizing-service/internal/core/services"
)

func FieldDomain(cfg config.FieldConfig) domain.FieldDomain {
	return domain.FieldDomain{
		FlowMin:         cfg.FlowMin,
		FlowMax:         cfg.FlowMax,
		FlowSamples:     cfg.FlowSamples,
		VelocityMin:     cfg.VelocityMin,
		VelocityMax:     cfg.VelocityMax,
		VelocitySamples: cfg.VelocitySamples,
	}
}

func RenderOptions(cfg config.PlotConfig) ports.RenderOptions {
	return ports.RenderOptions{
		WidthInches:  cfg.WidthInches,
		HeightInches: cfg.HeightInches,
		DPI:          cfg.DPI,
	}
}

// NewFieldCache returns nil when caching is disabled or Redis cannot be
// reached; the field is then rendered on every request.
func NewFieldCache(cfg *config.CacheConfig) ports.FieldCache {
	if !cfg.Enabled {
		log.Info("field cache disabled")
		return nil
	}

	cache := rediscache.NewFieldCache(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		log.Warnf("field cache init failed (continuing without cache): %v", err)
		return nil
	}

	log.WithField("addr", cfg.RedisAddr).Info("field cache initialized")
	return cache
}

// NewServices wires the core services to their secondary adapters
func NewServices(cfg *config.Config) (*services.SizingService, *services.FieldService, error) {
	fd := FieldDomain(cfg.Field)
	if err := fd.Validate(); err != nil {
		return nil, nil, err
	}

	sizingSvc := services.NewSizingService()
	fieldSvc := services.NewFieldService(fd, RenderOptions(cfg.Plot), gonumplot.NewRenderer(), NewFieldCache(&cfg.Cache))

	return sizingSvc, fieldSvc, nil
}
