package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"pipe-sizing-service/internal/core/domain"
	ports "pipe-sizing-service/internal/core/ports/output"
)

// FieldService builds and renders the diameter reference surface
type FieldService struct {
	domain   domain.FieldDomain
	opts     ports.RenderOptions
	renderer ports.FieldRenderer
	cache    ports.FieldCache
}

// NewFieldService creates a new field service. cache may be nil.
func NewFieldService(
	fd domain.FieldDomain,
	opts ports.RenderOptions,
	renderer ports.FieldRenderer,
	cache ports.FieldCache,
) *FieldService {
	return &FieldService{
		domain:   fd,
		opts:     opts,
		renderer: renderer,
		cache:    cache,
	}
}

// Domain returns the sampled domain
func (s *FieldService) Domain() domain.FieldDomain {
	return s.domain
}

// Field evaluates the diameter over the configured domain
func (s *FieldService) Field(_ context.Context) (*domain.DiameterField, error) {
	return domain.NewDiameterField(s.domain)
}

// Render writes the contour image as PNG, serving it from the cache when one
// is configured and already holds it.
func (s *FieldService) Render(ctx context.Context, w io.Writer) error {
	key := s.cacheKey()

	if s.cache != nil {
		data, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			_, err = w.Write(data)
			return err
		case !errors.Is(err, domain.ErrCacheMiss):
			log.WithError(err).Warn("field cache lookup failed")
		}
	}

	field, err := s.Field(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderPNG(ctx, field, s.opts, &buf); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, buf.Bytes()); err != nil {
			log.WithError(err).Warn("field cache store failed")
		}
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// CacheStatus reports "disabled", "up" or "down"
func (s *FieldService) CacheStatus(ctx context.Context) string {
	if s.cache == nil {
		return "disabled"
	}
	if err := s.cache.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}

func (s *FieldService) cacheKey() string {
	return fmt.Sprintf("%s:%gx%g@%d", s.domain.Key(), s.opts.WidthInches, s.opts.HeightInches, s.opts.DPI)
}
