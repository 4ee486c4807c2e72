package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/clothes-catalog/internal/config"
	"github.com/deppfellow/clothes-catalog/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheckResult(t *testing.T) {
	log := zerolog.Nop()
	h := NewHealthHandler(&server.Server{
		Config: &config.Config{Observability: config.DefaultObservabilityConfig()},
		Logger: &log,
	})

	ok := h.check(context.Background(), log, "database", func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	})
	assert.Equal(t, "healthy", ok.Status)
	assert.Empty(t, ok.Error)

	failed := h.check(context.Background(), log, "redis", func(context.Context) error {
		return errors.New("dial tcp: connection refused")
	})
	assert.Equal(t, "unhealthy", failed.Status)
	assert.Equal(t, "dial tcp: connection refused", failed.Error)
}
