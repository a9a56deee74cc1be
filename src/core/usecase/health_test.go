package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"jokebox/src/core/ports"
	"jokebox/src/infra/logger"
)

func TestHealthServiceCheck(t *testing.T) {
	healthy := newMemRepo()
	broken := newMemRepo()
	broken.err = errors.New("connection refused")

	svc := NewHealthService(logger.Discard(), map[string]ports.Repository{"database": healthy})
	status := svc.Check(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "healthy", status.Components["database"].Status)
	assert.True(t, svc.Healthy(context.Background()))

	svc = NewHealthService(logger.Discard(), map[string]ports.Repository{"database": broken})
	status = svc.Check(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "unhealthy", status.Components["database"].Status)
	assert.NotContains(t, status.Components["database"].Message, "refused", "no internal detail")
	assert.False(t, svc.Healthy(context.Background()))
}
