package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckOK(t *testing.T) {
	svc := NewHealthService(newFakeRepo(), testLogger())

	status := svc.Check(context.Background())
	require.NotNil(t, status)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "healthy", status.Components["database"].Status)
}

func TestHealthCheckDegraded(t *testing.T) {
	repo := newFakeRepo()
	repo.healthErr = errors.New("connection refused")
	svc := NewHealthService(repo, testLogger())

	status := svc.Check(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "unhealthy", status.Components["database"].Status)
	assert.Contains(t, status.Components["database"].Message, "connection refused")
}
