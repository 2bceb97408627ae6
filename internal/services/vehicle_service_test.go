package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/insurance-backend/internal/domain/vehicle"
	"github.com/yungbote/insurance-backend/internal/platform/logger"
	"github.com/yungbote/insurance-backend/internal/registry"
)

func TestGetVehicle(t *testing.T) {
	reg, err := registry.NewVehicleRegistry([]vehicle.Vehicle{abc123})
	require.NoError(t, err)
	svc := NewVehicleService(logger.NewNop(), reg)

	v, ok := svc.GetVehicle(context.Background(), "abc123")
	require.True(t, ok)
	assert.Equal(t, abc123, v)

	_, ok = svc.GetVehicle(context.Background(), "NOPE")
	assert.False(t, ok)

	_, ok = svc.GetVehicle(context.Background(), " ")
	assert.False(t, ok)
}
