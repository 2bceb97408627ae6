package services

import (
	"context"

	"github.com/yungbote/insurance-backend/internal/domain/vehicle"
	"github.com/yungbote/insurance-backend/internal/platform/ctxutil"
	"github.com/yungbote/insurance-backend/internal/platform/logger"
)

type VehicleService interface {
	GetVehicle(ctx context.Context, registrationNumber string) (vehicle.Vehicle, bool)
}

// VehicleFinder is the read side of the vehicle registry.
type VehicleFinder interface {
	Lookup(registrationNumber string) (vehicle.Vehicle, bool)
}

type vehicleService struct {
	log      *logger.Logger
	registry VehicleFinder
}

func NewVehicleService(baseLog *logger.Logger, registry VehicleFinder) VehicleService {
	return &vehicleService{
		log:      baseLog.With("service", "VehicleService"),
		registry: registry,
	}
}

func (s *vehicleService) GetVehicle(ctx context.Context, registrationNumber string) (vehicle.Vehicle, bool) {
	v, ok := s.registry.Lookup(registrationNumber)
	if !ok {
		s.log.Debug("vehicle not found", "registration", registrationNumber, "request_id", ctxutil.RequestID(ctx))
	}
	return v, ok
}
