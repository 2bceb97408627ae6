package app

import (
	"fmt"

	"github.com/yungbote/insurance-backend/internal/clients/vehicleapi"
	"github.com/yungbote/insurance-backend/internal/config"
	"github.com/yungbote/insurance-backend/internal/observability"
	"github.com/yungbote/insurance-backend/internal/platform/logger"
	"github.com/yungbote/insurance-backend/internal/registry"
	"github.com/yungbote/insurance-backend/internal/seed"
	"github.com/yungbote/insurance-backend/internal/services"
)

// Services holds whichever services the running binary exposes; the other stays nil.
type Services struct {
	Vehicle   services.VehicleService
	Insurance services.InsuranceService
}

func wireServices(service config.Service, cfg *config.Config, log *logger.Logger, metrics *observability.Metrics, data seed.Data) (Services, error) {
	log.Info("Wiring services...")
	switch service {
	case config.ServiceVehicle:
		vehicles, err := registry.NewVehicleRegistry(data.Vehicles)
		if err != nil {
			return Services{}, fmt.Errorf("vehicle registry: %w", err)
		}
		log.Info("vehicle registry loaded", "vehicles", vehicles.Len())
		return Services{Vehicle: services.NewVehicleService(log, vehicles)}, nil

	case config.ServiceInsurance:
		policies, err := registry.NewInsuranceRegistry(data.PersonInsurances)
		if err != nil {
			return Services{}, fmt.Errorf("insurance registry: %w", err)
		}
		client, err := vehicleapi.New(vehicleapi.Options{
			BaseURL: cfg.VehicleService.BaseURL,
			Timeout: cfg.VehicleService.Timeout.Duration,
		})
		if err != nil {
			return Services{}, fmt.Errorf("vehicle client: %w", err)
		}
		log.Info("insurance registry loaded",
			"persons", policies.Len(),
			"vehicle_base_url", client.BaseURL(),
			"vehicle_timeout", client.Timeout().String(),
			"enrichment_concurrency", cfg.Enrichment.Concurrency,
		)
		return Services{
			Insurance: services.NewInsuranceService(log, policies, client, metrics, cfg.Enrichment.Concurrency),
		}, nil
	}
	return Services{}, fmt.Errorf("unknown service %q", service)
}
