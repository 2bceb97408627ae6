package app

import (
	"github.com/yungbote/insurance-backend/internal/config"
	"github.com/yungbote/insurance-backend/internal/http/handlers"
)

type Handlers struct {
	Vehicle   *handlers.VehicleHandler
	Insurance *handlers.InsuranceHandler
	Health    *handlers.HealthHandler
}

func wireHandlers(cfg *config.Config, svcs Services) Handlers {
	h := Handlers{Health: handlers.NewHealthHandler(cfg.ServiceName, nil)}
	if svcs.Vehicle != nil {
		h.Vehicle = handlers.NewVehicleHandler(svcs.Vehicle)
	}
	if svcs.Insurance != nil {
		h.Insurance = handlers.NewInsuranceHandler(svcs.Insurance)
	}
	return h
}
