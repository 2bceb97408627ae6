package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/insurance-backend/internal/config"
	httpserver "github.com/yungbote/insurance-backend/internal/http"
	"github.com/yungbote/insurance-backend/internal/observability"
	"github.com/yungbote/insurance-backend/internal/platform/logger"
)

func wireRouter(cfg *config.Config, log *logger.Logger, metrics *observability.Metrics, h Handlers) *gin.Engine {
	return httpserver.NewRouter(httpserver.RouterConfig{
		ServiceName:      cfg.ServiceName,
		Log:              log,
		Metrics:          metrics,
		CORSOrigins:      cfg.CORS.AllowOrigins,
		VehicleHandler:   h.Vehicle,
		InsuranceHandler: h.Insurance,
		HealthHandler:    h.Health,
	})
}
