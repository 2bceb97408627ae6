package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/insurance-backend/internal/http/handlers"
	httpMW "github.com/yungbote/insurance-backend/internal/http/middleware"
	"github.com/yungbote/insurance-backend/internal/http/response"
	"github.com/yungbote/insurance-backend/internal/observability"
	"github.com/yungbote/insurance-backend/internal/platform/apierr"
	"github.com/yungbote/insurance-backend/internal/platform/logger"
)

type RouterConfig struct {
	ServiceName string
	Log         *logger.Logger
	// Metrics enables /metrics and request instrumentation when non-nil.
	Metrics     *observability.Metrics
	CORSOrigins []string

	VehicleHandler   *httpH.VehicleHandler
	InsuranceHandler *httpH.InsuranceHandler
	HealthHandler    *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.Recovery(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, apierr.NotFound("Resource not found"))
	})

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.ReadyCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// The bare collection paths exist so a missing identifier is a 400, not a 404.
		if cfg.VehicleHandler != nil {
			api.GET("/vehicles/", cfg.VehicleHandler.GetVehicle)
			api.GET("/vehicles/:registrationNumber", cfg.VehicleHandler.GetVehicle)
		}
		if cfg.InsuranceHandler != nil {
			api.GET("/insurances/", cfg.InsuranceHandler.GetPersonInsurances)
			api.GET("/insurances/:personId", cfg.InsuranceHandler.GetPersonInsurances)
		}
	}

	return r
}
