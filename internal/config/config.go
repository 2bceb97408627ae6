package config

import "time"

// Service selects which binary a configuration is loaded for.
type Service string

const (
	ServiceVehicle   Service = "vehicle"
	ServiceInsurance Service = "insurance"
)

type Duration struct {
	Duration time.Duration
}

type HTTPConfig struct {
	Addr              string   `yaml:"addr"`
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`
	IdleTimeout       Duration `yaml:"idle_timeout"`
	ShutdownTimeout   Duration `yaml:"shutdown_timeout"`
}

// VehicleServiceConfig points the insurance service at the vehicle service.
type VehicleServiceConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

type EnrichmentConfig struct {
	// Concurrency caps in-flight vehicle lookups per insurance request.
	Concurrency int `yaml:"concurrency"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type Config struct {
	Env            string               `yaml:"env"`
	ServiceName    string               `yaml:"service_name"`
	Version        string               `yaml:"version"`
	HTTP           HTTPConfig           `yaml:"http"`
	SeedPath       string               `yaml:"seed_path"`
	VehicleService VehicleServiceConfig `yaml:"vehicle_service"`
	Enrichment     EnrichmentConfig     `yaml:"enrichment"`
	Metrics        MetricsConfig        `yaml:"metrics"`
	CORS           CORSConfig           `yaml:"cors"`
}
