package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/insurance-backend/internal/platform/envutil"
)

const (
	defaultVehicleAddr    = ":8080"
	defaultInsuranceAddr  = ":8081"
	defaultVehicleBaseURL = "http://localhost:8080"
	defaultVehicleTimeout = 5 * time.Second
	defaultConcurrency    = 8
)

// UnmarshalYAML accepts duration strings like "5s" or integer nanoseconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	s := strings.TrimSpace(node.Value)
	if s == "" || s == "null" || s == "~" {
		d.Duration = 0
		return nil
	}
	if node.Tag == "!!int" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("duration must be a string like \"5s\" or int nanoseconds: %w", err)
		}
		d.Duration = time.Duration(n)
		return nil
	}
	dd, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration must be a string like \"5s\" or int nanoseconds: %w", err)
	}
	d.Duration = dd
	return nil
}

func defaultConfig(service Service) *Config {
	addr := defaultVehicleAddr
	if service == ServiceInsurance {
		addr = defaultInsuranceAddr
	}
	return &Config{
		Env:         "development",
		ServiceName: string(service) + "-service",
		HTTP: HTTPConfig{
			Addr:              addr,
			ReadHeaderTimeout: Duration{Duration: 5 * time.Second},
			IdleTimeout:       Duration{Duration: 2 * time.Minute},
			ShutdownTimeout:   Duration{Duration: 15 * time.Second},
		},
		VehicleService: VehicleServiceConfig{
			BaseURL: defaultVehicleBaseURL,
			Timeout: Duration{Duration: defaultVehicleTimeout},
		},
		Enrichment: EnrichmentConfig{Concurrency: defaultConcurrency},
		Metrics:    MetricsConfig{Enabled: true},
		CORS:       CORSConfig{AllowOrigins: []string{"*"}},
	}
}

// Load builds the configuration for service: defaults, then the optional YAML file
// (IB_CONFIG_PATH or ./config/config.yaml), then environment overrides.
func Load(service Service) (*Config, error) {
	switch service {
	case ServiceVehicle, ServiceInsurance:
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}
	cfg := defaultConfig(service)

	cfgPath := strings.TrimSpace(os.Getenv("IB_CONFIG_PATH"))
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.yaml")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}
	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, err
		}
		// Decoding onto the defaults keeps any field the file leaves out.
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", cfgPath, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.normalize(service); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = envutil.String("LOG_MODE", cfg.Env)
	cfg.ServiceName = envutil.String("IB_SERVICE_NAME", cfg.ServiceName)
	cfg.HTTP.Addr = envutil.String("IB_HTTP_ADDR", cfg.HTTP.Addr)
	cfg.SeedPath = envutil.String("IB_SEED_PATH", cfg.SeedPath)
	cfg.VehicleService.BaseURL = envutil.String("IB_VEHICLE_BASE_URL", cfg.VehicleService.BaseURL)
	cfg.VehicleService.Timeout.Duration = envutil.Duration("IB_VEHICLE_TIMEOUT", cfg.VehicleService.Timeout.Duration)
	cfg.Enrichment.Concurrency = envutil.Int("IB_ENRICH_CONCURRENCY", cfg.Enrichment.Concurrency)
	cfg.Metrics.Enabled = envutil.Bool("METRICS_ENABLED", cfg.Metrics.Enabled)
	if origins := envutil.CSV("IB_CORS_ORIGINS"); origins != nil {
		cfg.CORS.AllowOrigins = origins
	}
}

func (cfg *Config) normalize(service Service) error {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "development"
	}
	if strings.TrimSpace(cfg.ServiceName) == "" {
		cfg.ServiceName = string(service) + "-service"
	}
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		cfg.HTTP.Addr = defaultConfig(service).HTTP.Addr
	}
	if cfg.HTTP.ShutdownTimeout.Duration <= 0 {
		cfg.HTTP.ShutdownTimeout.Duration = 15 * time.Second
	}
	cfg.SeedPath = strings.TrimSpace(cfg.SeedPath)
	for _, o := range cfg.CORS.AllowOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("cors origin %q must be \"*\" or start with http:// or https://", o)
		}
	}

	if service != ServiceInsurance {
		return nil
	}

	base := strings.TrimRight(strings.TrimSpace(cfg.VehicleService.BaseURL), "/")
	if base == "" {
		return errors.New("vehicle_service.base_url is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("vehicle_service.base_url %q is not an absolute URL", base)
	}
	cfg.VehicleService.BaseURL = base
	if cfg.VehicleService.Timeout.Duration < 0 {
		return errors.New("vehicle_service.timeout must not be negative")
	}
	if cfg.VehicleService.Timeout.Duration == 0 {
		cfg.VehicleService.Timeout.Duration = defaultVehicleTimeout
	}
	if cfg.Enrichment.Concurrency < 0 {
		return errors.New("enrichment.concurrency must not be negative")
	}
	if cfg.Enrichment.Concurrency == 0 {
		cfg.Enrichment.Concurrency = defaultConcurrency
	}
	return nil
}
