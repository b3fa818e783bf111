package config

import (
	chargedomain "github.com/stayloop/leasebill/internal/charge/domain"
	"github.com/stayloop/leasebill/internal/observability/logger"
	"github.com/stayloop/leasebill/internal/observability/metrics"
	"github.com/stayloop/leasebill/internal/observability/tracing"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(func(cfg Config) chargedomain.FeeConfig {
		return cfg.FeeConfig()
	}),
	fx.Provide(func(cfg Config) logger.Config {
		return logger.Config{
			Environment: cfg.Environment,
			Level:       cfg.Log.Level,
		}
	}),
	fx.Provide(func(cfg Config) metrics.Config {
		return metrics.Config{
			ServiceName: "leasebill",
			Environment: cfg.Environment,
		}
	}),
	fx.Provide(func(cfg Config) tracing.Config {
		return tracing.Config{
			Enabled:          cfg.Tracing.Enabled,
			ServiceName:      "leasebill",
			Environment:      cfg.Environment,
			ExporterEndpoint: cfg.Tracing.Endpoint,
			ExporterProtocol: cfg.Tracing.Protocol,
			SamplingRatio:    cfg.Tracing.SamplingRatio,
		}
	}),
)
