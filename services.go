// Copyright © 2026 Attestant Limited.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/attestantio/platformlogging/services/metrics"
	nullmetrics "github.com/attestantio/platformlogging/services/metrics/null"
	prometheusmetrics "github.com/attestantio/platformlogging/services/metrics/prometheus"
	"github.com/attestantio/platformlogging/services/platformlogging"
	noopplatformlogging "github.com/attestantio/platformlogging/services/platformlogging/noop"
	"github.com/attestantio/platformlogging/util"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// startServices starts the monitor and the platform logging service, and reports the capability in use.
func startServices(ctx context.Context) (platformlogging.Service, error) {
	ctx, span := otel.Tracer("attestantio.platformlogging").Start(ctx, "startServices", trace.WithAttributes(
		attribute.String("style", viper.GetString("platformlogging.style")),
	))
	defer span.End()

	log.Trace().Msg("Starting metrics service")
	monitor, err := startMonitor(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start metrics service")
	}

	log.Trace().Msg("Starting platform logging service")
	platformLogging, impl, err := startPlatformLogging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start platform logging service")
	}

	reportCapability(impl, platformLogging, monitor)

	return platformLogging, nil
}

// startMonitor starts the metrics service.
func startMonitor(ctx context.Context) (metrics.Service, error) {
	listenAddress := viper.GetString("metrics.prometheus.listen-address")
	if listenAddress == "" {
		log.Debug().Msg("No metrics service supplied; monitor not starting")
		return nullmetrics.New(), nil
	}

	params := []prometheusmetrics.Parameter{
		prometheusmetrics.WithLogLevel(util.LogLevel("metrics.prometheus")),
		prometheusmetrics.WithAddress(listenAddress),
	}
	if timeout := metricsReadHeaderTimeout(); timeout != 0 {
		params = append(params, prometheusmetrics.WithTimeout(timeout))
	}

	monitor, err := prometheusmetrics.New(ctx, params...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start prometheus metrics service")
	}
	log.Info().Str("listen_address", listenAddress).Msg("Started prometheus metrics service")

	return monitor, nil
}

// metricsReadHeaderTimeout returns the configured read header timeout for the metrics server, or 0 if not set.
// It does not fall back to the general timeout.
func metricsReadHeaderTimeout() time.Duration {
	return viper.GetDuration("metrics.prometheus.read-header-timeout")
}

// startPlatformLogging selects the platform logging implementation, returning it and its name.
func startPlatformLogging(_ context.Context) (platformlogging.Service, string, error) {
	style := viper.GetString("platformlogging.style")
	switch style {
	case "", "noop":
		log.Debug().Msg("Starting no-op platform logging")
		return noopplatformlogging.New(), "noop", nil
	default:
		return nil, "", fmt.Errorf("unknown platform logging style %q", style)
	}
}

// reportCapability logs the capability of the platform logging service and passes it to the monitor.
func reportCapability(impl string, svc platformlogging.Service, monitor metrics.Service) {
	capability := platformlogging.CapabilityOf(svc)

	log.Info().
		Str("impl", impl).
		Bool("logging_available", capability.LoggingAvailable).
		Bool("gmp_app_id_available", capability.GmpAppIDAvailable).
		Msg("Platform logging capability")
	if capability.UserAgent != "" {
		log.Trace().Str("user_agent", capability.UserAgent).Msg("Platform user agent")
	}

	if platformLoggingMonitor, isMonitor := monitor.(metrics.PlatformLoggingMonitor); isMonitor {
		platformLoggingMonitor.PlatformLoggingAvailability(impl, capability.LoggingAvailable, capability.GmpAppIDAvailable)
	}
}
