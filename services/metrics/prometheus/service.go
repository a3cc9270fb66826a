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

package prometheus

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
)

// Service is a metrics service exposing metrics via prometheus.
type Service struct {
	loggingAvailable  *prometheus.GaugeVec
	gmpAppIDAvailable *prometheus.GaugeVec
}

// module-wide log.
var log zerolog.Logger

// New creates a new prometheus metrics service.
func New(ctx context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "metrics").Str("impl", "prometheus").Logger()
	if parameters.logLevel != log.GetLevel() {
		log = log.Level(parameters.logLevel)
	}

	s := &Service{}

	if err := s.setupPlatformLoggingMetrics(); err != nil {
		return nil, errors.Wrap(err, "failed to set up platform logging metrics")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              parameters.address,
		Handler:           mux,
		ReadHeaderTimeout: parameters.timeout,
	}

	log.Trace().Str("metrics_address", parameters.address).Msg("Starting metrics server")
	serverLog := log
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLog.Warn().Str("metrics_address", parameters.address).Err(err).Msg("Failed to run metrics server")
		}
	}()

	go func(ctx context.Context) {
		<-ctx.Done()
		if err := server.Close(); err != nil {
			serverLog.Warn().Err(err).Msg("Failed to close metrics server")
		}
	}(ctx)

	return s, nil
}

// Presenter returns the presenter for the events.
func (*Service) Presenter() string {
	return "prometheus"
}

// registerGaugeVec registers a gauge vector, returning the existing vector if it is already registered.
func registerGaugeVec(vec *prometheus.GaugeVec) (*prometheus.GaugeVec, error) {
	if err := prometheus.Register(vec); err != nil {
		var alreadyRegisteredError prometheus.AlreadyRegisteredError
		if ok := errors.As(err, &alreadyRegisteredError); ok {
			existing, isGaugeVec := alreadyRegisteredError.ExistingCollector.(*prometheus.GaugeVec)
			if !isGaugeVec {
				return nil, errors.New("existing collector is not a gauge vector")
			}
			return existing, nil
		}
		return nil, err
	}

	return vec, nil
}
