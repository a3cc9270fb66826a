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
	"github.com/prometheus/client_golang/prometheus"
)

func (s *Service) setupPlatformLoggingMetrics() error {
	var err error

	s.loggingAvailable, err = registerGaugeVec(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "platformlogging",
		Subsystem: "capability",
		Name:      "logging_available",
		Help:      "1 if the platform logging implementation can accept logging.",
	}, []string{"impl"}))
	if err != nil {
		return err
	}

	s.gmpAppIDAvailable, err = registerGaugeVec(prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "platformlogging",
		Subsystem: "capability",
		Name:      "gmp_app_id_available",
		Help:      "1 if the platform logging implementation has a GMP app ID.",
	}, []string{"impl"}))
	if err != nil {
		return err
	}

	return nil
}

// PlatformLoggingAvailability is called when the availability of a platform logging implementation is known.
func (s *Service) PlatformLoggingAvailability(impl string, loggingAvailable bool, gmpAppIDAvailable bool) {
	s.loggingAvailable.WithLabelValues(impl).Set(boolToFloat(loggingAvailable))
	s.gmpAppIDAvailable.WithLabelValues(impl).Set(boolToFloat(gmpAppIDAvailable))
}

func boolToFloat(val bool) float64 {
	if val {
		return 1
	}

	return 0
}
