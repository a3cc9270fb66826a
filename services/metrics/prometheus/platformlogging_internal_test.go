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
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPlatformLoggingAvailability(t *testing.T) {
	s := &Service{}
	require.NoError(t, s.setupPlatformLoggingMetrics())

	s.PlatformLoggingAvailability("noop", false, false)
	require.Equal(t, float64(0), testutil.ToFloat64(s.loggingAvailable.WithLabelValues("noop")))
	require.Equal(t, float64(0), testutil.ToFloat64(s.gmpAppIDAvailable.WithLabelValues("noop")))

	s.PlatformLoggingAvailability("mock", true, true)
	require.Equal(t, float64(1), testutil.ToFloat64(s.loggingAvailable.WithLabelValues("mock")))
	require.Equal(t, float64(1), testutil.ToFloat64(s.gmpAppIDAvailable.WithLabelValues("mock")))

	// Setting up a second time reuses the registered collectors.
	s2 := &Service{}
	require.NoError(t, s2.setupPlatformLoggingMetrics())
	require.Equal(t, float64(1), testutil.ToFloat64(s2.loggingAvailable.WithLabelValues("mock")))
}
