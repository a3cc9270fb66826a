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

package prometheus_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/attestantio/platformlogging/services/metrics"
	"github.com/attestantio/platformlogging/services/metrics/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	tests := []struct {
		name   string
		params []prometheus.Parameter
		err    string
	}{
		{
			name: "AddressMissing",
			params: []prometheus.Parameter{
				prometheus.WithLogLevel(zerolog.Disabled),
			},
			err: "problem with parameters: no address specified",
		},
		{
			name: "TimeoutZero",
			params: []prometheus.Parameter{
				prometheus.WithLogLevel(zerolog.Disabled),
				prometheus.WithAddress("localhost:0"),
				prometheus.WithTimeout(0),
			},
			err: "problem with parameters: no timeout specified",
		},
		{
			name: "Good",
			params: []prometheus.Parameter{
				prometheus.WithLogLevel(zerolog.Disabled),
				prometheus.WithAddress("localhost:0"),
			},
		},
		{
			name: "GoodAgain",
			params: []prometheus.Parameter{
				prometheus.WithLogLevel(zerolog.Disabled),
				prometheus.WithAddress("localhost:0"),
				prometheus.WithTimeout(time.Second),
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			s, err := prometheus.New(ctx, test.params...)
			if test.err != "" {
				require.EqualError(t, err, test.err)
			} else {
				require.NoError(t, err)
				require.Equal(t, "prometheus", s.Presenter())
			}
		})
	}
}

func TestInterfaces(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := prometheus.New(ctx,
		prometheus.WithLogLevel(zerolog.Disabled),
		prometheus.WithAddress("localhost:0"),
	)
	require.NoError(t, err)
	require.Implements(t, (*metrics.Service)(nil), s)
	require.Implements(t, (*metrics.PlatformLoggingMonitor)(nil), s)
}

func freeAddress(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := listener.Addr().String()
	require.NoError(t, listener.Close())

	return address
}

func fetchMetrics(ctx context.Context, address string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+address+"/metrics", nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func TestServeMetrics(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	address := freeAddress(t)
	s, err := prometheus.New(ctx,
		prometheus.WithLogLevel(zerolog.Disabled),
		prometheus.WithAddress(address),
	)
	require.NoError(t, err)
	s.PlatformLoggingAvailability("noop", false, false)

	var body string
	require.Eventually(t, func() bool {
		var fetchErr error
		body, fetchErr = fetchMetrics(context.Background(), address)
		return fetchErr == nil
	}, 5*time.Second, 10*time.Millisecond)
	require.Contains(t, body, `platformlogging_capability_logging_available{impl="noop"} 0`)
	require.Contains(t, body, `platformlogging_capability_gmp_app_id_available{impl="noop"} 0`)

	cancel()
	require.Eventually(t, func() bool {
		_, err := fetchMetrics(context.Background(), address)
		return err != nil
	}, 5*time.Second, 10*time.Millisecond)
}
