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

package noop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/attestantio/platformlogging/services/platformlogging"
	"github.com/attestantio/platformlogging/services/platformlogging/noop"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var errUnexpected = errors.New("unexpected value")

func TestService(t *testing.T) {
	s := noop.New()
	require.NotNil(t, s)
}

func TestValues(t *testing.T) {
	s := noop.New()

	require.False(t, s.IsLoggingAvailable())
	require.Empty(t, s.UserAgent())
	require.Empty(t, s.Heartbeat())
	require.False(t, s.IsGmpAppIDAvailable())
	require.Empty(t, s.GmpAppID())
}

func TestRepeatedCalls(t *testing.T) {
	s := noop.New()

	calls := []func() interface{}{
		func() interface{} { return s.GmpAppID() },
		func() interface{} { return s.IsLoggingAvailable() },
		func() interface{} { return s.Heartbeat() },
		func() interface{} { return s.IsGmpAppIDAvailable() },
		func() interface{} { return s.UserAgent() },
	}
	expected := []interface{}{"", false, "", false, ""}

	for i := 0; i < 100; i++ {
		// Walk the accessors in a different order each time round.
		for j := range calls {
			idx := (i + j*3) % len(calls)
			require.Equal(t, expected[idx], calls[idx]())
		}
	}
}

func TestConcurrentCalls(t *testing.T) {
	shared := noop.New()

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < 32; i++ {
		s := shared
		if i%2 == 0 {
			s = noop.New()
		}
		g.Go(func() error {
			for j := 0; j < 1000; j++ {
				if s.IsLoggingAvailable() || s.IsGmpAppIDAvailable() {
					return errUnexpected
				}
				if s.UserAgent() != "" || s.Heartbeat() != "" || s.GmpAppID() != "" {
					return errUnexpected
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestCapability(t *testing.T) {
	require.Equal(t, &platformlogging.Capability{}, platformlogging.CapabilityOf(noop.New()))
}

func TestInterfaces(t *testing.T) {
	s := noop.New()
	require.Implements(t, (*platformlogging.Service)(nil), s)
	require.Implements(t, (*platformlogging.LoggingAvailabilityProvider)(nil), s)
	require.Implements(t, (*platformlogging.UserAgentProvider)(nil), s)
	require.Implements(t, (*platformlogging.HeartbeatProvider)(nil), s)
	require.Implements(t, (*platformlogging.GmpAppIDProvider)(nil), s)
}
