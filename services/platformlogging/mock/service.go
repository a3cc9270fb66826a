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

package mock

import (
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
)

// Service is a mock platform logging service.
type Service struct {
	mutex             deadlock.RWMutex
	loggingAvailable  bool
	userAgent         string
	heartbeat         string
	gmpAppIDAvailable bool
	gmpAppID          string

	calls atomic.Uint64
}

// New creates a new mock platform logging service.
func New(params ...Parameter) *Service {
	parameters := parseParameters(params...)

	return &Service{
		loggingAvailable:  parameters.loggingAvailable,
		userAgent:         parameters.userAgent,
		heartbeat:         parameters.heartbeat,
		gmpAppIDAvailable: parameters.gmpAppIDAvailable,
		gmpAppID:          parameters.gmpAppID,
	}
}

// IsLoggingAvailable returns true if the platform can accept logging.
func (s *Service) IsLoggingAvailable() bool {
	s.calls.Inc()
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.loggingAvailable
}

// UserAgent provides the user agent.
func (s *Service) UserAgent() string {
	s.calls.Inc()
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.userAgent
}

// Heartbeat provides the heartbeat payload.
func (s *Service) Heartbeat() string {
	s.calls.Inc()
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.heartbeat
}

// IsGmpAppIDAvailable returns true if a GMP app ID is available.
func (s *Service) IsGmpAppIDAvailable() bool {
	s.calls.Inc()
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.gmpAppIDAvailable
}

// GmpAppID provides the GMP app ID.
func (s *Service) GmpAppID() string {
	s.calls.Inc()
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.gmpAppID
}

// SetLoggingAvailable sets if logging is available.
func (s *Service) SetLoggingAvailable(available bool) {
	s.mutex.Lock()
	s.loggingAvailable = available
	s.mutex.Unlock()
}

// SetUserAgent sets the user agent.
func (s *Service) SetUserAgent(userAgent string) {
	s.mutex.Lock()
	s.userAgent = userAgent
	s.mutex.Unlock()
}

// SetHeartbeat sets the heartbeat.
func (s *Service) SetHeartbeat(heartbeat string) {
	s.mutex.Lock()
	s.heartbeat = heartbeat
	s.mutex.Unlock()
}

// SetGmpAppID sets the GMP app ID, and marks it as available.
func (s *Service) SetGmpAppID(gmpAppID string) {
	s.mutex.Lock()
	s.gmpAppID = gmpAppID
	s.gmpAppIDAvailable = true
	s.mutex.Unlock()
}

// ClearGmpAppID removes the GMP app ID.
func (s *Service) ClearGmpAppID() {
	s.mutex.Lock()
	s.gmpAppID = ""
	s.gmpAppIDAvailable = false
	s.mutex.Unlock()
}

// Calls returns the number of times an accessor has been called.
func (s *Service) Calls() uint64 {
	return s.calls.Load()
}
