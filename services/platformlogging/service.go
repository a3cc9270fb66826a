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

// Package platformlogging defines the capabilities a platform logging
// backend offers to the SDK: whether logging is available, the user agent and
// heartbeat to attach to requests, and the GMP app ID.
package platformlogging

// Service is the platform logging service.
type Service interface {
	LoggingAvailabilityProvider
	UserAgentProvider
	HeartbeatProvider
	GmpAppIDProvider
}

// LoggingAvailabilityProvider is the interface for reporting if platform logging is available.
type LoggingAvailabilityProvider interface {
	// IsLoggingAvailable returns true if the platform can accept logging.
	IsLoggingAvailable() bool
}

// UserAgentProvider is the interface for providing a user agent.
type UserAgentProvider interface {
	// UserAgent provides the user agent.
	UserAgent() string
}

// HeartbeatProvider is the interface for providing a heartbeat.
type HeartbeatProvider interface {
	// Heartbeat provides the heartbeat payload.
	Heartbeat() string
}

// GmpAppIDProvider is the interface for providing a GMP app ID.
type GmpAppIDProvider interface {
	// IsGmpAppIDAvailable returns true if a GMP app ID is available.
	IsGmpAppIDAvailable() bool
	// GmpAppID provides the GMP app ID.
	GmpAppID() string
}
