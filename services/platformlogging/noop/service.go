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

// Package noop is a platform logging service for platforms without a
// logging backend.
package noop

// Service is a platform logging service that has nothing available.
type Service struct{}

// New creates a new no-op platform logging service.
func New() *Service {
	return &Service{}
}

// IsLoggingAvailable returns true if the platform can accept logging.
func (*Service) IsLoggingAvailable() bool {
	return false
}

// UserAgent provides the user agent.
func (*Service) UserAgent() string {
	return ""
}

// Heartbeat provides the heartbeat payload.
func (*Service) Heartbeat() string {
	return ""
}

// IsGmpAppIDAvailable returns true if a GMP app ID is available.
func (*Service) IsGmpAppIDAvailable() bool {
	return false
}

// GmpAppID provides the GMP app ID.
func (*Service) GmpAppID() string {
	return ""
}
