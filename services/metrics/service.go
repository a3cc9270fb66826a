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

// Package metrics tracks the platform logging capabilities in use.
package metrics

// Service is the generic metrics service.
type Service interface {
	// Presenter provides the presenter for this service.
	Presenter() string
}

// PlatformLoggingMonitor provides methods to monitor platform logging.
type PlatformLoggingMonitor interface {
	// PlatformLoggingAvailability is called when the availability of a platform logging implementation is known.
	PlatformLoggingAvailability(impl string, loggingAvailable bool, gmpAppIDAvailable bool)
}
