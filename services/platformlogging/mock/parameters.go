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

type parameters struct {
	loggingAvailable  bool
	userAgent         string
	heartbeat         string
	gmpAppIDAvailable bool
	gmpAppID          string
}

// Parameter is the interface for service parameters.
type Parameter interface {
	apply(*parameters)
}

type parameterFunc func(*parameters)

func (f parameterFunc) apply(p *parameters) {
	f(p)
}

// WithLoggingAvailable sets if logging is available.
func WithLoggingAvailable(available bool) Parameter {
	return parameterFunc(func(p *parameters) {
		p.loggingAvailable = available
	})
}

// WithUserAgent sets the user agent.
func WithUserAgent(userAgent string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.userAgent = userAgent
	})
}

// WithHeartbeat sets the heartbeat.
func WithHeartbeat(heartbeat string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.heartbeat = heartbeat
	})
}

// WithGmpAppID sets the GMP app ID, and marks it as available.
func WithGmpAppID(gmpAppID string) Parameter {
	return parameterFunc(func(p *parameters) {
		p.gmpAppID = gmpAppID
		p.gmpAppIDAvailable = true
	})
}

func parseParameters(params ...Parameter) *parameters {
	parameters := parameters{}
	for _, p := range params {
		if p != nil {
			p.apply(&parameters)
		}
	}

	return &parameters
}
