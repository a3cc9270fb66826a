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

package platformlogging

// Capability is a point-in-time view of a platform logging service.
type Capability struct {
	LoggingAvailable  bool   `json:"logging_available"`
	UserAgent         string `json:"user_agent"`
	Heartbeat         string `json:"heartbeat"`
	GmpAppIDAvailable bool   `json:"gmp_app_id_available"`
	GmpAppID          string `json:"gmp_app_id"`
}

// CapabilityOf obtains the capability of a service.
// A nil service has no capability.
func CapabilityOf(svc Service) *Capability {
	if svc == nil {
		return &Capability{}
	}

	return &Capability{
		LoggingAvailable:  svc.IsLoggingAvailable(),
		UserAgent:         svc.UserAgent(),
		Heartbeat:         svc.Heartbeat(),
		GmpAppIDAvailable: svc.IsGmpAppIDAvailable(),
		GmpAppID:          svc.GmpAppID(),
	}
}
