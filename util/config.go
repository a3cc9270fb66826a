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

package util

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// resolveKey returns the most specific configuration key for the given path.
// For a path "a.b.c" and key "timeout" it tries "a.b.c.timeout", "a.b.timeout",
// "a.timeout" and finally "timeout".
func resolveKey(path string, key string) string {
	for path != "" {
		candidate := fmt.Sprintf("%s.%s", path, key)
		if viper.GetString(candidate) != "" {
			return candidate
		}
		lastPeriod := strings.LastIndex(path, ".")
		if lastPeriod == -1 {
			break
		}
		path = path[:lastPeriod]
	}

	return key
}
