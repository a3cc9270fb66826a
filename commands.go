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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/attestantio/platformlogging/services/platformlogging"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// runCommands runs any one-shot commands, returning true if the process should exit.
func runCommands(ctx context.Context, out io.Writer) (bool, error) {
	if viper.GetBool("version") {
		fmt.Fprintf(out, "%s\n", ReleaseVersion)
		return true, nil
	}

	if viper.GetBool("show-capabilities") {
		return true, showCapabilities(ctx, out)
	}

	return false, nil
}

// showCapabilities writes the capability of the configured platform logging service as JSON.
func showCapabilities(ctx context.Context, out io.Writer) error {
	svc, impl, err := startPlatformLogging(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to start platform logging service")
	}

	data, err := json.Marshal(struct {
		Impl string `json:"impl"`
		*platformlogging.Capability
	}{
		Impl:       impl,
		Capability: platformlogging.CapabilityOf(svc),
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal capability")
	}

	fmt.Fprintf(out, "%s\n", string(data))

	return nil
}
