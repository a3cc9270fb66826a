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
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	zerologger "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const licenseFilename = ".licenserc.json"

func main() {
	dir := pflag.String("dir", ".", "root directory of the source tree")
	check := pflag.Bool("check", false, "report files with an incorrect licence header rather than fixing them")
	pflag.Parse()

	license, err := loadLicense(*dir)
	if err != nil {
		zerologger.Fatal().Err(err).Msg("Failed to load licence")
	}

	files, err := goFiles(*dir)
	if err != nil {
		zerologger.Fatal().Err(err).Msg("Failed to walk source tree")
	}

	incorrect := 0
	for _, fileName := range files {
		data, err := os.ReadFile(fileName)
		if err != nil {
			zerologger.Fatal().Str("file", fileName).Err(err).Msg("Failed to read file")
		}
		header, _ := splitHeader(string(data))
		if hasLicense(header, license) {
			continue
		}
		incorrect++
		if *check {
			fmt.Fprintf(os.Stdout, "%s\n", fileName)
			continue
		}
		if err := os.WriteFile(fileName, []byte(applyLicense(string(data), license)), 0o600); err != nil {
			zerologger.Fatal().Str("file", fileName).Err(err).Msg("Failed to update file")
		}
	}

	if *check && incorrect > 0 {
		os.Exit(1)
	}
}

// loadLicense reads the Go licence header lines from the licence configuration in dir.
func loadLicense(dir string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(dir, licenseFilename))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read licence configuration")
	}

	config := map[string][]string{}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "failed to parse licence configuration")
	}

	for pattern, lines := range config {
		if strings.HasSuffix(pattern, ".go") {
			if len(lines) == 0 {
				return nil, errors.New("empty licence for Go files")
			}
			return lines, nil
		}
	}

	return nil, errors.New("no licence for Go files")
}

// goFiles returns the Go files under dir, skipping directories ignored by the Go tool.
func goFiles(dir string) ([]string, error) {
	files := make([]string, 0)
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			name := entry.Name()
			if path != dir && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".go") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// splitHeader splits the contents into the leading comment block and the remainder.
// A comment block directly followed by code is documentation rather than a header.
func splitHeader(contents string) ([]string, string) {
	lines := strings.Split(contents, "\n")
	end := 0
	for end < len(lines) && strings.HasPrefix(lines[end], "//") {
		end++
	}
	if end == 0 || end == len(lines) || lines[end] != "" {
		return nil, contents
	}

	return lines[:end], strings.Join(lines[end:], "\n")
}

// hasLicense returns true if the header matches the licence.
// Copyright lines only need to match up to the year, as files carry their own dates.
func hasLicense(header []string, license []string) bool {
	if len(header) != len(license) {
		return false
	}
	for i := range license {
		if strings.HasPrefix(license[i], "// Copyright") {
			if !strings.HasPrefix(header[i], "// Copyright") {
				return false
			}
			continue
		}
		if header[i] != license[i] {
			return false
		}
	}

	return true
}

// applyLicense replaces any existing header in contents with the licence.
func applyLicense(contents string, license []string) string {
	_, body := splitHeader(contents)
	if !strings.HasPrefix(body, "\n") {
		body = "\n" + body
	}

	return strings.Join(license, "\n") + "\n" + body
}
