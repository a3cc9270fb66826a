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

// Package logger provides helpers for checking log output in tests.
package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// Entry is a captured log entry.
type Entry struct {
	Level   zerolog.Level
	Message string
}

// LogCapture allows testing code to query log output.
type LogCapture struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLogCapture captures logs for querying.
// Loggers derived from the global logger after this call are captured.
func NewLogCapture() *LogCapture {
	c := &LogCapture{
		entries: make([]Entry, 0),
	}
	zerologger.Logger = zerologger.Logger.Hook(c)

	return c
}

// Run is the hook to capture log entries.  It also stops the entry from being printed.
func (c *LogCapture) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Level: level, Message: msg})
	e.Discard()
}

// AssertHasEntry checks if there is a log entry with the given message.
func (c *LogCapture) AssertHasEntry(t *testing.T, msg string) {
	t.Helper()
	c.assertHas(t, msg, func(entry Entry) bool {
		return entry.Message == msg
	})
}

// AssertHasEntryAtLevel checks if there is a log entry with the given message at the given level.
func (c *LogCapture) AssertHasEntryAtLevel(t *testing.T, level zerolog.Level, msg string) {
	t.Helper()
	c.assertHas(t, fmt.Sprintf("%s (%s)", msg, level), func(entry Entry) bool {
		return entry.Level == level && entry.Message == msg
	})
}

func (c *LogCapture) assertHas(t *testing.T, description string, match func(Entry) bool) {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	messages := make([]string, 0, len(c.entries))
	for i := range c.entries {
		if match(c.entries[i]) {
			return
		}
		messages = append(messages, fmt.Sprintf("%s: %s", c.entries[i].Level, c.entries[i].Message))
	}
	assert.Fail(t, fmt.Sprintf("Missing log message %q", description), strings.Join(messages, "\n"))
}

// Entries returns the messages of all log entries.
func (c *LogCapture) Entries() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	messages := make([]string, len(c.entries))
	for i := range c.entries {
		messages[i] = c.entries[i].Message
	}

	return messages
}

// ClearEntries removes all log entries.
func (c *LogCapture) ClearEntries() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make([]Entry, 0)
}
