package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://api:8080", "-d", "x.db", "-t", "5", "-l", "debug"},
			expected: &Config{
				APIBaseURL: "http://api:8080", DatabasePath: "x.db",
				RequestTimeout: 5 * time.Second, LogLevel: "debug",
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-e", ".env", "-a", "http://api"},
			expected: &Config{
				APIBaseURL: "http://api", RequestTimeout: 10 * time.Second,
			},
		},
		{
			name:     "timeout untouched without -t",
			args:     []string{"-l", "warn"},
			expected: &Config{RequestTimeout: 10 * time.Second, LogLevel: "warn"},
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{RequestTimeout: 10 * time.Second}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
