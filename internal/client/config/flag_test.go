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
		{name: "all flags", args: []string{"-a", "127.0.0.1:9090", "-i", "10", "-k", "bolt", "-f", "/tmp/cf"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", OnlineCheckInterval: 10 * time.Second,
				CacheBackend: CacheBolt, DataDir: "/tmp/cf"}},
		{name: "foreign flags ignored", args: []string{"-c", "client.yaml", "-x", "1", "-k", "sqlite"},
			expected: &Config{CacheBackend: CacheSQLite}},
		{name: "incorrect check interval", args: []string{"-a", "127.0.0.1:9090", "-i", "abc"}, expectPanic: true},
		{name: "unknown backend", args: []string{"-k", "redis"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{CacheBackend: CacheSQLite}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
