package config

import (
	"os"
	"time"
)

// Cache backends for locally observed fingerprints.
const (
	CacheSQLite = "sqlite"
	CacheBolt   = "bolt"
)

// Config holds runtime settings for the cofund CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - CacheBackend: where observed fingerprints are kept (sqlite or bolt).
//   - DataDir: directory holding the local database and cache files.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	CacheBackend        string
	DataDir             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.CacheBackend = CacheSQLite
	c.DataDir = ".cofund"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
