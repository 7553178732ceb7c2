package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cofund/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Unknown arguments are dropped by flagx.FilterArgs before parsing.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-k", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.CacheBackend, "k", cfg.CacheBackend, "fingerprint cache backend (sqlite|bolt)")
	fs.StringVar(&cfg.DataDir, "f", cfg.DataDir, "local data directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if cfg.CacheBackend != CacheSQLite && cfg.CacheBackend != CacheBolt {
		panic(fmt.Sprintf("unknown cache backend %q", cfg.CacheBackend))
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
