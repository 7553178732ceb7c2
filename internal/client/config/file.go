package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cofund/internal/flagx"
	"github.com/dmitrijs2005/cofund/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO read from JSON or YAML config files. Zero values
// leave the corresponding Config field untouched.
type FileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	CacheBackend        string         `json:"cache_backend" yaml:"cache_backend"`
	DataDir             string         `json:"data_dir" yaml:"data_dir"`
}

// parseFile overlays Config with values from the file named by -c/-config.
// Read or decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch flagx.FormatOf(path) {
	case flagx.FormatYAML:
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.CacheBackend != "" {
		cfg.CacheBackend = fc.CacheBackend
	}
	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
}
