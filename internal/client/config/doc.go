// Package config loads runtime configuration for the cofund CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//	-k string   fingerprint cache backend: sqlite or bolt
//	-f string   local data directory
//
// # File schema
//
// Intervals use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	server_endpoint_addr: 127.0.0.1:50051
//	online_check_interval: 3s
//	cache_backend: bolt
//	data_dir: .cofund
package config
