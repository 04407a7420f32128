// Package config loads runtime configuration for the GophChat terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the server
//	-p string   transport, grpc or socket
//	-i int      socket refresh interval (milliseconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:2048",
//	  "transport": "socket",
//	  "refresh_interval": "500ms"
//	}
package config
