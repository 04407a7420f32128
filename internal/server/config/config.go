// Package config handles configuration for the chat server, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the GophChat server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC transport.
//   - EndpointAddrSocket: bind address for the raw-socket transport.
//   - EndpointAddrStatus: bind address for the HTTP status endpoint; empty disables it.
//   - TokenValidityDuration: how long an issued auth token stays valid.
//   - ListAccountsLimit: maximum number of names one ListAccounts returns.
//   - DeliveryPollInterval: inbox poll period of streaming delivery.
//   - SocketFrameSize: read buffer size. Longer frames span several reads.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	EndpointAddrGRPC      string
	EndpointAddrSocket    string
	EndpointAddrStatus    string
	TokenValidityDuration time.Duration
	ListAccountsLimit     int
	DeliveryPollInterval  time.Duration
	SocketFrameSize       int
	LogLevel              string
	LogFormat             string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrSocket = ":2048"
	c.EndpointAddrStatus = ":8081"
	c.TokenValidityDuration = 1 * time.Hour
	c.ListAccountsLimit = 100
	c.DeliveryPollInterval = 200 * time.Millisecond
	c.SocketFrameSize = 1024
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
