package config

import "time"

const (
	TransportGRPC   = "grpc"
	TransportSocket = "socket"
)

// Config holds runtime settings for the GophChat terminal client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the server endpoint for Transport.
//   - Transport: "grpc" or "socket".
//   - RefreshInterval: how often the socket client polls for new messages.
//     The gRPC client receives messages over a stream and ignores it.
type Config struct {
	ServerEndpointAddr string
	Transport          string
	RefreshInterval    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.Transport = TransportGRPC
	c.RefreshInterval = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
