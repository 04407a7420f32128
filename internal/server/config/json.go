package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
	"github.com/dmitrijs2005/gophchat/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations use
// timex.Duration so both "1h" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	EndpointAddrSocket    string         `json:"endpoint_addr_socket"`
	EndpointAddrStatus    *string        `json:"endpoint_addr_status"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	ListAccountsLimit     int            `json:"list_accounts_limit"`
	DeliveryPollInterval  timex.Duration `json:"delivery_poll_interval"`
	SocketFrameSize       int            `json:"socket_frame_size"`
	LogLevel              string         `json:"log_level"`
	LogFormat             string         `json:"log_format"`
}

// parseJson overlays config with the JSON file named by -c or -config.
// Absent or zero-valued keys leave the current value alone, except
// endpoint_addr_status which may be set to "" to disable the endpoint.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrSocket, c.EndpointAddrSocket)
	if c.EndpointAddrStatus != nil {
		config.EndpointAddrStatus = *c.EndpointAddrStatus
	}
	if c.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.ListAccountsLimit > 0 {
		config.ListAccountsLimit = c.ListAccountsLimit
	}
	if c.DeliveryPollInterval.Duration > 0 {
		config.DeliveryPollInterval = c.DeliveryPollInterval.Duration
	}
	if c.SocketFrameSize > 0 {
		config.SocketFrameSize = c.SocketFrameSize
	}
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
