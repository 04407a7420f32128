package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
	"github.com/dmitrijs2005/gophchat/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// use timex.Duration so they may be strings like "500ms" or integer
// nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	Transport          string         `json:"transport"`
	RefreshInterval    timex.Duration `json:"refresh_interval"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config. Missing keys keep their current value. Read or unmarshal errors
// panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.Transport != "" {
		cfg.Transport = jc.Transport
	}
	if jc.RefreshInterval.Duration > 0 {
		cfg.RefreshInterval = jc.RefreshInterval.Duration
	}
}
