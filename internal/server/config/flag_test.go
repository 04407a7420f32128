package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-s", "127.0.0.1:2049", "-m", "127.0.0.1:8082",
			"-t", "30", "-l", "10", "-i", "50", "-f", "4096", "-v", "debug", "-o", "zap",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrGRPC:      "127.0.0.1:9090",
				EndpointAddrSocket:    "127.0.0.1:2049",
				EndpointAddrStatus:    "127.0.0.1:8082",
				TokenValidityDuration: 30 * time.Minute,
				ListAccountsLimit:     10,
				DeliveryPollInterval:  50 * time.Millisecond,
				SocketFrameSize:       4096,
				LogLevel:              "debug",
				LogFormat:             "zap",
			}},
		{name: "config flag is ignored", args: []string{"cmd", "-c", "some.json", "-l", "5"},
			expected: &Config{ListAccountsLimit: 5}},
		{name: "bad int panics", args: []string{"cmd", "-l", "many"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
