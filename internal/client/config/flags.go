package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the server
//	-p string   transport: grpc or socket
//	-i int      socket refresh interval in milliseconds
//
// An unknown transport panics like any other malformed flag.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.Transport, "p", cfg.Transport, "transport (grpc, socket)")
	refreshInterval := fs.Int("i", int(cfg.RefreshInterval.Milliseconds()), "refresh interval (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	switch cfg.Transport {
	case TransportGRPC, TransportSocket:
	default:
		panic(fmt.Sprintf("unknown transport %q", cfg.Transport))
	}

	cfg.RefreshInterval = time.Duration(*refreshInterval) * time.Millisecond
}
