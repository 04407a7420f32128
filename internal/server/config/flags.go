package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophchat/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-s string   raw-socket bind address (e.g., ":2048")
//	-m string   HTTP status bind address, "" disables it
//	-t int      token validity, minutes
//	-l int      ListAccounts result cap
//	-i int      streaming delivery poll interval, milliseconds
//	-f int      socket frame size, bytes
//	-v string   log level
//	-o string   log format: json, text or zap
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs so that -c/-config does not trip it.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-m", "-t", "-l", "-i", "-f", "-v", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrSocket, "s", config.EndpointAddrSocket, "raw socket address and port")
	fs.StringVar(&config.EndpointAddrStatus, "m", config.EndpointAddrStatus, "status endpoint address and port")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.IntVar(&config.ListAccountsLimit, "l", config.ListAccountsLimit, "max accounts per ListAccounts reply")
	pollInterval := fs.Int("i", int(config.DeliveryPollInterval.Milliseconds()), "delivery poll interval (in milliseconds)")
	fs.IntVar(&config.SocketFrameSize, "f", config.SocketFrameSize, "socket frame size (in bytes)")

	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "o", config.LogFormat, "log format (json, text, zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
	config.DeliveryPollInterval = time.Duration(*pollInterval) * time.Millisecond
}
