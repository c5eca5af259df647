// Package config centralizes the handful of settings the server and client
// binaries need, parsed from flags with environment-variable overrides,
// following the teacher's preference for explicit constructor parameters
// over package-level globals.
package config

import (
	"flag"
	"os"
)

// Server holds the settings cmd/skipdbd needs.
type Server struct {
	ListenAddr   string
	ScreenHeight uint32
	SeedCount    uint32
	BulkCount    uint32
	WriterCount  int
	RecvBufBytes int
	SendBufBytes int
}

// DefaultServer returns the server's default configuration, matching
// original_source/rustdb/src/bin/srv.rs's bring-up sequence (20 seed
// records, a large bulk load, 10 background writers).
func DefaultServer() Server {
	return Server{
		ListenAddr:   "127.0.0.1:50001",
		ScreenHeight: 10,
		SeedCount:    20,
		BulkCount:    2_000_000,
		WriterCount:  10,
		RecvBufBytes: 1 << 16,
		SendBufBytes: 1 << 20,
	}
}

// ParseServerFlags builds a Server config from command-line flags (and
// SKIPDB_LISTEN_ADDR as an environment override for the listen address).
func ParseServerFlags(args []string) Server {
	cfg := DefaultServer()

	var screenHeight, seedCount, bulkCount uint
	fs := flag.NewFlagSet("skipdbd", flag.ContinueOnError)
	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "UDP address to bind")
	fs.UintVar(&screenHeight, "screen-height", uint(cfg.ScreenHeight), "screen height setting (stored in the config; the server does not read it)")
	fs.UintVar(&seedCount, "seed", uint(cfg.SeedCount), "number of records to seed before accepting traffic")
	fs.UintVar(&bulkCount, "bulk", uint(cfg.BulkCount), "number of records to bulk-load in the demo's second stage")
	fs.IntVar(&cfg.WriterCount, "writers", cfg.WriterCount, "number of background writer goroutines in demo mode")
	_ = fs.Parse(args)

	cfg.ScreenHeight = uint32(screenHeight)
	cfg.SeedCount = uint32(seedCount)
	cfg.BulkCount = uint32(bulkCount)

	if addr := os.Getenv("SKIPDB_LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}

	return cfg
}

// Client holds the settings cmd/skipdbc needs.
type Client struct {
	ServerAddr   string
	ScreenHeight uint32
}

// DefaultClient returns the client's default configuration.
func DefaultClient() Client {
	return Client{
		ServerAddr:   "127.0.0.1:50001",
		ScreenHeight: 10,
	}
}

// ParseClientFlags builds a Client config from command-line flags.
func ParseClientFlags(args []string) Client {
	cfg := DefaultClient()

	fs := flag.NewFlagSet("skipdbc", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddr, "server", cfg.ServerAddr, "UDP address of the skipdbd server")
	_ = fs.Parse(args)

	if addr := os.Getenv("SKIPDB_SERVER_ADDR"); addr != "" {
		cfg.ServerAddr = addr
	}

	return cfg
}
