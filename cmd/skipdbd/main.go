// Command skipdbd runs the skipdb UDP server: it seeds a table with demo
// records, optionally bulk-loads many more, starts a population of
// background writer goroutines to keep the data moving, and serves Fetch
// requests over UDP until interrupted. Ported from original_source/rustdb/
// src/bin/srv.rs's bring-up sequence.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vacore/skipdb/internal/config"
	"github.com/vacore/skipdb/internal/genrecord"
	"github.com/vacore/skipdb/internal/metrics"
	"github.com/vacore/skipdb/internal/server"
	"github.com/vacore/skipdb/internal/table"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := config.ParseServerFlags(os.Args[1:])
	log.Info("skipdbd: starting", "listen", cfg.ListenAddr, "seed", cfg.SeedCount, "bulk", cfg.BulkCount, "writers", cfg.WriterCount)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	counters := metrics.New()

	t := table.New()
	t.OnRelease(func(rec table.Record) {
		counters.Released()
	})

	if err := genrecord.Seed(t, 0, cfg.SeedCount); err != nil {
		log.Error("skipdbd: seed failed", "err", err)
		os.Exit(1)
	}
	if cfg.BulkCount > 0 {
		log.Info("skipdbd: bulk loading", "count", cfg.BulkCount)
		if err := genrecord.Seed(t, cfg.SeedCount, cfg.BulkCount); err != nil {
			log.Error("skipdbd: bulk load failed", "err", err)
			os.Exit(1)
		}
		log.Info("skipdbd: bulk load complete", "total", t.Len())
	}

	addr, err := net.ResolveUDPAddr("udp", cfg.ListenAddr)
	if err != nil {
		log.Error("skipdbd: invalid listen address", "err", err)
		os.Exit(1)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		log.Error("skipdbd: bind failed", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := server.TuneBuffers(conn, cfg.RecvBufBytes, cfg.SendBufBytes); err != nil {
		log.Warn("skipdbd: socket buffer tuning failed, continuing with defaults", "err", err)
	}

	srv := server.New(t, conn, counters, log)
	log.Info("skipdbd: listening", "addr", srv.Addr())

	idSpace := cfg.SeedCount + cfg.BulkCount
	if idSpace == 0 {
		idSpace = 1
	}

	writersDone := make(chan struct{})
	go func() {
		defer close(writersDone)
		genrecord.RunWriters(ctx, t, cfg.WriterCount, idSpace, counters)
	}()

	go reportMetrics(ctx, counters, log)

	if err := srv.Serve(ctx); err != nil {
		log.Error("skipdbd: serve exited with error", "err", err)
		os.Exit(1)
	}

	<-writersDone
	log.Info("skipdbd: shut down cleanly")
}

// reportMetrics prints a one-line throughput summary once a second, matching
// srv.rs's reporting thread.
func reportMetrics(ctx context.Context, counters *metrics.Counters, log *slog.Logger) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := counters.SnapshotAndReset()
			log.Info("skipdbd: rate/s", "add", s.Add, "remove", s.Remove, "update", s.Update, "fetch", s.Fetch, "released", s.Released)
		}
	}
}
