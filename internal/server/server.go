// Package server implements the single-reader UDP dispatcher: decode a
// fixed-size request datagram, take the table's read lock for the duration
// of the fetch, and send back one reply datagram. Mutations (add/remove/
// update) are not part of this package: they are table.Table methods that
// take the table's write lock, driven by cmd/skipdbd's demo writers, not by
// the dispatch loop.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/vacore/skipdb/internal/metrics"
	"github.com/vacore/skipdb/internal/table"
	"github.com/vacore/skipdb/internal/wire"
)

// Server is the UDP request dispatcher.
type Server struct {
	table    *table.Table
	conn     *net.UDPConn
	counters *metrics.Counters
	log      *slog.Logger
}

// New wraps an already-bound UDP connection as a dispatcher over t.
func New(t *table.Table, conn *net.UDPConn, counters *metrics.Counters, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{table: t, conn: conn, counters: counters, log: log}
}

// Addr returns the listener's local address, useful when the server was
// bound to port 0 for testing.
func (s *Server) Addr() net.Addr {
	return s.conn.LocalAddr()
}

// Serve runs the single-goroutine receive loop until ctx is cancelled or
// the socket is closed. It never returns a non-nil error for an ordinary
// shutdown (ctx cancellation closing the conn).
func (s *Server) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.conn.Close()
	}()

	// One byte of headroom: an oversized datagram then reads back longer
	// than ReqSize and is rejected by DecodeRequest rather than truncated.
	buf := make([]byte, wire.ReqSize+1)
	for {
		n, addr, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Warn("skipdb: recv failed, dropping", "err", err)
			continue
		}

		resp := s.handle(buf[:n])

		if s.counters != nil {
			s.counters.Inc(metrics.Fetch)
		}

		if _, err := s.conn.WriteToUDP(resp, addr); err != nil {
			s.log.Warn("skipdb: reply send failed", "peer", addr, "err", err)
		}
	}
}

// handle decodes one request datagram and returns the exact bytes to send
// back, matching spec.md §4.4's datagram-to-datagram contract: a malformed
// datagram gets an ok=false header with no payload, never a dropped reply.
func (s *Server) handle(datagram []byte) []byte {
	req, ok := wire.DecodeRequest(datagram)
	if !ok {
		return wire.EncodeResponse(table.FetchResponse{OK: false})
	}

	resp := s.table.Fetch(req)
	return wire.EncodeResponse(resp)
}
