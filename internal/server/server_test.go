package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/vacore/skipdb/internal/table"
	"github.com/vacore/skipdb/internal/wire"
)

func TestServeRoundTrip(t *testing.T) {
	tb := table.New()
	for id := uint32(0); id < 25; id++ {
		if err := tb.Add(table.Record{ID: id, Num: int32(id)}); err != nil {
			t.Fatalf("Add(%d): %v", id, err)
		}
	}

	addr, err := net.ResolveUDPAddr("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("ResolveUDPAddr: %v", err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		t.Fatalf("ListenUDP: %v", err)
	}

	srv := New(tb, conn, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	client, err := net.DialUDP("udp", nil, srv.Addr().(*net.UDPAddr))
	if err != nil {
		t.Fatalf("DialUDP: %v", err)
	}
	defer client.Close()

	req := table.FetchRequest{Col: table.Id, N: 10, CS: 0, NS: 1}
	if _, err := client.Write(wire.EncodeRequest(req)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := client.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline: %v", err)
	}
	buf := make([]byte, wire.RespHeaderSize+10*wire.RecordSize)
	n, err := client.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	resp, ok := wire.DecodeResponse(buf[:n])
	if !ok {
		t.Fatal("DecodeResponse reported not ok")
	}
	if !resp.OK {
		t.Fatal("expected ok=true")
	}
	if len(resp.Records) != 10 {
		t.Fatalf("len(Records) = %d, want 10", len(resp.Records))
	}
	for i, r := range resp.Records {
		if r.ID != uint32(i) {
			t.Errorf("Records[%d].ID = %d, want %d", i, r.ID, i)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned error on shutdown: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after context cancellation")
	}
}

func TestServeMalformedDatagram(t *testing.T) {
	tb := table.New()
	addr, _ := net.ResolveUDPAddr("udp", "127.0.0.1:0")
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		t.Fatalf("ListenUDP: %v", err)
	}

	srv := New(tb, conn, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go srv.Serve(ctx)

	client, err := net.DialUDP("udp", nil, srv.Addr().(*net.UDPAddr))
	if err != nil {
		t.Fatalf("DialUDP: %v", err)
	}
	defer client.Close()

	if _, err := client.Write([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := client.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline: %v", err)
	}
	buf := make([]byte, 64)
	n, err := client.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	resp, ok := wire.DecodeResponse(buf[:n])
	if !ok {
		t.Fatal("DecodeResponse reported not ok")
	}
	if resp.OK {
		t.Fatal("expected ok=false for a malformed request datagram")
	}
}
