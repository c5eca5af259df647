package genrecord

import (
	"context"
	"testing"
	"time"

	"github.com/vacore/skipdb/internal/metrics"
	"github.com/vacore/skipdb/internal/table"
)

func TestSeedProducesDistinctSequentialIds(t *testing.T) {
	tb := table.New()
	if err := Seed(tb, 100, 50); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if tb.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", tb.Len())
	}
	resp := tb.Fetch(table.FetchRequest{Col: table.Id, N: 50, CS: 0, NS: 1})
	if len(resp.Records) != 50 {
		t.Fatalf("Fetch returned %d records, want 50", len(resp.Records))
	}
	for i, r := range resp.Records {
		if want := uint32(100 + i); r.ID != want {
			t.Errorf("Records[%d].ID = %d, want %d", i, r.ID, want)
		}
	}
}

func TestRunWritersStopsOnCancel(t *testing.T) {
	tb := table.New()
	if err := Seed(tb, 0, 10); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	counters := metrics.New()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		RunWriters(ctx, tb, 4, 10, counters)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunWriters did not return after context cancellation")
	}
}
