// Package genrecord generates demo records and drives the staged bring-up
// sequence a freshly started server uses to have something to serve:
// seed a handful of records, bulk-load many more, then keep a population
// of background writers randomly adding, removing, and updating records so
// a connected client has something changing to watch. Ported from
// original_source/rustdb/src/bin/srv.rs's simple_init / bulk-fill / writer
// threads, which the distilled spec.md dropped.
package genrecord

import (
	"context"
	"math/rand"
	"time"

	"github.com/vacore/skipdb/internal/metrics"
	"github.com/vacore/skipdb/internal/table"
)

// Gen returns a record with the given id and random Num/Str fields, the Go
// equivalent of original_source's Record::gen.
func Gen(id uint32) table.Record {
	rec := table.Record{ID: id}
	rec.Num = int32(rand.Intn(2_000_001) - 1_000_000)
	for i := range rec.Str {
		rec.Str[i] = byte('a' + rand.Intn(26))
	}
	return rec
}

// Seed adds count records with ids [start, start+count) to t.
func Seed(t *table.Table, start, count uint32) error {
	for id := start; id < start+count; id++ {
		if err := t.Add(Gen(id)); err != nil {
			return err
		}
	}
	return nil
}

// RunWriters launches n background goroutines, each looping forever (until
// ctx is cancelled) issuing a random add, remove, or update at its own
// randomized rate, and reports every operation it successfully performs to
// counters. It returns once all writer goroutines have exited.
func RunWriters(ctx context.Context, t *table.Table, n int, idSpace uint32, counters *metrics.Counters) {
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			runWriter(ctx, t, idSpace, counters)
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
}

func runWriter(ctx context.Context, t *table.Table, idSpace uint32, counters *metrics.Counters) {
	freq := 3 + rand.Intn(98) // operations/sec, in [3,100], matching srv.rs's thread_rng().gen_range(3..=100)
	interval := time.Duration(float64(time.Second) / float64(freq))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			id := uint32(rand.Int63n(int64(idSpace)))
			switch rand.Intn(3) {
			case 0:
				if t.Add(Gen(id)) == nil {
					counters.Inc(metrics.Add)
				}
			case 1:
				if t.Remove(id) == nil {
					counters.Inc(metrics.Remove)
				}
			case 2:
				if t.Update(Gen(id)) == nil {
					counters.Inc(metrics.Update)
				}
			}
		}
	}
}
