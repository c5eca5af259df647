package table

import (
	"sync"

	"github.com/vacore/skipdb/internal/skiplist"
	"github.com/vacore/skipdb/internal/skipdberrors"
)

// Table owns the live record set and one order-statistic skip list per
// indexed column. All columns stay in lockstep: every record inserted into
// the table is inserted into every column's index, and every record removed
// from the table is removed from every column's index.
type Table struct {
	mu      sync.RWMutex
	columns [NumCol]*skiplist.List[handle]
	tot     int

	// onRelease, if set, is called exactly once per record, the moment its
	// last index has unlinked it (refs reaches zero). Tests use it to
	// verify the lifecycle invariant in spec.md §3; cmd/skipdbd wires it to
	// internal/metrics.
	onRelease func(Record)
}

// New constructs an empty Table with one skip list per column, each
// ordered by that column's comparator.
func New() *Table {
	t := &Table{}
	t.columns[Id] = skiplist.New[handle](columnComparator(compareID))
	t.columns[Num] = skiplist.New[handle](columnComparator(compareNum))
	t.columns[Str] = skiplist.New[handle](columnComparator(compareStr))
	return t
}

// OnRelease installs a callback invoked once per record when every column
// has released its handle to it. Not safe to call concurrently with Add,
// Remove, or Update.
func (t *Table) OnRelease(fn func(Record)) {
	t.onRelease = fn
}

// Add inserts rec into every column's index. It fails with
// skipdberrors.ErrDuplicateKey if rec.ID already exists.
func (t *Table) Add(rec Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.addLocked(rec)
}

func (t *Table) addLocked(rec Record) error {
	probe := &handle{rec: Record{ID: rec.ID}}
	if _, found := t.columns[Id].Search(probe); found {
		return skipdberrors.ErrDuplicateKey
	}

	h := newHandle(rec, int32(NumCol))

	var wg sync.WaitGroup
	wg.Add(int(NumCol))
	for c := Id; c < NumCol; c++ {
		idx := t.columns[c]
		go func() {
			defer wg.Done()
			idx.Insert(h)
		}()
	}
	wg.Wait()

	t.tot++
	return nil
}

// Remove deletes the record with the given id from every column's index.
// It fails with skipdberrors.ErrNotFound if id is not present.
func (t *Table) Remove(id uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.removeLocked(id)
}

func (t *Table) removeLocked(id uint32) error {
	probe := &handle{rec: Record{ID: id}}
	h, ok := t.columns[Id].Delete(probe, false)
	if !ok {
		return skipdberrors.ErrNotFound
	}

	if h.release() {
		t.notifyRelease(h.rec)
	}

	var wg sync.WaitGroup
	wg.Add(int(NumCol) - 1)
	for c := Num; c < NumCol; c++ {
		idx := t.columns[c]
		go func() {
			defer wg.Done()
			_, ok := idx.Delete(h, true)
			if !ok {
				panic("table: non-primary index failed to delete a record the primary index just removed")
			}
			if h.release() {
				t.notifyRelease(h.rec)
			}
		}()
	}
	wg.Wait()

	t.tot--
	return nil
}

func (t *Table) notifyRelease(rec Record) {
	if t.onRelease != nil {
		t.onRelease(rec)
	}
}

// Update replaces the record with id new.ID: it is Remove(new.ID) followed
// by Add(new), under a single write-lock acquisition so no reader or other
// writer observes the table with the old record gone and the new one not
// yet present. If the remove fails, the update fails without attempting
// the add, leaving the table unchanged.
func (t *Table) Update(new Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.removeLocked(new.ID); err != nil {
		return err
	}
	return t.addLocked(new)
}

// Len returns the number of distinct records currently in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tot
}
