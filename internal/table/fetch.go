package table

import "math"

// FetchRequest is the decoded form of a client's screen request: a column
// to sort by, a direction, a screen height, and the client's notion of its
// current screen and screen count.
type FetchRequest struct {
	Col      Column
	Backward bool
	N        uint32
	CS       uint32
	NS       uint32
}

// FetchResponse is the decoded form of the server's reply: whether the
// request was valid, the server-authoritative current screen and screen
// count the client should reconcile against, and the run of records for
// that screen.
type FetchResponse struct {
	OK      bool
	CS      uint32
	NS      uint32
	Records []Record
}

// Fetch maps req onto a concrete rank in the chosen column's index and
// streams up to N records from there, forward or backward. It holds the
// table's read lock for the full lookup-plus-traversal-plus-emission
// duration, so the result always reflects one consistent snapshot.
func (t *Table) Fetch(req FetchRequest) FetchResponse {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !req.Col.Valid() || req.N == 0 || req.NS == 0 || req.CS >= req.NS {
		return FetchResponse{OK: false}
	}

	resp := FetchResponse{OK: true, NS: 1}

	tot := uint32(t.tot)
	if tot == 0 {
		return resp
	}

	var pos uint32
	if req.NS > 1 && tot > req.N {
		pos = uint32(math.Round(1 + float64(req.CS)*float64(tot-req.N)/float64(req.NS-1)))
	} else {
		pos = 1
	}
	resp.CS = pos - 1

	if tot > req.N {
		resp.NS = tot - req.N + 1
	}

	if req.Backward {
		pos = tot - pos + 1
	}

	count := req.N
	if tot < count {
		count = tot
	}

	idx := t.columns[req.Col]
	cur := idx.Lookup(int(pos))

	records := make([]Record, 0, count)
	for i := uint32(0); i < count; i++ {
		records = append(records, cur.Value().rec)
		if req.Backward {
			cur = cur.Prev()
		} else {
			cur = cur.Next()
		}
	}
	resp.Records = records

	return resp
}
