package client

import (
	"fmt"
	"strings"

	"github.com/vacore/skipdb/internal/table"
)

// Render formats resp as the screen a user sees: the "Showing elements"
// summary, the column/direction header, one line per record (blank-padded
// to N rows), and a knob bar showing which of the ten positions the
// current screen falls under. Ported from clt.rs's fire()'s printing tail.
func (c *Client) Render(resp table.FetchResponse) string {
	req := c.req
	n, ns, cs := req.N, req.NS, req.CS

	pos := uint32(0)
	for i := int(c.npos) - 1; i >= 0; i-- {
		if cs >= c.kl[i] {
			pos = uint32(i)
			break
		}
	}

	knobWidth := uint32(1)
	if n+1 > ns {
		knobWidth = n - ns + 1
	}

	knob := make([]byte, n)
	for i := range knob {
		knob[i] = '.'
	}
	for i := uint32(0); i < n; i++ {
		if i >= pos && i < pos+knobWidth {
			knob[i] = '#'
		}
	}

	a, b := cs+1, cs+n
	tot := ns + n - 1
	if req.Backward {
		a, b = tot-a+1, tot-b+1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Showing elements: (%d..%d)/%d\n", a, b, tot)

	cols := [3]byte{' ', ' ', ' '}
	if int(req.Col) < len(cols) {
		if req.Backward {
			cols[req.Col] = '^'
		} else {
			cols[req.Col] = 'v'
		}
	}
	fmt.Fprintf(&sb, "%c id        %c num      %c str\n", cols[table.Id], cols[table.Num], cols[table.Str])

	for i := uint32(0); i < n; i++ {
		if i < uint32(len(resp.Records)) {
			r := resp.Records[i]
			fmt.Fprintf(&sb, "  %-8d  %8d  %-4s   %c\n", r.ID, r.Num, string(r.Str[:]), knob[i])
		} else {
			fmt.Fprintf(&sb, "--blank--                       %c\n", knob[i])
		}
	}

	return sb.String()
}
