package client

import "math"

// nrec is the number of knob positions the client offers (digits 0-9),
// matching original_source/rustdb/src/bin/clt.rs's NREC.
const nrec = 10

// Cmd is one user command the client can submit.
type Cmd struct {
	kind cmdKind
	pos  uint32 // for cmdPos
	col  uint32 // for cmdCol
	up   bool   // for cmdOneRow, cmdOnePage, cmdHome
}

type cmdKind int

const (
	cmdPos cmdKind = iota
	cmdCol
	cmdOneRow
	cmdOnePage
	cmdHome
)

func CmdPos(pos uint32) Cmd  { return Cmd{kind: cmdPos, pos: pos} }
func CmdCol(col uint32) Cmd  { return Cmd{kind: cmdCol, col: col} }
func CmdOneRow(up bool) Cmd  { return Cmd{kind: cmdOneRow, up: up} }
func CmdOnePage(up bool) Cmd { return Cmd{kind: cmdOnePage, up: up} }
func CmdHome(up bool) Cmd    { return Cmd{kind: cmdHome, up: up} }

// knobLimits recomputes c.kl (the CS value each knob position snaps to) and
// c.npos (the number of knob positions actually in play) from the server's
// most recently echoed NS and the client's own screen height N. Ported
// directly from clt.rs's fire(): "Fill knob data".
func (c *Client) knobLimits(ns, n uint32) {
	if ns > n {
		c.npos = n
	} else {
		c.npos = ns
	}
	if c.npos < 1 {
		c.npos = 1
	}

	c.kl[0] = 0
	for i := 1; i < len(c.kl); i++ {
		if uint32(i) >= c.npos {
			c.kl[i] = c.kl[0]
			continue
		}
		c.kl[i] = uint32(math.Round(float64(i) * float64(ns-1) / float64(c.npos-1)))
	}
}
