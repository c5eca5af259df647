// Package client implements the interactive terminal client: it owns the
// UDP round trip to the server and the knob-position bookkeeping that maps
// ten keyboard positions onto the server's true screen count. Ported from
// original_source/rustdb/src/bin/clt.rs.
package client

import (
	"fmt"
	"net"
	"time"

	"github.com/vacore/skipdb/internal/table"
	"github.com/vacore/skipdb/internal/wire"
)

// Client holds one UDP connection to a skipdb server plus the client-side
// view state (current request and knob bookkeeping) that Submit mutates.
type Client struct {
	conn     *net.UDPConn
	req      table.FetchRequest
	npos     uint32
	kl       [nrec]uint32
	lastResp table.FetchResponse
}

// Dial opens a UDP "connection" (no handshake; just binds the 4-tuple) to
// addr and issues the client's first request so the initial screen is
// populated.
func Dial(addr string) (*Client, *table.FetchResponse, error) {
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, nil, err
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, nil, err
	}

	c := &Client{
		conn: conn,
		req: table.FetchRequest{
			Col: table.Id,
			N:   nrec,
			CS:  0,
			NS:  1,
		},
	}

	resp, err := c.fire()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	c.lastResp = resp
	return c, &resp, nil
}

// Close releases the underlying UDP socket.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Submit applies cmd to the client's current request state and fires the
// resulting request, exactly matching clt.rs's Client::submit.
func (c *Client) Submit(cmd Cmd) (table.FetchResponse, error) {
	r := &c.req

	switch cmd.kind {
	case cmdPos:
		if cmd.pos >= c.npos {
			// Matches clt.rs: an out-of-range knob digit is a silent no-op,
			// not an error; the view doesn't change.
			return c.lastResp, nil
		}
		r.CS = c.kl[cmd.pos]

	case cmdCol:
		if uint32(r.Col) == cmd.col {
			r.Backward = !r.Backward
		}
		r.Col = table.Column(cmd.col)

	case cmdOneRow:
		if cmd.up {
			if r.CS > 0 {
				r.CS--
			}
		} else if r.CS < r.NS-1 {
			r.CS++
		}

	case cmdOnePage:
		if cmd.up {
			if r.CS < r.N-1 {
				r.CS = 0
			} else {
				r.CS -= r.N - 1
			}
		} else {
			if r.CS+r.N > r.NS {
				r.CS = r.NS - 1
			} else {
				r.CS += r.N - 1
			}
		}

	case cmdHome:
		if cmd.up {
			r.CS = 0
		} else {
			r.CS = r.NS - 1
		}
	}

	resp, err := c.fire()
	if err != nil {
		return resp, err
	}
	c.lastResp = resp
	return resp, nil
}

// fire sends the client's current request and reconciles its view against
// the server's authoritative CS/NS on the reply.
func (c *Client) fire() (table.FetchResponse, error) {
	if err := c.conn.SetDeadline(time.Now().Add(2 * time.Second)); err != nil {
		return table.FetchResponse{}, err
	}

	if _, err := c.conn.Write(wire.EncodeRequest(c.req)); err != nil {
		return table.FetchResponse{}, err
	}

	buf := make([]byte, wire.RespHeaderSize+int(c.req.N)*wire.RecordSize)
	n, err := c.conn.Read(buf)
	if err != nil {
		return table.FetchResponse{}, err
	}

	resp, ok := wire.DecodeResponse(buf[:n])
	if !ok {
		return table.FetchResponse{}, fmt.Errorf("skipdb client: malformed response datagram")
	}
	if !resp.OK {
		return table.FetchResponse{}, fmt.Errorf("skipdb client: server rejected request parameters")
	}

	c.knobLimits(resp.NS, c.req.N)
	c.req.CS, c.req.NS = resp.CS, resp.NS

	return resp, nil
}

// Request returns the client's current request state, for rendering.
func (c *Client) Request() table.FetchRequest {
	return c.req
}
