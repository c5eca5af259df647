// Package wire implements the fixed-layout, little-endian, tightly packed
// request/response encoding spoken over the UDP transport. It translates
// between raw datagram bytes and the table package's decoded request and
// response types; it has no opinion about sockets or locking.
package wire

import (
	"encoding/binary"

	"github.com/vacore/skipdb/internal/table"
)

const (
	// ReqSize is the byte length of an encoded Request.
	ReqSize = 14

	// RespHeaderSize is the byte length of an encoded response header,
	// before any record payload.
	RespHeaderSize = 9

	// RecordSize is the byte length of one encoded Record, for SLEN=4.
	RecordSize = 4 + 4 + table.SLEN
)

// DecodeRequest parses a 14-byte request datagram into a table.FetchRequest.
// It reports ok=false only for a malformed datagram (wrong length); an
// in-range-but-semantically-invalid request (bad column, zero N, ...) is
// passed through to table.Fetch, which is the single source of truth for
// that validation (spec.md §4.3).
func DecodeRequest(buf []byte) (table.FetchRequest, bool) {
	if len(buf) != ReqSize {
		return table.FetchRequest{}, false
	}

	return table.FetchRequest{
		Col:      table.Column(buf[0]),
		Backward: buf[1] != 0,
		N:        binary.LittleEndian.Uint32(buf[2:6]),
		CS:       binary.LittleEndian.Uint32(buf[6:10]),
		NS:       binary.LittleEndian.Uint32(buf[10:14]),
	}, true
}

// EncodeRequest serializes req into a 14-byte request datagram. Used by the
// client.
func EncodeRequest(req table.FetchRequest) []byte {
	buf := make([]byte, ReqSize)
	buf[0] = byte(req.Col)
	if req.Backward {
		buf[1] = 1
	}
	binary.LittleEndian.PutUint32(buf[2:6], req.N)
	binary.LittleEndian.PutUint32(buf[6:10], req.CS)
	binary.LittleEndian.PutUint32(buf[10:14], req.NS)
	return buf
}

// EncodeResponse serializes resp's header followed by its record run into a
// single datagram, ready to hand to a UDP socket's write/send call as one
// packet.
func EncodeResponse(resp table.FetchResponse) []byte {
	buf := make([]byte, RespHeaderSize+len(resp.Records)*RecordSize)

	if resp.OK {
		buf[0] = 1
	}
	binary.LittleEndian.PutUint32(buf[1:5], resp.CS)
	binary.LittleEndian.PutUint32(buf[5:9], resp.NS)

	off := RespHeaderSize
	for _, rec := range resp.Records {
		putRecord(buf[off:off+RecordSize], rec)
		off += RecordSize
	}

	return buf
}

// DecodeResponse parses a response datagram (header plus zero or more
// records) into a table.FetchResponse. Used by the client.
func DecodeResponse(buf []byte) (table.FetchResponse, bool) {
	if len(buf) < RespHeaderSize {
		return table.FetchResponse{}, false
	}

	resp := table.FetchResponse{
		OK: buf[0] != 0,
		CS: binary.LittleEndian.Uint32(buf[1:5]),
		NS: binary.LittleEndian.Uint32(buf[5:9]),
	}

	payload := buf[RespHeaderSize:]
	if len(payload)%RecordSize != 0 {
		return table.FetchResponse{}, false
	}

	n := len(payload) / RecordSize
	resp.Records = make([]table.Record, n)
	for i := 0; i < n; i++ {
		resp.Records[i] = getRecord(payload[i*RecordSize : (i+1)*RecordSize])
	}

	return resp, true
}

func putRecord(buf []byte, rec table.Record) {
	binary.LittleEndian.PutUint32(buf[0:4], rec.ID)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(rec.Num))
	copy(buf[8:8+table.SLEN], rec.Str[:])
}

func getRecord(buf []byte) table.Record {
	var rec table.Record
	rec.ID = binary.LittleEndian.Uint32(buf[0:4])
	rec.Num = int32(binary.LittleEndian.Uint32(buf[4:8]))
	copy(rec.Str[:], buf[8:8+table.SLEN])
	return rec
}
