package wire

import (
	"testing"

	"github.com/vacore/skipdb/internal/table"
)

func TestRequestRoundTrip(t *testing.T) {
	req := table.FetchRequest{Col: table.Num, Backward: true, N: 10, CS: 3, NS: 7}
	buf := EncodeRequest(req)
	if len(buf) != ReqSize {
		t.Fatalf("len(buf) = %d, want %d", len(buf), ReqSize)
	}

	got, ok := DecodeRequest(buf)
	if !ok {
		t.Fatal("DecodeRequest reported not ok")
	}
	if got != req {
		t.Fatalf("round trip = %+v, want %+v", got, req)
	}
}

func TestRequestByteLayout(t *testing.T) {
	req := table.FetchRequest{Col: table.Str, Backward: false, N: 1, CS: 2, NS: 3}
	buf := EncodeRequest(req)

	if buf[0] != byte(table.Str) {
		t.Errorf("buf[0] = %d, want %d", buf[0], table.Str)
	}
	if buf[1] != 0 {
		t.Errorf("buf[1] = %d, want 0", buf[1])
	}
	if buf[2] != 1 || buf[3] != 0 || buf[4] != 0 || buf[5] != 0 {
		t.Errorf("N bytes = %v, want [1 0 0 0]", buf[2:6])
	}
}

func TestDecodeRequestRejectsWrongLength(t *testing.T) {
	if _, ok := DecodeRequest(make([]byte, ReqSize-1)); ok {
		t.Fatal("expected DecodeRequest to reject a short buffer")
	}
	if _, ok := DecodeRequest(make([]byte, ReqSize+1)); ok {
		t.Fatal("expected DecodeRequest to reject a long buffer")
	}
}

func TestResponseRoundTrip(t *testing.T) {
	resp := table.FetchResponse{
		OK: true,
		CS: 4,
		NS: 9,
		Records: []table.Record{
			{ID: 1, Num: -5, Str: [table.SLEN]byte{'a', 'b', 'c', 'd'}},
			{ID: 2, Num: 5, Str: [table.SLEN]byte{'e', 'f', 'g', 'h'}},
		},
	}

	buf := EncodeResponse(resp)
	wantLen := RespHeaderSize + 2*RecordSize
	if len(buf) != wantLen {
		t.Fatalf("len(buf) = %d, want %d", len(buf), wantLen)
	}

	got, ok := DecodeResponse(buf)
	if !ok {
		t.Fatal("DecodeResponse reported not ok")
	}
	if got.OK != resp.OK || got.CS != resp.CS || got.NS != resp.NS {
		t.Fatalf("header round trip = %+v, want %+v", got, resp)
	}
	if len(got.Records) != len(resp.Records) {
		t.Fatalf("len(Records) = %d, want %d", len(got.Records), len(resp.Records))
	}
	for i := range resp.Records {
		if got.Records[i] != resp.Records[i] {
			t.Errorf("Records[%d] = %+v, want %+v", i, got.Records[i], resp.Records[i])
		}
	}
}

func TestResponseEmptyPayload(t *testing.T) {
	resp := table.FetchResponse{OK: true, CS: 0, NS: 1}
	buf := EncodeResponse(resp)
	if len(buf) != RespHeaderSize {
		t.Fatalf("len(buf) = %d, want %d", len(buf), RespHeaderSize)
	}
	got, ok := DecodeResponse(buf)
	if !ok || len(got.Records) != 0 {
		t.Fatalf("DecodeResponse(empty) = %+v, ok=%v", got, ok)
	}
}

func TestDecodeResponseRejectsTruncatedRecordRun(t *testing.T) {
	buf := make([]byte, RespHeaderSize+RecordSize-1)
	if _, ok := DecodeResponse(buf); ok {
		t.Fatal("expected DecodeResponse to reject a non-multiple-of-RecordSize payload")
	}
}
