//go:build unix

package server

import (
	"net"

	"golang.org/x/sys/unix"
)

// TuneBuffers raises the UDP socket's kernel receive/send buffers to the
// given sizes via a raw setsockopt call on the connection's underlying fd.
// This is the server-side analogue of the teacher's raw-fd I/O tuning
// (zerocopyskiplist_test.go drives unix.Pwritev/unix.Pread directly against
// an fd); here there's no file to tune, so the knob is the socket's buffer
// sizing instead, sized so that a full-width reply (9 + 12*N bytes) never
// gets truncated by a kernel buffer that's too small.
func TuneBuffers(conn *net.UDPConn, recvBytes, sendBytes int) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return err
	}

	var sockErr error
	err = raw.Control(func(fd uintptr) {
		if sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_RCVBUF, recvBytes); sockErr != nil {
			return
		}
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_SNDBUF, sendBytes)
	})
	if err != nil {
		return err
	}
	return sockErr
}
