//go:build !unix

package server

import "net"

// TuneBuffers is a no-op on non-Unix platforms, where the raw SO_RCVBUF/
// SO_SNDBUF tuning in socket.go isn't available through golang.org/x/sys/unix.
func TuneBuffers(conn *net.UDPConn, recvBytes, sendBytes int) error {
	return nil
}
