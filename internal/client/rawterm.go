package client

import (
	"os"

	"golang.org/x/term"
)

// RawMode switches stdin into raw mode for the duration of the returned
// restore function, so single keystrokes (arrows, PgUp/PgDn, digits) reach
// the client without waiting on Enter or local echo. Replaces clt.rs's
// direct tcgetattr/tcsetattr calls via libc with the Go ecosystem's
// standard terminal-control package.
func RawMode() (restore func() error, err error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}
