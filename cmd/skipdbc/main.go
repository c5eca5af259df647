// Command skipdbc is the interactive terminal client: it puts stdin into
// raw mode, renders each screen the server sends back, and turns single
// keystrokes into knob/column/scroll commands. Ported from
// original_source/rustdb/src/bin/clt.rs's main loop.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/vacore/skipdb/internal/client"
	"github.com/vacore/skipdb/internal/config"
)

const usage = `Commands:
  q - sort by column 1 (id)
  w - sort by column 2 (num)
  e - sort by column 3 (str)
  up/down     - 1 element  up/down
  PgUp/PgDown - N-1 elements up/down
  Home/End    - to first/to last
  0..9: change knob position`

func main() {
	cfg := config.ParseClientFlags(os.Args[1:])

	c, resp, err := client.Dial(cfg.ServerAddr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "skipdbc: dial failed:", err)
		os.Exit(1)
	}
	defer c.Close()

	restore, err := client.RawMode()
	if err != nil {
		fmt.Fprintln(os.Stderr, "skipdbc: raw mode failed:", err)
		os.Exit(1)
	}
	defer restore()

	fmt.Print(c.Render(*resp))

	in := bufio.NewReader(os.Stdin)
	for {
		b, err := in.ReadByte()
		if err != nil {
			return
		}

		var cmd client.Cmd
		switch {
		case b >= '0' && b <= '9':
			cmd = client.CmdPos(uint32(b - '0'))

		case b == 'q':
			cmd = client.CmdCol(0)
		case b == 'w':
			cmd = client.CmdCol(1)
		case b == 'e':
			cmd = client.CmdCol(2)

		case b == 27:
			esc, err := in.ReadByte()
			if err != nil || esc != '[' {
				printUsage()
				continue
			}
			code, err := in.ReadByte()
			if err != nil {
				printUsage()
				continue
			}
			switch code {
			case 'A':
				cmd = client.CmdOneRow(true)
			case 'B':
				cmd = client.CmdOneRow(false)
			case '5':
				if tail, err := in.ReadByte(); err != nil || tail != '~' {
					printUsage()
					continue
				}
				cmd = client.CmdOnePage(true)
			case '6':
				if tail, err := in.ReadByte(); err != nil || tail != '~' {
					printUsage()
					continue
				}
				cmd = client.CmdOnePage(false)
			case 'H':
				cmd = client.CmdHome(true)
			case 'F':
				cmd = client.CmdHome(false)
			default:
				printUsage()
				continue
			}

		default:
			printUsage()
			continue
		}

		resp, err := c.Submit(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "\r\nskipdbc: request failed:", err)
			return
		}
		fmt.Print(c.Render(resp))
	}
}

func printUsage() {
	fmt.Print(usage)
	fmt.Print("\r\n")
}
