// nightmap is a CLI for the solar ephemeris and the day/night map.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/watchcore/internal/logger"
)

func main() {
	if err := logger.Init("warn", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		printUsage(out)
		return errors.New("missing command")
	}

	command, rest := args[0], args[1:]
	switch command {
	case "sun":
		return cmdSun(rest, out)
	case "altitude", "alt":
		return cmdAltitude(rest, out)
	case "render":
		return cmdRender(rest, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(out)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, `nightmap - solar position and day/night map utility

Usage:
  nightmap <command> [options]

Commands:
  sun       [-time T] [-zone Z]            Show the solar position
  altitude  -lat L -lon L [-time T]        Show sun altitude at a place
  render    [-time T] [-o file.png] ...    Render the night overlay to PNG

Times are RFC 3339 and default to now.

Examples:
  nightmap sun -time 2024-03-20T12:07:00Z
  nightmap altitude -lat 52.52 -lon 13.40
  nightmap render -width 2048 -height 1024 -map world.jpg -o night.png`)
}
