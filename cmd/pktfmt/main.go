// pktfmt renders hex-encoded wire values as display text.
//
// Usage:
//
//	pktfmt -kind ipv4 c0a80101
//	pktfmt -kind bytes -punct : deadbeef
//	pktfmt -kind time -time doy 0000000043b8b2d5
//	cat values.txt | pktfmt -kind u32
//
// Each value is one hex token; with no arguments, tokens are read one
// per line from -f or stdin, skipping blank lines and # comments.
package main

import (
	"os"

	"github.com/dl/pktfmt/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
