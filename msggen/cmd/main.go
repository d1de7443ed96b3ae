// Command msggen prints one generated commit message to
// stdout. It exists so external automation can source
// messages without running a full cadence.
package main

import (
	"flag"
	"fmt"

	"github.com/byte4ever/commit_cadence/cadence/commitmsg"
	"github.com/byte4ever/commit_cadence/cadence/draw"
)

func main() {
	seed := flag.Uint64(
		"seed", 0,
		"Randomness seed (0 seeds from the clock)",
	)

	flag.Parse()

	fmt.Println(commitmsg.Generate(draw.New(*seed)))
}
