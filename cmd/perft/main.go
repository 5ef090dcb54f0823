// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corvidlabs/chesscore/pkg/fen"
	"github.com/corvidlabs/chesscore/pkg/perft"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	start    = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move, at the deepest depth")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *start == "" {
		*start = fen.Initial
	}

	pos, err := fen.Decode(*start)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen %q: %v", *start, err)
	}

	for i := 1; i <= *depth; i++ {
		t0 := time.Now()
		nodes := perft.Count(pos, i)
		elapsed := time.Since(t0)

		logw.Infof(ctx, "perft,%v,%v,%v,%v", *start, i, nodes, elapsed.Microseconds())

		if *divide && i == *depth {
			for m, count := range perft.Divide(pos, i) {
				fmt.Printf("%v: %v\n", m, count)
			}
		}
	}
}
