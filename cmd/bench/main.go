package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"protochess/internal/board"
	"protochess/internal/eval"
	"protochess/internal/logging"
	"protochess/internal/searcher"
	"protochess/internal/tt"
)

var suite = []string{
	board.StartFEN,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
	"r1bq1rk1/ppp2ppp/2np1n2/2b1p3/2B1P3/2NP1N2/PPP2PPP/R1BQ1RK1 w - - 0 7",
}

type result struct {
	fen   string
	move  string
	score int
	nodes uint64
	took  time.Duration
}

func main() {
	depth := flag.Int("depth", 4, "search depth")
	jobs := flag.Int("jobs", runtime.NumCPU(), "positions searched at once")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()

	if err := logging.Setup(*level, true); err != nil {
		log.Fatal().Err(err).Msg("logging")
	}
	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	results := make([]result, len(suite))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*jobs)
	for i, fen := range suite {
		i, fen := i, fen
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := searchOne(fen, *depth)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("bench failed")
	}

	var total uint64
	var elapsed time.Duration
	for _, r := range results {
		fmt.Printf("%-6s %7d %12s nodes %8v  %s\n", r.move, r.score, humanize.Comma(int64(r.nodes)), r.took.Round(time.Millisecond), r.fen)
		total += r.nodes
		elapsed += r.took
	}
	nps := float64(total) / elapsed.Seconds()
	fmt.Printf("total %s nodes, %s nodes/s\n", humanize.Comma(int64(total)), humanize.Comma(int64(nps)))
}

// searchOne runs an independent single-threaded search with its own table.
func searchOne(fen string, depth int) (result, error) {
	b, err := board.FromFEN(fen)
	if err != nil {
		return result{}, err
	}

	r := result{fen: fen, move: "(none)"}
	cfg := searcher.DefaultConfig()
	cfg.OnDepth = func(rep searcher.Report) {
		r.score = rep.Score
		r.nodes += rep.Stats.Nodes
		r.took += rep.Duration
	}
	m, ok := searcher.New(tt.New(0), cfg).FindBestMove(b, eval.Evaluator{}, board.Generator{}, depth)
	if ok {
		r.move = b.Notation(m)
	}
	return r, nil
}
