package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"protochess/internal/board"
	"protochess/internal/eval"
	"protochess/internal/logging"
	"protochess/internal/searcher"
	"protochess/internal/tt"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "position to search")
	moves := flag.String("moves", "", "space separated UCI moves played from -fen before searching")
	depth := flag.Int("depth", 5, "search depth")
	nullMove := flag.Bool("null", true, "enable null-move pruning")
	qLimit := flag.Int("qlimit", 0, "max quiescence plies, 0 for unbounded")
	level := flag.String("log-level", "info", "log level")
	jsonLogs := flag.Bool("json", false, "log JSON lines instead of console output")
	flag.Parse()

	if err := logging.Setup(*level, !*jsonLogs); err != nil {
		log.Fatal().Err(err).Msg("logging")
	}

	b, err := board.FromFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}
	if err := b.Play(strings.Fields(*moves)...); err != nil {
		log.Fatal().Err(err).Msg("bad move list")
	}

	table := tt.New(0)
	cfg := searcher.DefaultConfig()
	cfg.NullMove = *nullMove
	cfg.QuiescenceLimit = *qLimit
	cfg.OnDepth = func(r searcher.Report) {
		fmt.Printf("info depth %d score %d nodes %d ordering %.3f time %d\n",
			r.Depth, r.Score, r.Stats.Nodes, r.Stats.Ordering(), r.Duration.Milliseconds())
	}

	m, ok := searcher.New(table, cfg).FindBestMove(b, eval.Evaluator{}, board.Generator{}, *depth)
	log.Debug().Str("tt", table.Stats()).Msg("search done")
	if !ok {
		fmt.Println("bestmove (none)")
		os.Exit(1)
	}
	fmt.Println("bestmove", b.Notation(m))
}
