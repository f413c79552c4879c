package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/rs/zerolog/log"

	"protochess/internal/board"
	"protochess/internal/eval"
	"protochess/internal/logging"
	"protochess/internal/searcher"
	"protochess/internal/tt"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "starting position")
	depth := flag.Int("depth", 4, "search depth")
	maxMoves := flag.Int("maxmoves", 40, "max plies to play")
	ttSize := flag.Int("tt", 1_000_000, "transposition table capacity, 0 for unbounded")
	nullMove := flag.Bool("null", true, "enable null-move pruning")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	if err := logging.Setup(*level, true); err != nil {
		log.Fatal().Err(err).Msg("logging")
	}

	if *pprofAddr != "" {
		go func() {
			log.Info().Str("addr", *pprofAddr).Msg("pprof listening")
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Error().Err(err).Msg("pprof failed")
			}
		}()
	}

	b, err := board.FromFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad starting position")
	}

	cfg := searcher.DefaultConfig()
	cfg.NullMove = *nullMove
	// one table for the whole game, as an engine would keep between moves
	s := searcher.New(tt.New(*ttSize), cfg)

	result := playGame(s, b, *depth, *maxMoves)
	log.Info().Str("result", result).Int("plies", b.Ply()).Str("fen", b.FEN()).Msg("selfplay finished")
}

func playGame(s *searcher.Searcher, b *board.Board, depth, maxMoves int) string {
	gen, ev := board.Generator{}, eval.Evaluator{}
	for i := 0; i < maxMoves; i++ {
		start := time.Now()
		m, ok := s.FindBestMove(b, ev, gen, depth)
		took := time.Since(start)
		if !ok {
			if gen.InCheck(b) {
				return fmt.Sprintf("%v is checkmated", b.Turn().Name())
			}
			return "stalemate"
		}
		fmt.Printf("%d. %v plays %s (%v)\n", i+1, b.Turn().Name(), b.Notation(m), took.Round(time.Millisecond))
		b.MakeMove(m)
	}
	return "move limit"
}
