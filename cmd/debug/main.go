package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"protochess/internal/board"
	"protochess/internal/eval"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "position to inspect")
	flag.Parse()

	b, err := board.FromFEN(*fen)
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}
	gen := board.Generator{}
	ev := eval.Evaluator{}

	moves := gen.PseudoMoves(b)
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = b.Notation(m)
	}

	fmt.Println("FEN:", b.FEN())
	fmt.Printf("Zobrist: %016x\n", b.Zobrist())
	fmt.Println("In check:", gen.InCheck(b))
	fmt.Println("Static eval:", ev.Evaluate(b))
	fmt.Println("Null move allowed:", ev.CanDoNullMove(b))
	fmt.Printf("Moves (%d, %d captures): %s\n", len(moves), len(gen.CaptureMoves(b)), strings.Join(names, " "))
}
