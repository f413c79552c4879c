package searcher

import (
	"math"

	"protochess/internal/move"
)

type scoredMove struct {
	score uint
	m     move.Move
}

// scoreMoves scores moves for ordering at depth. The cached best move for the
// current position, if it is among them, gets the maximum score.
func (s *Searcher) scoreMoves(moves []move.Move, depth int) []scoredMove {
	out := make([]scoredMove, len(moves))
	for i, m := range moves {
		out[i] = scoredMove{
			score: s.eval.ScoreMove(depth, &s.history, &s.killers, s.pos, m),
			m:     m,
		}
	}
	if e, ok := s.cache.Retrieve(s.pos.Zobrist()); ok && !e.Move.IsNull() {
		for i := range out {
			if out[i].m == e.Move {
				out[i].score = math.MaxUint
				break
			}
		}
	}
	return out
}

// pickNext swaps the best-scored move of moves[i:] into position i. Ties go
// to the earliest candidate. Selecting lazily means branches that cut off
// early never pay for sorting the rest.
func pickNext(i int, moves []scoredMove) {
	best := i
	for j := i + 1; j < len(moves); j++ {
		if moves[j].score > moves[best].score {
			best = j
		}
	}
	if best != i {
		moves[i], moves[best] = moves[best], moves[i]
	}
}
