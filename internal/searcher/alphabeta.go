package searcher

import (
	"protochess/internal/move"
	"protochess/internal/tt"
)

// nullMoveReduction is both the minimum depth for trying a null move and the
// depth it is searched below the current node.
const nullMoveReduction = 3

// alphaBeta returns the fail-hard negamax value of s.pos searched to depth,
// clamped to [alpha, beta].
func (s *Searcher) alphaBeta(depth, alpha, beta int, allowNull bool) int {
	s.stats.Nodes++

	if depth == 0 {
		return s.quiesce(depth, alpha, beta, 0)
	}

	key := s.pos.Zobrist()
	if e, ok := s.cache.Retrieve(key); ok && e.Depth >= depth {
		switch e.Flag {
		case tt.Exact:
			if e.Score < alpha {
				return alpha
			}
			if e.Score >= beta {
				return beta
			}
			return e.Score
		case tt.Lower:
			if beta <= e.Score {
				return beta
			}
		case tt.Upper:
			if alpha >= e.Score {
				return alpha
			}
		}
	}

	if allowNull && s.tryNullMove(depth, beta) {
		return beta
	}

	moves := s.scoreMoves(s.gen.PseudoMoves(s.pos), depth)

	var (
		bestMove  = move.Null
		bestScore = -Infinity
		oldAlpha  = alpha
		legal     = 0
		searchPV  = true
	)
	for i := range moves {
		pickNext(i, moves)
		m := moves[i].m
		if !s.gen.IsMoveLegal(m, s.pos) {
			continue
		}
		legal++

		s.pos.MakeMove(m)
		var score int
		if searchPV {
			score = -s.alphaBeta(depth-1, -beta, -alpha, true)
		} else {
			score = -s.alphaBeta(depth-1, -alpha-1, -alpha, true)
			if score > alpha && score < beta {
				score = -s.alphaBeta(depth-1, -beta, -alpha, true)
			}
		}
		s.pos.UnmakeMove()

		if score <= bestScore {
			continue
		}
		bestScore, bestMove = score, m
		if score <= alpha {
			continue
		}
		if score >= beta {
			if legal == 1 {
				s.stats.FailHighFirst++
			}
			s.stats.FailHigh++
			s.killers.Record(depth, m)
			s.history.Add(depth, m)
			s.cache.Insert(key, tt.Entry{Flag: tt.Lower, Score: beta, Move: m, Depth: depth})
			return beta
		}
		alpha = score
		searchPV = false
	}

	if legal == 0 {
		if s.gen.InCheck(s.pos) {
			return -CheckmateScore
		}
		return 0
	}

	if alpha != oldAlpha {
		s.cache.Insert(key, tt.Entry{Flag: tt.Exact, Score: bestScore, Move: bestMove, Depth: depth})
	} else {
		s.cache.Insert(key, tt.Entry{Flag: tt.Upper, Score: alpha, Move: bestMove, Depth: depth})
	}
	return alpha
}

// tryNullMove reports whether passing the turn still fails high, in which
// case the node is cut off with beta. Skipped in check, at shallow depth and
// when the evaluator reports too little material to rule out zugzwang.
func (s *Searcher) tryNullMove(depth, beta int) bool {
	if depth <= nullMoveReduction || !s.eval.CanDoNullMove(s.pos) || s.gen.InCheck(s.pos) {
		return false
	}
	s.pos.MakeMove(move.Null)
	score := -s.alphaBeta(depth-nullMoveReduction, -beta, -beta+1, false)
	s.pos.UnmakeMove()
	return score >= beta
}
