package searcher

// quiesce searches captures only until the position is quiet. depth is passed
// through unchanged for move scoring; qply counts capture plies below the
// leaf and only matters when Config.QuiescenceLimit is set. The cache is used
// for move ordering but never probed for a result or written.
func (s *Searcher) quiesce(depth, alpha, beta, qply int) int {
	s.stats.Nodes++

	standPat := s.eval.Evaluate(s.pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if s.cfg.QuiescenceLimit > 0 && qply >= s.cfg.QuiescenceLimit {
		return alpha
	}

	moves := s.scoreMoves(s.gen.CaptureMoves(s.pos), depth)
	legal := 0
	for i := range moves {
		pickNext(i, moves)
		m := moves[i].m
		if !s.gen.IsMoveLegal(m, s.pos) {
			continue
		}
		legal++

		s.pos.MakeMove(m)
		score := -s.quiesce(depth, -beta, -alpha, qply+1)
		s.pos.UnmakeMove()

		if score >= beta {
			if legal == 1 {
				s.stats.FailHighFirst++
			}
			s.stats.FailHigh++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
