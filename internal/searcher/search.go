package searcher

import (
	"time"

	"github.com/google/uuid"

	"protochess/internal/move"
)

// FindBestMove searches pos to depth 1, 2, ... maxDepth and returns the move
// the cache holds for the root afterwards. ok is false when there is no root
// entry, e.g. maxDepth < 1 or no legal move at the root.
//
// Killer and history tables are cleared before every iteration so each depth
// orders moves by what the previous one learned; principal variations carry
// over through the cache, which is never cleared here.
func (s *Searcher) FindBestMove(pos Position, eval Evaluator, gen MoveGenerator, maxDepth int) (move.Move, bool) {
	defer s.bind(pos, eval, gen)()

	id := uuid.NewString()
	logger := s.cfg.Logger.With().Str("search", id).Logger()

	s.ClearHeuristics()
	s.ClearStats()
	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		score := s.alphaBeta(depth, -Infinity+1, Infinity-1, s.cfg.NullMove)
		r := Report{
			SearchID: id,
			Depth:    depth,
			Score:    score,
			Stats:    s.stats,
			Duration: time.Since(start),
		}
		logger.Info().
			Int("depth", depth).
			Int("score", score).
			Uint64("nodes", r.Stats.Nodes).
			Float64("ordering", r.Stats.Ordering()).
			Dur("took", r.Duration).
			Msg("depth-complete")
		if s.cfg.OnDepth != nil {
			s.cfg.OnDepth(r)
		}

		s.ClearHeuristics()
		s.ClearStats()
	}

	e, ok := s.cache.Retrieve(pos.Zobrist())
	if !ok {
		logger.Debug().Int("maxDepth", maxDepth).Msg("no-root-entry")
		return move.Null, false
	}
	return e.Move, true
}
