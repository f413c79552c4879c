// Package searcher finds the best move for a position with iterative
// deepening over a negamax alpha-beta search. The board, move generation,
// evaluation and hashing are supplied by the caller through the interfaces
// below; the searcher only drives them.
package searcher

import (
	"math"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"protochess/internal/move"
	"protochess/internal/tt"
)

const (
	// Infinity bounds every score. The root window is (-Infinity+1, Infinity-1)
	// so that negating a bound never overflows.
	Infinity = math.MaxInt32

	// CheckmateScore is the value of mating the side to move, larger than
	// any material or positional score.
	CheckmateScore = 99999
)

// Position is mutated in place by the search. MakeMove(move.Null) passes the
// turn. Every MakeMove is undone by exactly one UnmakeMove, in stack order.
type Position interface {
	MakeMove(m move.Move)
	UnmakeMove()
	Zobrist() uint64
}

type MoveGenerator interface {
	PseudoMoves(pos Position) []move.Move
	CaptureMoves(pos Position) []move.Move
	IsMoveLegal(m move.Move, pos Position) bool
	InCheck(pos Position) bool
}

// Evaluator scores positions from the side to move's point of view and
// scores moves for ordering.
type Evaluator interface {
	Evaluate(pos Position) int
	ScoreMove(depth int, history *HistoryTable, killers *KillerTable, pos Position, m move.Move) uint
	CanDoNullMove(pos Position) bool
}

// Cache is the transposition cache. Insert overwrites unconditionally.
type Cache interface {
	Retrieve(key uint64) (tt.Entry, bool)
	Insert(key uint64, e tt.Entry)
}

type Config struct {
	// NullMove enables null-move pruning.
	NullMove bool
	// QuiescenceLimit caps the number of capture plies searched below a
	// leaf. 0 leaves quiescence unbounded.
	QuiescenceLimit int

	Logger zerolog.Logger
	// OnDepth, if set, is called after every iterative deepening iteration.
	OnDepth func(Report)
}

func DefaultConfig() Config {
	return Config{
		NullMove: true,
		Logger:   log.Logger,
	}
}

// Searcher is single-threaded. The killer/history tables and statistics are
// reset between iterations; the cache is not.
type Searcher struct {
	cfg   Config
	cache Cache

	killers KillerTable
	history HistoryTable
	stats   Stats

	// bound for the duration of one call
	pos  Position
	eval Evaluator
	gen  MoveGenerator
}

func New(cache Cache, cfg Config) *Searcher {
	return &Searcher{
		cfg:   cfg,
		cache: cache,
	}
}

func (s *Searcher) Stats() Stats           { return s.stats }
func (s *Searcher) Killers() *KillerTable  { return &s.killers }
func (s *Searcher) History() *HistoryTable { return &s.history }
func (s *Searcher) Cache() Cache           { return s.cache }
func (s *Searcher) ClearHeuristics()       { s.killers.Clear(); s.history.Clear() }
func (s *Searcher) ClearStats()            { s.stats = Stats{} }

func (s *Searcher) bind(pos Position, eval Evaluator, gen MoveGenerator) func() {
	s.pos, s.eval, s.gen = pos, eval, gen
	return func() {
		s.pos, s.eval, s.gen = nil, nil, nil
	}
}

// Search runs one alpha-beta search of pos to depth with the window
// (alpha, beta). Heuristic tables and statistics carry over from earlier
// calls; FindBestMove is the usual entry point.
func (s *Searcher) Search(pos Position, eval Evaluator, gen MoveGenerator, depth, alpha, beta int, allowNull bool) int {
	defer s.bind(pos, eval, gen)()
	return s.alphaBeta(depth, alpha, beta, allowNull)
}
