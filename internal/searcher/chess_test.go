package searcher_test

import (
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"protochess/internal/board"
	"protochess/internal/eval"
	"protochess/internal/searcher"
	"protochess/internal/tt"
)

func newSearcher(nullMove bool, onDepth func(searcher.Report)) *searcher.Searcher {
	cfg := searcher.DefaultConfig()
	cfg.Logger = zerolog.Nop()
	cfg.NullMove = nullMove
	cfg.OnDepth = onDepth
	return searcher.New(tt.New(0), cfg)
}

func mustBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("fen %q: %v", fen, err)
	}
	return b
}

func bestMove(t *testing.T, fen string, depth int) string {
	t.Helper()
	b := mustBoard(t, fen)
	m, ok := newSearcher(true, nil).FindBestMove(b, eval.Evaluator{}, board.Generator{}, depth)
	if !ok {
		t.Fatalf("no move for %q at depth %d", fen, depth)
	}
	if b.Ply() != 0 {
		t.Fatalf("board left %d plies deep", b.Ply())
	}
	return b.Notation(m)
}

func TestMateInOne(t *testing.T) {
	const fen = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	// depth 1 only sees stand-pat scores below the root, so the mate shows
	// from depth 2
	for depth := 2; depth <= 4; depth++ {
		if got := bestMove(t, fen, depth); got != "a1a8" {
			t.Fatalf("depth %d: got %s, want a1a8", depth, got)
		}
	}
}

func TestRookCaptureWithCheck(t *testing.T) {
	// Rxa2+ wins the loose rook; anything else lets black take on a1
	if got := bestMove(t, "k7/8/8/8/8/8/r7/R5K1 w - - 0 1", 1); got != "a1a2" {
		t.Fatalf("got %s, want a1a2", got)
	}
}

func TestCheckmatedAndStalematedRoots(t *testing.T) {
	gen, ev := board.Generator{}, eval.Evaluator{}

	t.Run("checkmated", func(t *testing.T) {
		is := is.New(t)
		b := mustBoard(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
		for depth := 1; depth <= 4; depth++ {
			is.Equal(newSearcher(true, nil).Search(b, ev, gen, depth, -searcher.Infinity+1, searcher.Infinity-1, true), -searcher.CheckmateScore)
		}
	})

	t.Run("stalemated", func(t *testing.T) {
		is := is.New(t)
		b := mustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
		for depth := 1; depth <= 4; depth++ {
			is.Equal(newSearcher(true, nil).Search(b, ev, gen, depth, -searcher.Infinity+1, searcher.Infinity-1, true), 0)
		}
		_, ok := newSearcher(true, nil).FindBestMove(b, ev, gen, 3)
		is.True(!ok)
	})
}

func TestStartingPositionDeterministic(t *testing.T) {
	is := is.New(t)

	run := func() (string, []searcher.Report) {
		var reports []searcher.Report
		b := board.NewStartingBoard()
		s := newSearcher(true, func(r searcher.Report) { reports = append(reports, r) })
		m, ok := s.FindBestMove(b, eval.Evaluator{}, board.Generator{}, 3)
		is.True(ok)
		return b.Notation(m), reports
	}

	m1, r1 := run()
	m2, r2 := run()
	is.Equal(m1, m2)
	is.Equal(len(r1), 3)
	for i := range r1 {
		is.Equal(r1[i].Stats.Nodes, r2[i].Stats.Nodes)
		is.Equal(r1[i].Score, r2[i].Score)
		is.True(r1[i].Stats.Nodes > 0)
	}
}

func TestNullMoveKeepsMate(t *testing.T) {
	// deep enough for null-move pruning to kick in below the root
	const fen = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	for _, nullMove := range []bool{false, true} {
		b := mustBoard(t, fen)
		var last searcher.Report
		s := newSearcher(nullMove, func(r searcher.Report) { last = r })
		m, ok := s.FindBestMove(b, eval.Evaluator{}, board.Generator{}, 4)
		if !ok || b.Notation(m) != "a1a8" {
			t.Fatalf("null=%v: got %s, want a1a8", nullMove, b.Notation(m))
		}
		if last.Score != searcher.CheckmateScore {
			t.Fatalf("null=%v: score %d, want %d", nullMove, last.Score, searcher.CheckmateScore)
		}
	}
}
