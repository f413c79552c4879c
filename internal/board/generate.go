package board

import (
	"github.com/notnil/chess"
	"github.com/samber/lo"

	"protochess/internal/move"
	"protochess/internal/searcher"
)

// Generator implements searcher.MoveGenerator for *Board. The library only
// produces legal moves, so every generated move passes IsMoveLegal.
type Generator struct{}

var _ searcher.MoveGenerator = Generator{}

func legalMoves(pos *chess.Position) []move.Move {
	return lo.Map(pos.ValidMoves(), func(cm *chess.Move, _ int) move.Move {
		return fromChess(cm)
	})
}

func (Generator) PseudoMoves(pos searcher.Position) []move.Move {
	return legalMoves(pos.(*Board).Position())
}

func (Generator) CaptureMoves(pos searcher.Position) []move.Move {
	return lo.Filter(legalMoves(pos.(*Board).Position()), func(m move.Move, _ int) bool {
		return m.IsCapture()
	})
}

func (Generator) IsMoveLegal(m move.Move, _ searcher.Position) bool {
	return !m.IsNull()
}

func (Generator) InCheck(pos searcher.Position) bool {
	return InCheck(pos.(*Board).Position())
}
