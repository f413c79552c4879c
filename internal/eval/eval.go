// Package eval is a material and piece-placement evaluator for board.Board
// positions. Scores are from the side to move's point of view.
package eval

import (
	"github.com/notnil/chess"

	"protochess/internal/board"
	"protochess/internal/move"
	"protochess/internal/searcher"
)

var pieceValue = [7]int{
	chess.King:   0, // both sides always have one
	chess.Queen:  900,
	chess.Rook:   500,
	chess.Bishop: 330,
	chess.Knight: 320,
	chess.Pawn:   100,
}

// ordering rank for MVV-LVA, smallest for pawns
var victimRank = [7]uint{
	chess.King:   6,
	chess.Queen:  5,
	chess.Rook:   4,
	chess.Bishop: 3,
	chess.Knight: 2,
	chess.Pawn:   1,
}

const (
	captureBase  uint = 1 << 20
	killer0Score uint = 1 << 19
	killer1Score      = killer0Score - 1000
	historyLimit      = killer1Score - 1

	// non-pawn, non-king material the side to move needs before a null move
	// is tried
	nullMoveMaterial = 500
)

type Evaluator struct{}

var _ searcher.Evaluator = Evaluator{}

func (Evaluator) Evaluate(pos searcher.Position) int {
	return Evaluate(pos.(*board.Board).Position())
}

// Evaluate scores pos for the side to move.
func Evaluate(pos *chess.Position) int {
	b := pos.Board()
	side := pos.Turn()
	score := 0
	for sq := 0; sq < 64; sq++ {
		pc := b.Piece(chess.Square(sq))
		if pc == chess.NoPiece {
			continue
		}
		val := pieceValue[pc.Type()] + positionalBonus(pc.Type(), pc.Color(), sq%8, sq/8)
		if pc.Color() == side {
			score += val
		} else {
			score -= val
		}
	}
	return score
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// positionalBonus is the placement bonus of a piece of type pt and color c
// on (file, rank), from that piece's own point of view.
func positionalBonus(pt chess.PieceType, c chess.Color, file, rank int) int {
	// 0 on the rim, 6 on the four center squares
	center := 6 - abs(2*file-7)/2 - abs(2*rank-7)/2
	advance := rank
	if c == chess.Black {
		advance = 7 - rank
	}

	switch pt {
	case chess.Pawn:
		b := advance * 5
		if file >= 2 && file <= 5 {
			b += advance * 2
		}
		return b
	case chess.Knight:
		return center * 5
	case chess.Bishop:
		return center * 3
	case chess.Rook:
		if advance == 6 {
			return 15
		}
		return 0
	case chess.Queen:
		return center
	case chess.King:
		// stay home behind the pawns
		if advance == 0 {
			return 10
		}
		return -center * 3
	}
	return 0
}

// ScoreMove orders captures by most valuable victim, least valuable attacker,
// then the two killers, then quiet moves by history.
func (Evaluator) ScoreMove(depth int, history *searcher.HistoryTable, killers *searcher.KillerTable, pos searcher.Position, m move.Move) uint {
	b := pos.(*board.Board).Position().Board()
	if m.IsCapture() {
		victim := b.Piece(chess.Square(m.To())).Type()
		if victim == chess.NoPieceType {
			victim = chess.Pawn // en passant
		}
		attacker := b.Piece(chess.Square(m.From())).Type()
		return captureBase + 10*victimRank[victim] - victimRank[attacker]
	}

	ks := killers.Killers(depth)
	switch m {
	case ks[0]:
		return killer0Score
	case ks[1]:
		return killer1Score
	}

	h := uint(history.Score(m))
	if h > historyLimit {
		h = historyLimit
	}
	return h
}

func (Evaluator) CanDoNullMove(pos searcher.Position) bool {
	p := pos.(*board.Board).Position()
	b := p.Board()
	side := p.Turn()
	material := 0
	for sq := 0; sq < 64; sq++ {
		pc := b.Piece(chess.Square(sq))
		if pc.Color() != side || pc.Type() == chess.Pawn || pc.Type() == chess.King {
			continue
		}
		material += pieceValue[pc.Type()]
	}
	return material >= nullMoveMaterial
}
