// Package board adapts github.com/notnil/chess positions to the searcher's
// Position and MoveGenerator interfaces.
package board

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"protochess/internal/move"
	"protochess/internal/searcher"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is a stack of positions. MakeMove pushes the successor, UnmakeMove
// pops it; the position at the bottom is never popped.
type Board struct {
	stack  []*chess.Position
	hashes []uint64
}

var _ searcher.Position = (*Board)(nil)

func FromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("board: parse fen %q: %w", fen, err)
	}
	return fromPosition(chess.NewGame(opt).Position()), nil
}

func NewStartingBoard() *Board {
	b, err := FromFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return b
}

func fromPosition(pos *chess.Position) *Board {
	b := &Board{
		stack:  make([]*chess.Position, 0, 64),
		hashes: make([]uint64, 0, 64),
	}
	b.push(pos)
	return b
}

func (b *Board) push(pos *chess.Position) {
	b.stack = append(b.stack, pos)
	b.hashes = append(b.hashes, CalculateHash(pos))
}

// Position returns the current position.
func (b *Board) Position() *chess.Position { return b.stack[len(b.stack)-1] }

// Ply is the number of moves made since construction.
func (b *Board) Ply() int { return len(b.stack) - 1 }

func (b *Board) Zobrist() uint64 { return b.hashes[len(b.hashes)-1] }

func (b *Board) Turn() chess.Color { return b.Position().Turn() }

func (b *Board) FEN() string { return b.Position().String() }

// MakeMove plays m, which must be move.Null or one of the current legal
// moves. Anything else panics.
func (b *Board) MakeMove(m move.Move) {
	if m.IsNull() {
		b.push(passTurn(b.Position()))
		return
	}
	cm := b.find(m)
	if cm == nil {
		panic(fmt.Sprintf("board: move %s is not legal in %s", b.Notation(m), b.FEN()))
	}
	b.push(b.Position().Update(cm))
}

func (b *Board) UnmakeMove() {
	if len(b.stack) == 1 {
		panic("board: unmake at root")
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.hashes = b.hashes[:len(b.hashes)-1]
}

func (b *Board) find(m move.Move) *chess.Move {
	for _, cm := range b.Position().ValidMoves() {
		if int(cm.S1()) == m.From() && int(cm.S2()) == m.To() && int(cm.Promo()) == m.Promotion() {
			return cm
		}
	}
	return nil
}

// Parse turns UCI text such as "e2e4" or "e7e8q" into the matching legal move.
func (b *Board) Parse(uci string) (move.Move, error) {
	for _, m := range legalMoves(b.Position()) {
		if b.Notation(m) == uci {
			return m, nil
		}
	}
	return move.Null, fmt.Errorf("board: no legal move %q in %s", uci, b.FEN())
}

// Play applies a sequence of UCI moves. On error the board is left after the
// last move that parsed.
func (b *Board) Play(ucis ...string) error {
	for _, uci := range ucis {
		m, err := b.Parse(uci)
		if err != nil {
			return err
		}
		b.MakeMove(m)
	}
	return nil
}

var promoLetters = map[chess.PieceType]string{
	chess.Queen:  "q",
	chess.Rook:   "r",
	chess.Bishop: "b",
	chess.Knight: "n",
}

// Notation renders m in UCI long algebraic form.
func (b *Board) Notation(m move.Move) string {
	if m.IsNull() {
		return "0000"
	}
	s := squareName(m.From()) + squareName(m.To())
	if p := m.Promotion(); p != 0 {
		s += promoLetters[chess.PieceType(p)]
	}
	return s
}

func squareName(sq int) string {
	return string(rune('a'+sq%8)) + string(rune('1'+sq/8))
}

func fromChess(cm *chess.Move) move.Move {
	capture := cm.HasTag(chess.Capture) || cm.HasTag(chess.EnPassant)
	m := move.New(int(cm.S1()), int(cm.S2()), capture)
	if cm.Promo() != chess.NoPieceType {
		m = m.WithPromotion(int(cm.Promo()))
	}
	return m
}

// passTurn returns pos with the other side to move and no en passant square.
func passTurn(pos *chess.Position) *chess.Position {
	fields := strings.Fields(pos.String())
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"
	opt, err := chess.FEN(strings.Join(fields, " "))
	if err != nil {
		panic(fmt.Sprintf("board: pass turn in %s: %v", pos.String(), err))
	}
	return chess.NewGame(opt).Position()
}
