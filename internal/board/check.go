package board

import "github.com/notnil/chess"

var (
	knightSteps = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	rookDirs    = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

func pieceAt(b *chess.Board, file, rank int) chess.Piece {
	return b.Piece(chess.Square(rank*8 + file))
}

// IsAttacked reports whether sq is attacked by a piece of color by.
func IsAttacked(b *chess.Board, sq chess.Square, by chess.Color) bool {
	file, rank := int(sq)%8, int(sq)/8

	is := func(f, r int, types ...chess.PieceType) bool {
		if !onBoard(f, r) {
			return false
		}
		pc := pieceAt(b, f, r)
		if pc == chess.NoPiece || pc.Color() != by {
			return false
		}
		for _, t := range types {
			if pc.Type() == t {
				return true
			}
		}
		return false
	}

	// a pawn of color by attacks diagonally forward, so look one rank behind sq
	pawnRank := rank - 1
	if by == chess.Black {
		pawnRank = rank + 1
	}
	if is(file-1, pawnRank, chess.Pawn) || is(file+1, pawnRank, chess.Pawn) {
		return true
	}

	for _, d := range knightSteps {
		if is(file+d[0], rank+d[1], chess.Knight) {
			return true
		}
	}
	for _, d := range kingSteps {
		if is(file+d[0], rank+d[1], chess.King) {
			return true
		}
	}

	slide := func(dirs [4][2]int, types ...chess.PieceType) bool {
		for _, d := range dirs {
			f, r := file+d[0], rank+d[1]
			for onBoard(f, r) {
				if pieceAt(b, f, r) != chess.NoPiece {
					if is(f, r, types...) {
						return true
					}
					break
				}
				f += d[0]
				r += d[1]
			}
		}
		return false
	}
	return slide(rookDirs, chess.Rook, chess.Queen) || slide(bishopDirs, chess.Bishop, chess.Queen)
}

// InCheck reports whether the side to move in pos is in check. A side
// without a king is never in check.
func InCheck(pos *chess.Position) bool {
	side := pos.Turn()
	b := pos.Board()
	for sq := 0; sq < 64; sq++ {
		pc := b.Piece(chess.Square(sq))
		if pc.Type() == chess.King && pc.Color() == side {
			return IsAttacked(b, chess.Square(sq), side.Other())
		}
	}
	return false
}
