package board

import (
	"strings"
	"sync"

	"github.com/notnil/chess"
)

var (
	zobristOnce sync.Once

	// indexed by color (0 white, 1 black), piece type and square
	zobristPieces    [2][7][64]uint64
	zobristSide      uint64
	zobristCastle    [4]uint64
	zobristEnPassant [8]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for c := 0; c < 2; c++ {
			for pt := 1; pt < 7; pt++ {
				for sq := 0; sq < 64; sq++ {
					zobristPieces[c][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
		for i := range zobristCastle {
			zobristCastle[i] = next()
		}
		for i := range zobristEnPassant {
			zobristEnPassant[i] = next()
		}
	})
}

// CalculateHash computes the zobrist key of pos from scratch: pieces, side to
// move, castling rights and en passant file.
func CalculateHash(pos *chess.Position) uint64 {
	initZobrist()

	var h uint64
	b := pos.Board()
	for sq := 0; sq < 64; sq++ {
		pc := b.Piece(chess.Square(sq))
		if pc == chess.NoPiece {
			continue
		}
		c := 0
		if pc.Color() == chess.Black {
			c = 1
		}
		h ^= zobristPieces[c][int(pc.Type())][sq]
	}
	if pos.Turn() == chess.Black {
		h ^= zobristSide
	}

	// castling and en passant come from the FEN fields
	fields := strings.Fields(pos.String())
	if len(fields) > 3 {
		for i, r := range "KQkq" {
			if strings.ContainsRune(fields[2], r) {
				h ^= zobristCastle[i]
			}
		}
		if ep := fields[3]; ep != "-" && ep[0] >= 'a' && ep[0] <= 'h' {
			h ^= zobristEnPassant[ep[0]-'a']
		}
	}
	return h
}
