package move

import "fmt"

// Move packs a from-square, a to-square, an optional promotion kind and a
// capture flag into one word:
//
//	bits 0-7   from square
//	bits 8-15  to square
//	bits 16-19 promotion piece kind (0 = none)
//	bit  20    capture
type Move uint32

// Null is the "no move" sentinel. It is also the pass move used by
// null-move pruning. It shares its encoding with New(0, 0, false), so a
// quiet move from square 0 to square 0 is reserved and never a real move.
const Null Move = 0

const (
	toShift      = 8
	promoShift   = 16
	captureBit   = 1 << 20
	squareMask   = 0xff
	promoMask    = 0xf
	MaxSquares   = 256
	maxPromoKind = promoMask
)

// New packs a move. from == to == 0 without a capture yields Null.
func New(from, to int, capture bool) Move {
	m := Move(from&squareMask) | Move(to&squareMask)<<toShift
	if capture {
		m |= captureBit
	}
	return m
}

// WithPromotion returns m with the promotion kind set. Kinds above 15 are
// truncated.
func (m Move) WithPromotion(kind int) Move {
	m &^= promoMask << promoShift
	return m | Move(kind&maxPromoKind)<<promoShift
}

func (m Move) From() int       { return int(m & squareMask) }
func (m Move) To() int         { return int(m>>toShift) & squareMask }
func (m Move) Promotion() int  { return int(m>>promoShift) & promoMask }
func (m Move) IsCapture() bool { return m&captureBit != 0 }
func (m Move) IsNull() bool    { return m == Null }

func (m Move) String() string {
	if m.IsNull() {
		return "null"
	}
	s := fmt.Sprintf("%d-%d", m.From(), m.To())
	if m.Promotion() != 0 {
		s += fmt.Sprintf("=%d", m.Promotion())
	}
	if m.IsCapture() {
		s += "x"
	}
	return s
}
