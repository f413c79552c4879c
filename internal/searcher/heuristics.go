package searcher

import "protochess/internal/move"

const (
	// KillerPlies is the number of killer slots. Depths outside
	// [0, KillerPlies) are neither recorded nor reported.
	KillerPlies   = 64
	killersPerPly = 2
)

// KillerTable keeps the two most recent quiet moves that caused a beta
// cutoff at each depth, most recent first.
type KillerTable struct {
	slots [KillerPlies][killersPerPly]move.Move
}

func (k *KillerTable) Record(depth int, m move.Move) {
	if m.IsCapture() || m.IsNull() || depth < 0 || depth >= KillerPlies {
		return
	}
	s := &k.slots[depth]
	if m == s[0] || m == s[1] {
		return
	}
	s[1] = s[0]
	s[0] = m
}

// Killers returns the killer moves for depth; empty slots hold move.Null.
func (k *KillerTable) Killers(depth int) [killersPerPly]move.Move {
	if depth < 0 || depth >= KillerPlies {
		return [killersPerPly]move.Move{}
	}
	return k.slots[depth]
}

func (k *KillerTable) IsKiller(depth int, m move.Move) bool {
	ks := k.Killers(depth)
	return !m.IsNull() && (m == ks[0] || m == ks[1])
}

func (k *KillerTable) Clear() {
	k.slots = [KillerPlies][killersPerPly]move.Move{}
}

// HistoryTable accumulates, per from/to square pair, the depths at which a
// quiet move caused a cutoff.
type HistoryTable struct {
	scores [move.MaxSquares][move.MaxSquares]int
}

func (h *HistoryTable) Add(depth int, m move.Move) {
	if m.IsCapture() || m.IsNull() {
		return
	}
	h.scores[m.From()][m.To()] += depth
}

func (h *HistoryTable) Score(m move.Move) int {
	return h.scores[m.From()][m.To()]
}

func (h *HistoryTable) Clear() {
	h.scores = [move.MaxSquares][move.MaxSquares]int{}
}

// Each calls fn for every from/to pair with a non-zero score.
func (h *HistoryTable) Each(fn func(from, to, score int)) {
	for from := range h.scores {
		for to, sc := range h.scores[from] {
			if sc != 0 {
				fn(from, to, sc)
			}
		}
	}
}
