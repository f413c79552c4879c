package searcher

import "time"

// Stats are counted per iterative deepening iteration.
type Stats struct {
	Nodes         uint64 // nodes visited, quiescence included
	FailHigh      uint64 // beta cutoffs
	FailHighFirst uint64 // beta cutoffs on the first legal move tried
}

// Ordering is the share of cutoffs that happened on the first move, 0 when
// there were no cutoffs.
func (s Stats) Ordering() float64 {
	if s.FailHigh == 0 {
		return 0
	}
	return float64(s.FailHighFirst) / float64(s.FailHigh)
}

// Report describes one finished iteration.
type Report struct {
	SearchID string
	Depth    int
	Score    int
	Stats    Stats
	Duration time.Duration
}
