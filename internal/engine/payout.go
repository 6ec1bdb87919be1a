package engine

import "math"

// topFraction is the share of ranked players paid out each round.
const topFraction = 0.15

// WinnerCount returns how many of n ranked players share a round's
// pool: ceil(n x 0.15), so any non-empty roster yields at least one
// winner.
func WinnerCount(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n) * topFraction))
}

// SplitPool returns the per-winner reward for a pool divided among
// winnerCount players. Integer division; the remainder is discarded
// with the pool reset, never carried into the next round.
func SplitPool(pool, winnerCount int) int {
	if winnerCount <= 0 {
		return 0
	}
	return pool / winnerCount
}
