package gamemath

import "math/rand"

// GapIndex picks the first column of a gap band of width columns wide out of
// n columns, uniformly over every position that keeps the whole band inside
// [0, n). A band as wide as the column range always starts at 0.
func GapIndex(rng *rand.Rand, n, width int) int {
	if width >= n || n <= 0 {
		return 0
	}
	if width < 1 {
		width = 1
	}
	return rng.Intn(n - width + 1)
}

// InGap reports whether column i falls inside the band starting at gap.
func InGap(i, gap, width int) bool {
	return i >= gap && i < gap+width
}

// BlockColumns returns the columns that get a block for the given gap band.
func BlockColumns(n, gap, width int) []int {
	cols := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if InGap(i, gap, width) {
			continue
		}
		cols = append(cols, i)
	}
	return cols
}

// Timer is a repeating countdown driven by frame time.
type Timer struct {
	Duration float64 // seconds
	elapsed  float64
}

// NewTimer returns a timer that fires every d seconds.
func NewTimer(d float64) Timer {
	return Timer{Duration: d}
}

// Tick advances the timer and reports whether it finished during this tick.
// It fires at most once per call; leftover time carries into the next period.
func (t *Timer) Tick(dt float64) bool {
	if t.Duration <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.Duration {
		return false
	}
	for t.elapsed >= t.Duration {
		t.elapsed -= t.Duration
	}
	return true
}

// Reset restarts the current period.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Elapsed returns the time spent in the current period.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}
