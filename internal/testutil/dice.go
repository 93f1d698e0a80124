// Package testutil provides shared helpers for tests across packages.
package testutil

import (
	"fmt"
	"sync"
)

// FixedSource is a dice.Source that replays a scripted sequence of raw
// Intn results. It lets tests pin level, job and evasion draws exactly.
//
// Each scripted value is reduced modulo n, so a value of 20 passed to
// Intn(21) is returned as-is while the same value passed to Intn(3) yields 2.
type FixedSource struct {
	mu     sync.Mutex
	values []int
	pos    int
	// Fallback is returned (modulo n) once the script is exhausted.
	Fallback int
}

// NewFixedSource returns a FixedSource that replays values in order and then
// returns fallback forever.
func NewFixedSource(fallback int, values ...int) *FixedSource {
	return &FixedSource{values: values, Fallback: fallback}
}

// Intn returns the next scripted value reduced into [0, n).
//
// Precondition: n > 0.
func (f *FixedSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("testutil: Intn called with n=%d", n))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.Fallback
	if f.pos < len(f.values) {
		v = f.values[f.pos]
		f.pos++
	}
	if v < 0 {
		v = -v
	}
	return v % n
}

// Remaining reports how many scripted values have not been consumed.
func (f *FixedSource) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.values) - f.pos
}
