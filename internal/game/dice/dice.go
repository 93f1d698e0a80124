// Package dice provides the randomness abstraction and draw-result types
// for the skirmish combat engine.
package dice

import "fmt"

// Draw holds the audit trail for a single bounded random draw.
//
// Invariant: Min <= Value <= Max.
type Draw struct {
	Purpose string // what the draw decides, e.g. "level" or "evasion"
	Min     int
	Max     int
	Value   int
}

// String returns a human-readable audit string in the format:
//
//	"evasion [0..20] → 7"
//
// Precondition: d.Purpose is non-empty.
func (d Draw) String() string {
	if d.Purpose == "" {
		panic("dice: Draw.String() precondition violated: Purpose must be non-empty")
	}
	return fmt.Sprintf("%s [%d..%d] → %d", d.Purpose, d.Min, d.Max, d.Value)
}

// Source is the randomness provider for every draw in a match.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// IntRange draws a uniform integer in the inclusive range [lo, hi] from src.
//
// Precondition: lo <= hi; src must be non-nil.
// Postcondition: lo <= result <= hi.
func IntRange(src Source, lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("dice: IntRange called with hi %d < lo %d", hi, lo))
	}
	return lo + src.Intn(hi-lo+1)
}

// Roll draws a uniform integer in [lo, hi] for the named purpose. When src is
// a *Roller the draw is logged under purpose; otherwise it is a plain IntRange.
//
// Precondition: purpose non-empty; lo <= hi; src must be non-nil.
// Postcondition: lo <= result <= hi.
func Roll(src Source, purpose string, lo, hi int) int {
	if r, ok := src.(*Roller); ok {
		return r.Range(purpose, lo, hi).Value
	}
	return IntRange(src, lo, hi)
}
