// Package match drives a skirmish from the first human move to a verdict.
package match

import "github.com/cory-johannsen/skirmish/internal/game/party"

// TurnLimit is the number of full turns played before HP totals decide the match.
const TurnLimit = 10

// Verdict is the outcome of a match. The zero value (VerdictNone) means the
// match is still in progress.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictHuman
	VerdictComputer
	VerdictTie
)

// String returns "none", "human", "computer" or "tie".
func (v Verdict) String() string {
	switch v {
	case VerdictHuman:
		return "human"
	case VerdictComputer:
		return "computer"
	case VerdictTie:
		return "tie"
	default:
		return "none"
	}
}

// Evaluate decides the verdict at the given turn.
//
// Before TurnLimit a verdict exists only when a side is knocked out; the
// human side is checked first, so a double knock-out goes to the computer.
// At TurnLimit the side with more total HP wins and equal totals tie.
//
// Postcondition: Returns VerdictNone only when turn < TurnLimit and neither
// party is knocked out.
func Evaluate(turn int, human, computer *party.Party) Verdict {
	if turn < TurnLimit {
		switch {
		case human.IsKnockedOut():
			return VerdictComputer
		case computer.IsKnockedOut():
			return VerdictHuman
		default:
			return VerdictNone
		}
	}
	humanHP, computerHP := human.TotalHP(), computer.TotalHP()
	switch {
	case humanHP > computerHP:
		return VerdictHuman
	case computerHP > humanHP:
		return VerdictComputer
	default:
		return VerdictTie
	}
}

// State is the engine's position in the match: in progress at Turn, or
// concluded with Verdict.
type State struct {
	Turn    int
	Verdict Verdict
}

// Concluded reports whether the match has a verdict.
func (s State) Concluded() bool { return s.Verdict != VerdictNone }
