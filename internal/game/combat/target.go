package combat

import "errors"

// ErrNoValidTargets is returned when every candidate is already knocked out.
var ErrNoValidTargets = errors.New("combat: no valid targets")

// SelectOptimalTarget picks the candidate attacker should hit, in priority order:
//  1. the highest-HP living candidate the attacker is strong against;
//  2. otherwise the highest-HP living candidate of the same job;
//  3. otherwise the lowest-HP living candidate the attacker is weak against.
//
// Ties go to the earliest candidate.
//
// Postcondition: Returns a candidate with HP > 0, or ErrNoValidTargets iff
// every candidate has HP <= 0.
func SelectOptimalTarget(candidates []*Unit, attacker *Unit) (*Unit, error) {
	if t := pick(candidates, attacker, StrengthStrong, higherHP); t != nil {
		return t, nil
	}
	if t := pick(candidates, attacker, StrengthSame, higherHP); t != nil {
		return t, nil
	}
	if t := pick(candidates, attacker, StrengthWeak, lowerHP); t != nil {
		return t, nil
	}
	return nil, ErrNoValidTargets
}

func higherHP(a, b *Unit) bool { return a.hp > b.hp }
func lowerHP(a, b *Unit) bool  { return a.hp < b.hp }

// pick returns the living candidate of the given strength that wins under
// better, keeping the earlier candidate on ties.
func pick(candidates []*Unit, attacker *Unit, s Strength, better func(a, b *Unit) bool) *Unit {
	var best *Unit
	for _, c := range candidates {
		if c == nil || c.IsKnockedOut() || ResolveStrength(attacker.job, c.job) != s {
			continue
		}
		if best == nil || better(c, best) {
			best = c
		}
	}
	return best
}
