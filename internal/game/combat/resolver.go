package combat

// beats maps each job to the job it is strong against.
var beats = map[Job]Job{
	JobKnight: JobArcher,
	JobArcher: JobMage,
	JobMage:   JobKnight,
}

// ResolveStrength classifies the attacker's advantage over the target.
// Knights beat archers, archers beat mages, mages beat knights.
//
// Postcondition: StrengthSame iff attacker == target; ResolveStrength(a, b)
// is StrengthStrong iff ResolveStrength(b, a) is StrengthWeak.
func ResolveStrength(attacker, target Job) Strength {
	switch {
	case attacker == target:
		return StrengthSame
	case beats[attacker] == target:
		return StrengthStrong
	default:
		return StrengthWeak
	}
}
