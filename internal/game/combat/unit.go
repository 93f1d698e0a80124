package combat

import (
	"fmt"
	"math"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// Stat ceilings reached by a level 10 unit.
const (
	MaxLevel   = 10
	MaxHP      = 100
	MaxAttack  = 20
	MaxDefense = 20
	MaxEvasion = 5
)

const (
	// BlockBonus is the temporary defense granted by one block.
	BlockBonus = 2
	// EvasionSides is the number of faces of the evasion die, valued 0..20.
	EvasionSides = 21
	// attackCeiling is the base damage of a unit with attack 30.
	attackCeiling = 50.0
)

// Unit is a single combatant. A unit at 0 HP stays addressable for the rest
// of the match; it is knocked out, not removed.
//
// Invariant: hp >= 0; temporaryDefense >= 0.
type Unit struct {
	name             string
	level            int
	job              Job
	hp               int
	attack           int
	defense          int
	evasion          int
	temporaryDefense int
}

// NewUnit builds a unit whose stats are derived from level: each stat is its
// ceiling scaled by level/10 and rounded.
//
// Precondition: 1 <= level <= MaxLevel; job is a valid Job.
// Postcondition: hp in [0,100], attack and defense in [0,20], evasion in [0,5].
func NewUnit(name string, level int, job Job) *Unit {
	if level < 1 || level > MaxLevel {
		panic(fmt.Sprintf("combat: NewUnit level %d out of range [1,%d]", level, MaxLevel))
	}
	multiplier := float64(level) / 10.0
	return &Unit{
		name:    name,
		level:   level,
		job:     job,
		hp:      roundInt(multiplier * MaxHP),
		attack:  roundInt(multiplier * MaxAttack),
		defense: roundInt(multiplier * MaxDefense),
		evasion: roundInt(multiplier * MaxEvasion),
	}
}

// RollUnit builds a unit whose level is drawn uniformly from tier's bounds.
//
// Precondition: tier is valid; src must be non-nil.
func RollUnit(name string, tier LevelTier, job Job, src dice.Source) *Unit {
	lo, hi := tier.Bounds()
	return NewUnit(name, dice.Roll(src, "level", lo, hi), job)
}

func (u *Unit) Name() string          { return u.name }
func (u *Unit) Level() int            { return u.level }
func (u *Unit) Job() Job              { return u.job }
func (u *Unit) HP() int               { return u.hp }
func (u *Unit) AttackStat() int       { return u.attack }
func (u *Unit) Defense() int          { return u.defense }
func (u *Unit) Evasion() int          { return u.evasion }
func (u *Unit) TemporaryDefense() int { return u.temporaryDefense }

// IsKnockedOut reports whether the unit has no HP left.
func (u *Unit) IsKnockedOut() bool { return u.hp <= 0 }

// SetHP sets current HP, clamping at zero.
//
// Postcondition: HP() == max(0, hp).
func (u *Unit) SetHP(hp int) {
	u.hp = max(0, hp)
}

// SetTemporaryDefense replaces the block buff; the engine uses it for the
// end-of-turn reset.
func (u *Unit) SetTemporaryDefense(v int) {
	u.temporaryDefense = max(0, v)
}

// SetEvasion replaces the evasion stat.
func (u *Unit) SetEvasion(v int) {
	u.evasion = max(0, v)
}

// Attack returns the damage this unit deals with the given matchup.
// Base damage is attack/30 of 50, scaled by the strength multiplier.
//
// Postcondition: result >= 0; pure, no side effects.
func (u *Unit) Attack(s Strength) int {
	base := float64(u.attack) / 30.0 * attackCeiling
	return roundInt(base * s.Multiplier())
}

// Block raises temporary defense by BlockBonus. Blocks stack within a turn.
func (u *Unit) Block() {
	u.temporaryDefense += BlockBonus
}

// DamageResult records what happened when a unit received a hit.
type DamageResult struct {
	// Incoming is the raw damage before evasion and defense.
	Incoming int
	// EvasionRoll is the evasion die value, or -1 when no check was made.
	EvasionRoll int
	// Dodged is true when the evasion check avoided the hit entirely.
	Dodged bool
	// Received is the damage actually taken after defense scaling.
	Received int
	// RemainingHP is HP after the hit.
	RemainingHP int
}

// ReceiveDamage applies an incoming hit. A unit with evasion > 0 first rolls
// the evasion die and dodges when the roll is at most its evasion. Otherwise
// damage is divided by (temporaryDefense+defense)/10 and rounded; with no
// defense at all the damage passes through unscaled.
//
// Precondition: damage >= 0; src must be non-nil.
// Postcondition: HP() >= 0; HP() is unchanged when result.Dodged.
func (u *Unit) ReceiveDamage(damage int, src dice.Source) DamageResult {
	res := DamageResult{Incoming: damage, EvasionRoll: -1}
	if u.evasion > 0 {
		res.EvasionRoll = dice.Roll(src, "evasion", 0, EvasionSides-1)
		if res.EvasionRoll <= u.evasion {
			res.Dodged = true
			res.RemainingHP = u.hp
			return res
		}
	}

	res.Received = damage
	if total := u.temporaryDefense + u.defense; total > 0 {
		res.Received = roundInt(float64(damage) / (float64(total) / 10.0))
	}
	u.SetHP(u.hp - res.Received)
	res.RemainingHP = u.hp
	return res
}

// Snapshot is a read-only view of a unit for the presentation layer.
type Snapshot struct {
	Name       string
	Level      int
	Job        Job
	HP         int
	KnockedOut bool
}

// Snapshot returns the unit's current read-only view.
func (u *Unit) Snapshot() Snapshot {
	return Snapshot{
		Name:       u.name,
		Level:      u.level,
		Job:        u.job,
		HP:         u.hp,
		KnockedOut: u.IsKnockedOut(),
	}
}

func roundInt(f float64) int {
	return int(math.Round(f))
}
