// Package combat implements unit stats, the job triangle and attack
// resolution for the skirmish engine.
package combat

import (
	"fmt"
	"strings"
)

// Job is a unit's combat archetype.
// The zero value (JobUnknown) is intentionally invalid.
type Job int

const (
	JobUnknown Job = iota
	JobMage
	JobKnight
	JobArcher
)

// Jobs lists the playable jobs in draw order: a draw of 0 is a mage,
// 1 a knight and 2 an archer.
var Jobs = []Job{JobMage, JobKnight, JobArcher}

// String returns the lowercase job name.
func (j Job) String() string {
	switch j {
	case JobMage:
		return "mage"
	case JobKnight:
		return "knight"
	case JobArcher:
		return "archer"
	default:
		return "unknown"
	}
}

// ParseJob maps a job name to a Job, ignoring case and surrounding space.
//
// Postcondition: Returns a valid Job or a non-nil error.
func ParseJob(s string) (Job, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mage":
		return JobMage, nil
	case "knight":
		return JobKnight, nil
	case "archer":
		return JobArcher, nil
	default:
		return JobUnknown, fmt.Errorf("combat: unknown job %q", s)
	}
}

// LevelTier is the coarse bucket that bounds a unit's random level draw.
// The zero value (TierUnknown) is intentionally invalid.
type LevelTier int

const (
	TierUnknown LevelTier = iota
	TierLow
	TierMedium
	TierHigh
)

// Tiers lists the level tiers in draw order.
var Tiers = []LevelTier{TierLow, TierMedium, TierHigh}

// String returns the lowercase tier name.
func (t LevelTier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Bounds returns the inclusive level range for the tier.
//
// Precondition: t is TierLow, TierMedium or TierHigh.
// Postcondition: 1 <= lo <= hi <= MaxLevel.
func (t LevelTier) Bounds() (lo, hi int) {
	switch t {
	case TierLow:
		return 1, 3
	case TierMedium:
		return 4, 6
	case TierHigh:
		return 7, MaxLevel
	default:
		panic(fmt.Sprintf("combat: Bounds called on invalid tier %d", int(t)))
	}
}

// Strength is an attacker's matchup advantage against a target's job.
type Strength int

const (
	StrengthSame Strength = iota
	StrengthStrong
	StrengthWeak
)

// String returns a human-readable strength label.
func (s Strength) String() string {
	switch s {
	case StrengthSame:
		return "same"
	case StrengthStrong:
		return "strong"
	case StrengthWeak:
		return "weak"
	default:
		return "unknown"
	}
}

// Multiplier returns the damage multiplier for the matchup.
//
// Postcondition: 1.2 for strong, 0.5 for weak, 1.0 otherwise.
func (s Strength) Multiplier() float64 {
	switch s {
	case StrengthStrong:
		return 1.2
	case StrengthWeak:
		return 0.5
	default:
		return 1.0
	}
}
