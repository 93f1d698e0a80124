// Package party holds the two three-unit sides of a skirmish and the
// controllers that move them.
package party

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// Size is the fixed number of units in a party.
const Size = 3

// Side distinguishes the human-controlled party from the computer's.
type Side int

const (
	SideHuman Side = iota
	SideComputer
)

// String returns "human" or "computer".
func (s Side) String() string {
	if s == SideComputer {
		return "computer"
	}
	return "human"
}

var (
	// ErrInvalidTarget is the root of every target resolution failure.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrTargetNotFound means no enemy unit has the requested name.
	ErrTargetNotFound = fmt.Errorf("%w: not a member of the enemy's forces", ErrInvalidTarget)
	// ErrTargetVanquished means the named enemy unit is already knocked out.
	ErrTargetVanquished = fmt.Errorf("%w: the target has already been vanquished", ErrInvalidTarget)
)

// Party is an ordered, fixed-size set of uniquely named units.
//
// Invariant: exactly Size non-nil units with distinct names.
type Party struct {
	side  Side
	units [Size]*combat.Unit
}

// New builds a party from exactly Size units.
//
// Postcondition: Returns a Party or an error when the count is wrong, a unit
// is nil, or two units share a name.
func New(side Side, units ...*combat.Unit) (*Party, error) {
	if len(units) != Size {
		return nil, fmt.Errorf("party: %s party needs %d units, got %d", side, Size, len(units))
	}
	p := &Party{side: side}
	seen := make(map[string]bool, Size)
	for i, u := range units {
		if u == nil {
			return nil, fmt.Errorf("party: %s unit %d is nil", side, i)
		}
		if seen[u.Name()] {
			return nil, fmt.Errorf("party: duplicate unit name %q in %s party", u.Name(), side)
		}
		seen[u.Name()] = true
		p.units[i] = u
	}
	return p, nil
}

// Generate builds a party whose units each get a random level tier and job.
// For every unit the tier is drawn first, then the job, then the level
// within the tier.
//
// Precondition: names are distinct; src must be non-nil.
func Generate(side Side, names [Size]string, src dice.Source) (*Party, error) {
	units := make([]*combat.Unit, 0, Size)
	for _, name := range names {
		tier := combat.Tiers[dice.Roll(src, "tier", 0, len(combat.Tiers)-1)]
		job := combat.Jobs[dice.Roll(src, "job", 0, len(combat.Jobs)-1)]
		units = append(units, combat.RollUnit(name, tier, job, src))
	}
	return New(side, units...)
}

// Side reports which side this party plays.
func (p *Party) Side() Side { return p.side }

// Units returns the units in their fixed acting order.
func (p *Party) Units() []*combat.Unit {
	out := make([]*combat.Unit, Size)
	copy(out, p.units[:])
	return out
}

// Unit returns the unit with the given name.
func (p *Party) Unit(name string) (*combat.Unit, bool) {
	for _, u := range p.units {
		if u.Name() == name {
			return u, true
		}
	}
	return nil, false
}

// FindTarget resolves name to a living unit of this party. Names are
// matched exactly.
//
// Postcondition: Returns a unit with HP > 0, or an error wrapping ErrInvalidTarget.
func (p *Party) FindTarget(name string) (*combat.Unit, error) {
	u, ok := p.Unit(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrTargetNotFound)
	}
	if u.IsKnockedOut() {
		return nil, fmt.Errorf("%q: %w", name, ErrTargetVanquished)
	}
	return u, nil
}

// AliveCount returns the number of units with HP > 0.
func (p *Party) AliveCount() int {
	n := 0
	for _, u := range p.units {
		if !u.IsKnockedOut() {
			n++
		}
	}
	return n
}

// TotalHP returns the party's combined remaining HP.
func (p *Party) TotalHP() int {
	total := 0
	for _, u := range p.units {
		total += u.HP()
	}
	return total
}

// IsKnockedOut reports whether every unit has HP <= 0.
func (p *Party) IsKnockedOut() bool {
	return p.AliveCount() == 0
}

// ResetTemporaryDefense clears every unit's block buff.
func (p *Party) ResetTemporaryDefense() {
	for _, u := range p.units {
		u.SetTemporaryDefense(0)
	}
}

// Snapshots returns read-only views of every unit in acting order.
func (p *Party) Snapshots() []combat.Snapshot {
	out := make([]combat.Snapshot, 0, Size)
	for _, u := range p.units {
		out = append(out, u.Snapshot())
	}
	return out
}
