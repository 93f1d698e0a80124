package party

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// controller carries what both sides need to act: their party, the match's
// randomness and a logger.
type controller struct {
	party  *Party
	src    dice.Source
	logger *zap.Logger
}

// Party returns the controlled party.
func (c *controller) Party() *Party { return c.party }

func (c *controller) attack(actor, target *combat.Unit) combat.ActionEvent {
	ev := combat.ResolveAttack(actor, target, c.src)
	c.logger.Debug("unit attacks",
		zap.String("side", c.party.side.String()),
		zap.String("actor", actor.Name()),
		zap.String("target", target.Name()),
		zap.String("strength", ev.Strength.String()),
		zap.Int("damage", ev.Damage),
		zap.Bool("dodged", ev.Result.Dodged),
		zap.Int("received", ev.Result.Received),
		zap.Int("target_hp", ev.Result.RemainingHP),
	)
	return ev
}

func (c *controller) block(actor *combat.Unit) combat.ActionEvent {
	ev := combat.ResolveBlock(actor)
	c.logger.Debug("unit blocks",
		zap.String("side", c.party.side.String()),
		zap.String("actor", actor.Name()),
		zap.Int("temporary_defense", actor.TemporaryDefense()),
	)
	return ev
}

// Human moves the player's party one unit at a time with externally chosen actions.
type Human struct {
	controller
}

// NewHuman returns a controller for the human party.
//
// Precondition: p, src and logger must be non-nil.
func NewHuman(p *Party, src dice.Source, logger *zap.Logger) *Human {
	return &Human{controller{party: p, src: src, logger: logger}}
}

// ExecuteUnitMove carries out action for unit against enemy.
//
// A knocked-out unit is skipped: the result is (nil, nil). An attack on an
// unknown or knocked-out name returns an error wrapping ErrInvalidTarget and
// the unit does nothing; the caller decides whether to ask again.
//
// Precondition: unit belongs to this party; enemy is the opposing party.
// Postcondition: on success returns the event for the action taken.
func (h *Human) ExecuteUnitMove(unit *combat.Unit, action combat.Action, enemy *Party) (*combat.ActionEvent, error) {
	if unit.IsKnockedOut() {
		return nil, nil
	}
	if err := action.Validate(); err != nil {
		return nil, err
	}

	switch action.Type {
	case combat.ActionBlock:
		ev := h.block(unit)
		return &ev, nil
	default:
		target, err := enemy.FindTarget(action.Target)
		if err != nil {
			h.logger.Warn("invalid target",
				zap.String("actor", unit.Name()),
				zap.String("target", action.Target),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%s cannot attack: %w", unit.Name(), err)
		}
		ev := h.attack(unit, target)
		return &ev, nil
	}
}

// TurnReport summarises one computer turn.
type TurnReport struct {
	Events []combat.ActionEvent
	// Blocks is how many units chose to block.
	Blocks int
	// Aborted is true when the turn stopped early for lack of living targets.
	Aborted bool
}

// Computer moves the computer's party with the target-selection heuristic.
type Computer struct {
	controller
}

// NewComputer returns a controller for the computer party.
//
// Precondition: p, src and logger must be non-nil.
func NewComputer(p *Party, src dice.Source, logger *zap.Logger) *Computer {
	return &Computer{controller{party: p, src: src, logger: logger}}
}

// BlockAllowance returns how many units may block this turn: one fewer than
// the living units, so at least one unit always attacks.
//
// Postcondition: Returns max(0, AliveCount()-1).
func (c *Computer) BlockAllowance() int {
	return max(0, c.party.AliveCount()-1)
}

// ExecuteTurn acts with every living unit in order. Each unit picks its
// target with combat.SelectOptimalTarget and blocks instead of attacking only
// when its matchup is weak and the block allowance is not yet spent.
//
// Postcondition: report.Blocks <= BlockAllowance() at turn start; when no
// living enemy remains the turn stops and report.Aborted is true.
func (c *Computer) ExecuteTurn(enemy *Party) TurnReport {
	var report TurnReport
	allowance := c.BlockAllowance()

	for _, unit := range c.party.units {
		if unit.IsKnockedOut() {
			continue
		}
		target, err := combat.SelectOptimalTarget(enemy.Units(), unit)
		if err != nil {
			c.logger.Debug("computer turn aborted", zap.String("actor", unit.Name()), zap.Error(err))
			report.Aborted = true
			return report
		}

		if combat.ResolveStrength(unit.Job(), target.Job()) == combat.StrengthWeak && report.Blocks < allowance {
			report.Events = append(report.Events, c.block(unit))
			report.Blocks++
			continue
		}
		report.Events = append(report.Events, c.attack(unit, target))
	}
	return report
}
