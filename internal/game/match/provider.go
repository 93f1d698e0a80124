package match

import (
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

// ActionProvider chooses the move for each living human unit. It is the
// presentation layer's hook; it may block waiting for input.
type ActionProvider interface {
	// ChooseAction returns Attack(target) or Block for unit given the live
	// enemy roster. A non-nil error stops the current human turn.
	ChooseAction(unit combat.Snapshot, enemies []combat.Snapshot) (combat.Action, error)
}

// ActionProviderFunc adapts a function to ActionProvider.
type ActionProviderFunc func(unit combat.Snapshot, enemies []combat.Snapshot) (combat.Action, error)

// ChooseAction calls f.
func (f ActionProviderFunc) ChooseAction(unit combat.Snapshot, enemies []combat.Snapshot) (combat.Action, error) {
	return f(unit, enemies)
}

// Observer receives everything the engine resolves so the presentation layer
// can narrate it. Calls happen synchronously in resolution order.
type Observer interface {
	// TurnStarted is called before a side acts.
	TurnStarted(turn int, side party.Side)
	// ActionResolved is called after each attack or block.
	ActionResolved(side party.Side, ev combat.ActionEvent)
	// MoveRejected is called when a human unit's move could not be carried
	// out; the unit does nothing this sub-turn.
	MoveRejected(unit combat.Snapshot, err error)
	// TurnAborted is called when a side runs out of living targets mid-turn.
	TurnAborted(side party.Side)
	// Concluded is called once, when the verdict is reached.
	Concluded(state State)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) TurnStarted(int, party.Side)                   {}
func (NopObserver) ActionResolved(party.Side, combat.ActionEvent) {}
func (NopObserver) MoveRejected(combat.Snapshot, error)           {}
func (NopObserver) TurnAborted(party.Side)                        {}
func (NopObserver) Concluded(State)                               {}
