package combat

import (
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// ActionEvent records what happened when one unit acted. The presentation
// layer narrates these; the engine itself never prints.
type ActionEvent struct {
	Action    ActionType
	ActorName string
	// TargetName is empty for blocks.
	TargetName string
	Strength   Strength
	// Damage is the attacker's outgoing damage before the target's defense.
	Damage int
	// Result is nil for blocks.
	Result    *DamageResult
	Narrative string
}

// ResolveAttack runs one attack: classify the matchup, roll outgoing damage,
// and apply it to target.
//
// Precondition: attacker and target non-nil; target not knocked out; src non-nil.
// Postcondition: target HP >= 0; returns a fully populated ActionEvent.
func ResolveAttack(attacker, target *Unit, src dice.Source) ActionEvent {
	s := ResolveStrength(attacker.job, target.job)
	dmg := attacker.Attack(s)
	r := target.ReceiveDamage(dmg, src)
	if target.hp < 0 {
		target.SetHP(0)
		r.RemainingHP = 0
	}

	var narrative string
	if r.Dodged {
		narrative = fmt.Sprintf("%s attacks %s, but %s dodged!", attacker.name, target.name, target.name)
	} else {
		narrative = fmt.Sprintf("%s attacks %s (%s): %s received %d damage and has %d HP remaining.",
			attacker.name, target.name, s, target.name, r.Received, r.RemainingHP)
	}
	return ActionEvent{
		Action:     ActionAttack,
		ActorName:  attacker.name,
		TargetName: target.name,
		Strength:   s,
		Damage:     dmg,
		Result:     &r,
		Narrative:  narrative,
	}
}

// ResolveBlock raises actor's temporary defense for the coming enemy turn.
//
// Postcondition: actor.TemporaryDefense() increased by BlockBonus.
func ResolveBlock(actor *Unit) ActionEvent {
	actor.Block()
	return ActionEvent{
		Action:    ActionBlock,
		ActorName: actor.name,
		Narrative: fmt.Sprintf("%s is blocking; their defense temporarily increases for the next turn!", actor.name),
	}
}
