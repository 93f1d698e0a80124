package combat

import "fmt"

// ActionType identifies what a unit does on its sub-turn.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown ActionType = iota // zero value; intentionally invalid
	ActionAttack
	ActionBlock
)

// String returns the human-readable name of the ActionType.
// Postcondition: returns "attack", "block", or "unknown".
func (a ActionType) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Action is one unit's chosen move for a sub-turn.
type Action struct {
	Type   ActionType
	Target string // enemy unit name for attack; empty for block
}

// AttackAction returns an attack on the named target.
func AttackAction(target string) Action {
	return Action{Type: ActionAttack, Target: target}
}

// BlockAction returns a block.
func BlockAction() Action {
	return Action{Type: ActionBlock}
}

// Validate checks the action is well formed.
//
// Postcondition: Returns nil iff Type is attack with a non-empty Target, or block.
func (a Action) Validate() error {
	switch a.Type {
	case ActionAttack:
		if a.Target == "" {
			return fmt.Errorf("combat: attack action requires a target")
		}
		return nil
	case ActionBlock:
		return nil
	default:
		return fmt.Errorf("combat: invalid action type %d", int(a.Type))
	}
}
