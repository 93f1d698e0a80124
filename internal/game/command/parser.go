// Package command parses a player's typed move into a combat action.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
)

// ErrInvalidActionInput is returned for a line that names no known move.
var ErrInvalidActionInput = errors.New("invalid action input: please enter an 'a' or 'b'")

// Move is one parsed input line.
type Move struct {
	// Type is ActionAttack or ActionBlock.
	Type combat.ActionType
	// Target is the enemy name typed after an attack word, if any.
	// Its case is preserved because target names match exactly.
	Target string
}

// ParseMove reads a move from line. Only the first letter of the first word
// matters, case-insensitively: 'a' attacks and 'b' blocks. Words after an
// attack are taken as the target name.
//
// Postcondition: Returns a Move with Type attack or block, or an error
// wrapping ErrInvalidActionInput.
func ParseMove(line string) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Move{}, fmt.Errorf("empty input: %w", ErrInvalidActionInput)
	}

	switch strings.ToLower(fields[0])[0] {
	case 'a':
		return Move{Type: combat.ActionAttack, Target: strings.Join(fields[1:], " ")}, nil
	case 'b':
		return Move{Type: combat.ActionBlock}, nil
	default:
		return Move{}, fmt.Errorf("%q: %w", fields[0], ErrInvalidActionInput)
	}
}

// NeedsTarget reports whether the move is an attack still missing its target.
func (m Move) NeedsTarget() bool {
	return m.Type == combat.ActionAttack && m.Target == ""
}

// Action converts the move to a combat action.
//
// Precondition: !m.NeedsTarget().
func (m Move) Action() combat.Action {
	if m.Type == combat.ActionBlock {
		return combat.BlockAction()
	}
	return combat.AttackAction(m.Target)
}
