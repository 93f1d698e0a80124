package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/skirmish/internal/game/command"
	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/match"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

const rule = "------------------------------------------------"

// Renderer turns match state and events into display text.
type Renderer struct {
	palette Palette
}

// NewRenderer returns a Renderer that emits ANSI color when color is true.
func NewRenderer(color bool) Renderer {
	return Renderer{palette: Palette{Enabled: color}}
}

// Instructions returns the rules banner shown before the first turn.
func (r Renderer) Instructions() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.palette.Colorize(BrightYellow, "Welcome to the final battle against enemy forces. You will be facing off against the computer."))
	b.WriteString("\n")
	b.WriteString("Each of you will have 3 units with randomly generated jobs and levels.\n")
	b.WriteString("The jobs are: mage, knight, and archer. Archers are strong against mages, but weak against knights.\n")
	b.WriteString("Mages are strong against knights, but weak against archers. Knights are strong against archers, but weak against mages.\n")
	b.WriteString("There are two moves: attack (deal damage to one target) and block (temporarily increase defense).\n")
	b.WriteString("Combat is turn based; all your live units take a turn and then all the computer's live units take a turn.\n")
	fmt.Fprintf(&b, "You have %d turns to defeat the computer. If both players still have units standing, you only win\n", match.TurnLimit)
	b.WriteString("if the combined HP of your units exceeds the computer's.\n")
	b.WriteString("========================================================\n")
	return b.String()
}

// UnitStatus describes one unit, flagging it when knocked out.
func (r Renderer) UnitStatus(s combat.Snapshot) string {
	line := fmt.Sprintf("%s is a level %d %s %d HP.", s.Name, s.Level, s.Job, s.HP)
	if s.KnockedOut {
		return r.palette.Colorize(Dim, line) + "\n" + r.palette.Colorize(Red, "This unit is knocked out!")
	}
	return line
}

// Status lists both parties.
func (r Renderer) Status(humans, computers []combat.Snapshot) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.palette.Colorize(Cyan, "Your units:"))
	b.WriteString("\n")
	for _, s := range humans {
		b.WriteString(r.UnitStatus(s))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.palette.Colorize(Magenta, "Computer units:"))
	b.WriteString("\n")
	for _, s := range computers {
		b.WriteString(r.UnitStatus(s))
		b.WriteString("\n")
	}
	return b.String()
}

// TurnBanner announces which side is about to act.
func (r Renderer) TurnBanner(turn int, side party.Side) string {
	if side == party.SideHuman {
		return rule + "\n" + r.palette.Colorf(Bold, "Turn %d: Human player's turn.", turn)
	}
	return r.palette.Colorf(Bold, "Turn %d: Computer player's turn.", turn)
}

// UnitHeader introduces the human unit about to choose a move.
func (r Renderer) UnitHeader(s combat.Snapshot) string {
	return r.palette.Colorf(BrightCyan, "%s: Job %s. Level %d", s.Name, s.Job, s.Level)
}

// MovePrompt asks for an attack or a block.
func (r Renderer) MovePrompt() string {
	return "Please select a move 'Attack as a' or 'Block as b': "
}

// TargetPrompt asks for the name of the enemy to attack.
func (r Renderer) TargetPrompt() string {
	return "Please enter the name of the target: "
}

// Event narrates one resolved action.
func (r Renderer) Event(side party.Side, ev combat.ActionEvent) string {
	color := Green
	if side == party.SideComputer {
		color = Yellow
	}
	if ev.Action == combat.ActionAttack && ev.Result != nil && ev.Result.RemainingHP == 0 && !ev.Result.Dodged {
		return r.palette.Colorize(color, ev.Narrative) + "\n" +
			r.palette.Colorf(BrightRed, "%s has been knocked out!", ev.TargetName)
	}
	return r.palette.Colorize(color, ev.Narrative)
}

// InputError explains why a move or target was refused.
func (r Renderer) InputError(err error) string {
	switch {
	case errors.Is(err, command.ErrInvalidActionInput):
		return r.palette.Colorize(Red, "Please enter an 'a' or 'b'")
	case errors.Is(err, party.ErrTargetVanquished):
		return r.palette.Colorize(Red, "The target has already been vanquished.") + "\n" +
			r.palette.Colorize(Red, "Error: Please pick another target.")
	case errors.Is(err, party.ErrTargetNotFound):
		return r.palette.Colorize(Red, "The target is not a member of the enemy's forces.") + "\n" +
			r.palette.Colorize(Red, "Error: Please pick another target.")
	default:
		return r.palette.Colorf(Red, "Error: %v", err)
	}
}

// Fallen reports that the computer had nobody left to attack.
func (r Renderer) Fallen(units []combat.Snapshot) string {
	names := make([]string, 0, len(units))
	for _, s := range units {
		names = append(names, s.Name)
	}
	return r.palette.Colorf(Dim, "%s have all fallen. They cannot be targeted.", joinNames(names))
}

// Verdict announces the outcome from the human player's point of view.
func (r Renderer) Verdict(v match.Verdict) string {
	switch v {
	case match.VerdictComputer:
		return r.palette.Colorize(BrightRed, "All your heroes have been defeated, enemy forces have won!")
	case match.VerdictHuman:
		return r.palette.Colorize(BrightGreen, "You've defeated the enemy!")
	case match.VerdictTie:
		return r.palette.Colorize(BrightYellow, "Nobody wins, it is a tie!")
	default:
		return "The battle is still raging."
	}
}

// joinNames renders "A", "A and B" or "A, B, and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return "Everyone"
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
