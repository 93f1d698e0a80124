package console

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/command"
	"github.com/cory-johannsen/skirmish/internal/game/match"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

func TestInstructions_MentionsRules(t *testing.T) {
	out := NewRenderer(false).Instructions()
	assert.Contains(t, out, "mage, knight, and archer")
	assert.Contains(t, out, fmt.Sprintf("You have %d turns", match.TurnLimit))
	assert.NotContains(t, out, "\033")
}

func TestUnitStatus(t *testing.T) {
	r := NewRenderer(false)
	s := combat.Snapshot{Name: "Falia", Level: 5, Job: combat.JobMage, HP: 50}
	assert.Equal(t, "Falia is a level 5 mage 50 HP.", r.UnitStatus(s))

	s.HP, s.KnockedOut = 0, true
	assert.Equal(t, "Falia is a level 5 mage 0 HP.\nThis unit is knocked out!", r.UnitStatus(s))
}

func TestStatus_ListsBothSides(t *testing.T) {
	r := NewRenderer(true)
	out := StripANSI(r.Status(
		[]combat.Snapshot{{Name: "Falia", Level: 1, Job: combat.JobKnight, HP: 10}},
		[]combat.Snapshot{{Name: "Criati", Level: 9, Job: combat.JobArcher, HP: 90}},
	))
	assert.Contains(t, out, "Your units:\nFalia is a level 1 knight 10 HP.")
	assert.Contains(t, out, "Computer units:\nCriati is a level 9 archer 90 HP.")
}

func TestTurnBanner(t *testing.T) {
	r := NewRenderer(false)
	assert.Contains(t, r.TurnBanner(3, party.SideHuman), "Turn 3: Human player's turn.")
	assert.Equal(t, "Turn 3: Computer player's turn.", r.TurnBanner(3, party.SideComputer))
}

func TestUnitHeader(t *testing.T) {
	s := combat.Snapshot{Name: "Erom", Level: 7, Job: combat.JobArcher}
	assert.Equal(t, "Erom: Job archer. Level 7", NewRenderer(false).UnitHeader(s))
}

func TestEvent_KnockOut(t *testing.T) {
	ev := combat.ActionEvent{
		Action:     combat.ActionAttack,
		ActorName:  "Falia",
		TargetName: "Ledde",
		Result:     &combat.DamageResult{Received: 20, RemainingHP: 0},
		Narrative:  "Falia attacks Ledde (strong): Ledde received 20 damage and has 0 HP remaining.",
	}
	out := NewRenderer(false).Event(party.SideHuman, ev)
	assert.Contains(t, out, ev.Narrative)
	assert.Contains(t, out, "Ledde has been knocked out!")
}

func TestEvent_Block(t *testing.T) {
	ev := combat.ActionEvent{Action: combat.ActionBlock, ActorName: "Criati", Narrative: "Criati is blocking."}
	assert.Equal(t, "Criati is blocking.", NewRenderer(false).Event(party.SideComputer, ev))
}

func TestInputError(t *testing.T) {
	r := NewRenderer(false)
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"bad move", fmt.Errorf("%q: %w", "x", command.ErrInvalidActionInput), "Please enter an 'a' or 'b'"},
		{"vanquished", fmt.Errorf("Ledde: %w", party.ErrTargetVanquished), "The target has already been vanquished."},
		{"not found", fmt.Errorf("Bob: %w", party.ErrTargetNotFound), "The target is not a member of the enemy's forces."},
		{"other", fmt.Errorf("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, r.InputError(tt.err), tt.want)
		})
	}
}

func TestFallen(t *testing.T) {
	units := []combat.Snapshot{{Name: "Falia"}, {Name: "Erom"}, {Name: "Ama"}}
	assert.Equal(t, "Falia, Erom, and Ama have all fallen. They cannot be targeted.", NewRenderer(false).Fallen(units))
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "Everyone", joinNames(nil))
	assert.Equal(t, "A", joinNames([]string{"A"}))
	assert.Equal(t, "A and B", joinNames([]string{"A", "B"}))
	assert.Equal(t, "A, B, and C", joinNames([]string{"A", "B", "C"}))
}

func TestVerdict(t *testing.T) {
	r := NewRenderer(false)
	assert.Equal(t, "You've defeated the enemy!", r.Verdict(match.VerdictHuman))
	assert.Equal(t, "All your heroes have been defeated, enemy forces have won!", r.Verdict(match.VerdictComputer))
	assert.Equal(t, "Nobody wins, it is a tie!", r.Verdict(match.VerdictTie))
	assert.Equal(t, "The battle is still raging.", r.Verdict(match.VerdictNone))
}
