package combat_test

import (
	"testing"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func unitWithHP(name string, job combat.Job, hp int) *combat.Unit {
	u := combat.NewUnit(name, combat.MaxLevel, job)
	u.SetHP(hp)
	return u
}

func TestSelectOptimalTarget_StrongHighestHP(t *testing.T) {
	attacker := unitWithHP("Criati", combat.JobMage, 50)
	falia := unitWithHP("Falia", combat.JobKnight, 30)
	erom := unitWithHP("Erom", combat.JobKnight, 50)
	ama := unitWithHP("Ama", combat.JobArcher, 90)

	got, err := combat.SelectOptimalTarget([]*combat.Unit{falia, erom, ama}, attacker)
	require.NoError(t, err)
	assert.Same(t, erom, got)
}

func TestSelectOptimalTarget_SameWhenNoStrong(t *testing.T) {
	attacker := unitWithHP("Criati", combat.JobMage, 50)
	falia := unitWithHP("Falia", combat.JobMage, 20)
	erom := unitWithHP("Erom", combat.JobMage, 60)
	ama := unitWithHP("Ama", combat.JobArcher, 90)

	got, err := combat.SelectOptimalTarget([]*combat.Unit{falia, erom, ama}, attacker)
	require.NoError(t, err)
	assert.Same(t, erom, got)
}

func TestSelectOptimalTarget_WeakLowestHP(t *testing.T) {
	attacker := unitWithHP("Criati", combat.JobMage, 50)
	falia := unitWithHP("Falia", combat.JobArcher, 90)
	erom := unitWithHP("Erom", combat.JobArcher, 40)
	ama := unitWithHP("Ama", combat.JobArcher, 70)

	got, err := combat.SelectOptimalTarget([]*combat.Unit{falia, erom, ama}, attacker)
	require.NoError(t, err)
	assert.Same(t, erom, got)
}

func TestSelectOptimalTarget_WeakAtFullHPStillChosen(t *testing.T) {
	attacker := unitWithHP("Criati", combat.JobMage, 50)
	falia := unitWithHP("Falia", combat.JobArcher, 0)
	erom := unitWithHP("Erom", combat.JobArcher, 100)

	got, err := combat.SelectOptimalTarget([]*combat.Unit{falia, erom}, attacker)
	require.NoError(t, err)
	assert.Same(t, erom, got)
}

func TestSelectOptimalTarget_SkipsKnockedOutStrong(t *testing.T) {
	attacker := unitWithHP("Criati", combat.JobMage, 50)
	falia := unitWithHP("Falia", combat.JobKnight, 0)
	erom := unitWithHP("Erom", combat.JobArcher, 10)
	ama := unitWithHP("Ama", combat.JobMage, 30)

	got, err := combat.SelectOptimalTarget([]*combat.Unit{falia, erom, ama}, attacker)
	require.NoError(t, err)
	assert.Same(t, ama, got)
}

func TestSelectOptimalTarget_TieGoesToEarliest(t *testing.T) {
	attacker := unitWithHP("Criati", combat.JobKnight, 50)
	falia := unitWithHP("Falia", combat.JobArcher, 40)
	erom := unitWithHP("Erom", combat.JobArcher, 40)

	got, err := combat.SelectOptimalTarget([]*combat.Unit{falia, erom}, attacker)
	require.NoError(t, err)
	assert.Same(t, falia, got)
}

func TestSelectOptimalTarget_AllFallen(t *testing.T) {
	attacker := unitWithHP("Criati", combat.JobKnight, 50)
	candidates := []*combat.Unit{
		unitWithHP("Falia", combat.JobArcher, 0),
		unitWithHP("Erom", combat.JobMage, 0),
		unitWithHP("Ama", combat.JobKnight, 0),
	}
	got, err := combat.SelectOptimalTarget(candidates, attacker)
	assert.ErrorIs(t, err, combat.ErrNoValidTargets)
	assert.Nil(t, got)
}

func TestSelectOptimalTarget_Property_NeverPicksFallen(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		attacker := unitWithHP("A", rapid.SampledFrom(combat.Jobs).Draw(rt, "attacker_job"), 10)
		candidates := make([]*combat.Unit, 3)
		anyAlive := false
		for i := range candidates {
			job := rapid.SampledFrom(combat.Jobs).Draw(rt, "job")
			hp := rapid.IntRange(0, combat.MaxHP).Draw(rt, "hp")
			candidates[i] = unitWithHP("C", job, hp)
			anyAlive = anyAlive || hp > 0
		}

		got, err := combat.SelectOptimalTarget(candidates, attacker)
		if !anyAlive {
			assert.ErrorIs(rt, err, combat.ErrNoValidTargets)
			return
		}
		require.NoError(rt, err)
		assert.Greater(rt, got.HP(), 0)
	})
}
