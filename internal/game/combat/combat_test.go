package combat_test

import (
	"testing"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestJob_String(t *testing.T) {
	assert.Equal(t, "mage", combat.JobMage.String())
	assert.Equal(t, "knight", combat.JobKnight.String())
	assert.Equal(t, "archer", combat.JobArcher.String())
	assert.Equal(t, "unknown", combat.JobUnknown.String())
}

func TestParseJob_CaseInsensitive(t *testing.T) {
	for in, want := range map[string]combat.Job{
		"mage":     combat.JobMage,
		"KNIGHT":   combat.JobKnight,
		" Archer ": combat.JobArcher,
	} {
		got, err := combat.ParseJob(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := combat.ParseJob("paladin")
	assert.Error(t, err)
}

func TestLevelTier_Bounds(t *testing.T) {
	tests := []struct {
		tier   combat.LevelTier
		lo, hi int
	}{
		{combat.TierLow, 1, 3},
		{combat.TierMedium, 4, 6},
		{combat.TierHigh, 7, 10},
	}
	for _, tc := range tests {
		lo, hi := tc.tier.Bounds()
		assert.Equal(t, tc.lo, lo, tc.tier.String())
		assert.Equal(t, tc.hi, hi, tc.tier.String())
	}
	assert.Panics(t, func() { combat.TierUnknown.Bounds() })
}

func TestStrength_Multiplier(t *testing.T) {
	assert.Equal(t, 1.2, combat.StrengthStrong.Multiplier())
	assert.Equal(t, 1.0, combat.StrengthSame.Multiplier())
	assert.Equal(t, 0.5, combat.StrengthWeak.Multiplier())
}

func TestResolveStrength_Table(t *testing.T) {
	tests := []struct {
		attacker, target combat.Job
		want             combat.Strength
	}{
		{combat.JobKnight, combat.JobArcher, combat.StrengthStrong},
		{combat.JobArcher, combat.JobMage, combat.StrengthStrong},
		{combat.JobMage, combat.JobKnight, combat.StrengthStrong},
		{combat.JobArcher, combat.JobKnight, combat.StrengthWeak},
		{combat.JobMage, combat.JobArcher, combat.StrengthWeak},
		{combat.JobKnight, combat.JobMage, combat.StrengthWeak},
		{combat.JobMage, combat.JobMage, combat.StrengthSame},
	}
	for _, tc := range tests {
		got := combat.ResolveStrength(tc.attacker, tc.target)
		assert.Equal(t, tc.want, got, "%s vs %s", tc.attacker, tc.target)
	}
}

func TestResolveStrength_Property_AntiSymmetric(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.SampledFrom(combat.Jobs).Draw(rt, "a")
		b := rapid.SampledFrom(combat.Jobs).Draw(rt, "b")
		ab := combat.ResolveStrength(a, b)
		ba := combat.ResolveStrength(b, a)
		switch ab {
		case combat.StrengthStrong:
			assert.Equal(rt, combat.StrengthWeak, ba)
		case combat.StrengthWeak:
			assert.Equal(rt, combat.StrengthStrong, ba)
		case combat.StrengthSame:
			assert.Equal(rt, a, b)
			assert.Equal(rt, combat.StrengthSame, ba)
		}
	})
}
