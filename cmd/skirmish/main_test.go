package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/skirmish/internal/config"
)

func testConfig(seed int64) config.Config {
	return config.Config{
		Logging: config.LoggingConfig{Level: "debug", Format: "console", Output: "stderr"},
		Match:   config.MatchConfig{Seed: seed},
		Display: config.DisplayConfig{Color: false},
	}
}

func TestRun_SeededMatchReachesVerdict(t *testing.T) {
	out := &bytes.Buffer{}
	code := run(testConfig(7), strings.NewReader(strings.Repeat("b\n", 30)), out, zaptest.NewLogger(t))

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Welcome to the final battle")
	assert.Contains(t, out.String(), "Turn 0: Human player's turn.")
	assert.Regexp(t, "You've defeated the enemy!|All your heroes have been defeated|Nobody wins", out.String())
}

func TestRun_SeededMatchIsReproducible(t *testing.T) {
	input := strings.Repeat("b\n", 30)
	first, second := &bytes.Buffer{}, &bytes.Buffer{}
	run(testConfig(99), strings.NewReader(input), first, zaptest.NewLogger(t))
	run(testConfig(99), strings.NewReader(input), second, zaptest.NewLogger(t))
	assert.Equal(t, first.String(), second.String())
}

func TestRun_ClosedInputAbandonsMatch(t *testing.T) {
	out := &bytes.Buffer{}
	code := run(testConfig(1), strings.NewReader(""), out, zaptest.NewLogger(t))

	assert.Equal(t, 2, code)
	assert.Contains(t, out.String(), "the battle is abandoned")
}

func TestRun_MissingRosterFails(t *testing.T) {
	cfg := testConfig(1)
	cfg.Match.RosterFile = "/nonexistent/roster.yaml"
	assert.Equal(t, 1, run(cfg, strings.NewReader(""), &bytes.Buffer{}, zaptest.NewLogger(t)))
}
