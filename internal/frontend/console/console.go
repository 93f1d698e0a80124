package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/command"
	"github.com/cory-johannsen/skirmish/internal/game/match"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

// Match is the read side of a running match the console needs: both rosters
// for status display and target pre-validation for re-prompting.
type Match interface {
	HumanUnits() []combat.Snapshot
	ComputerUnits() []combat.Snapshot
	ResolveTarget(name string) error
}

// Console reads the player's moves from a line-oriented input and narrates
// the match to an output. It implements both match.ActionProvider and
// match.Observer. A Console is bound to one match and is not safe for
// concurrent use.
type Console struct {
	reader   *bufio.Reader
	out      io.Writer
	renderer Renderer
	logger   *zap.Logger
	match    Match
	writeErr error
}

// New creates a Console over in and out.
//
// Precondition: in and out must be non-nil.
// Postcondition: Returns a Console that must be bound with Bind before the
// match runs. A nil logger is replaced by a no-op logger.
func New(in io.Reader, out io.Writer, renderer Renderer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		reader:   bufio.NewReader(in),
		out:      out,
		renderer: renderer,
		logger:   logger,
	}
}

// Bind attaches the match the console narrates and prompts for.
//
// Precondition: m must be non-nil.
func (c *Console) Bind(m Match) {
	c.match = m
}

// Instructions writes the rules banner.
func (c *Console) Instructions() error {
	c.WriteLine(c.renderer.Instructions())
	return c.writeErr
}

// ChooseAction prompts for unit's move until it gets a well-formed move with
// a living target. Malformed input and bad targets are explained and the
// prompt repeats.
//
// Precondition: Bind has been called.
// Postcondition: Returns a valid action, or an error when input is exhausted
// or output fails.
func (c *Console) ChooseAction(unit combat.Snapshot, _ []combat.Snapshot) (combat.Action, error) {
	c.WriteLine("")
	c.WriteLine(c.renderer.UnitHeader(unit))
	for {
		if c.writeErr != nil {
			return combat.Action{}, fmt.Errorf("writing prompt: %w", c.writeErr)
		}
		c.WritePrompt(c.renderer.MovePrompt())
		line, err := c.ReadLine()
		if err != nil {
			return combat.Action{}, fmt.Errorf("reading move: %w", err)
		}
		move, err := command.ParseMove(line)
		if err != nil {
			c.logger.Warn("invalid action input", zap.String("unit", unit.Name), zap.String("input", line))
			c.WriteLine(c.renderer.InputError(err))
			continue
		}
		if move.NeedsTarget() {
			c.WritePrompt(c.renderer.TargetPrompt())
			target, err := c.ReadLine()
			if err != nil {
				return combat.Action{}, fmt.Errorf("reading target: %w", err)
			}
			move.Target = strings.TrimSpace(target)
		}
		if move.Type == combat.ActionAttack {
			if err := c.match.ResolveTarget(move.Target); err != nil {
				c.logger.Warn("invalid target", zap.String("unit", unit.Name), zap.String("target", move.Target), zap.Error(err))
				c.WriteLine(c.renderer.InputError(err))
				continue
			}
		}
		return move.Action(), nil
	}
}

// TurnStarted shows both rosters and announces the acting side.
func (c *Console) TurnStarted(turn int, side party.Side) {
	c.WriteLine(c.renderer.Status(c.match.HumanUnits(), c.match.ComputerUnits()))
	c.WriteLine(c.renderer.TurnBanner(turn, side))
}

// ActionResolved narrates one attack or block.
func (c *Console) ActionResolved(side party.Side, ev combat.ActionEvent) {
	c.WriteLine(c.renderer.Event(side, ev))
}

// MoveRejected explains why a unit's move was not carried out.
func (c *Console) MoveRejected(unit combat.Snapshot, err error) {
	c.WriteLine(fmt.Sprintf("%s could not act.", unit.Name))
	c.WriteLine(c.renderer.InputError(err))
}

// TurnAborted reports that the acting side ran out of targets.
func (c *Console) TurnAborted(side party.Side) {
	if side == party.SideComputer {
		c.WriteLine(c.renderer.Fallen(c.match.HumanUnits()))
		return
	}
	c.WriteLine(c.renderer.Fallen(c.match.ComputerUnits()))
}

// Concluded shows the final rosters and the verdict.
func (c *Console) Concluded(state match.State) {
	c.WriteLine(c.renderer.Status(c.match.HumanUnits(), c.match.ComputerUnits()))
	c.WriteLine(rule)
	c.WriteLine(c.renderer.Verdict(state.Verdict))
}

// Err returns the first output error, if any.
func (c *Console) Err() error { return c.writeErr }

// ReadLine reads one line of input without its line terminator.
//
// Postcondition: Returns io.EOF only when no further input remains; a final
// unterminated line is returned without error.
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WriteLine writes text followed by a newline. After the first failure
// further writes are dropped and the error is kept for Err.
func (c *Console) WriteLine(text string) {
	c.write(text + "\n")
}

// WritePrompt writes text without a trailing newline.
func (c *Console) WritePrompt(prompt string) {
	c.write(prompt)
}

func (c *Console) write(s string) {
	if c.writeErr != nil {
		return
	}
	if _, err := io.WriteString(c.out, s); err != nil {
		c.writeErr = err
		c.logger.Error("console write failed", zap.Error(err))
	}
}

var (
	_ match.ActionProvider = (*Console)(nil)
	_ match.Observer       = (*Console)(nil)
)
