package match

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

// Options configures a new match.
type Options struct {
	// Source supplies every random draw. Required.
	Source dice.Source
	// Logger receives structured match logs. Defaults to a no-op logger.
	Logger *zap.Logger
	// Observer receives resolved actions for display. Defaults to NopObserver.
	Observer Observer
	// HumanNames and ComputerNames name each side's units in acting order.
	HumanNames    [party.Size]string
	ComputerNames [party.Size]string
}

// Engine runs one match. It exclusively owns both parties for the match's
// lifetime and is not safe for concurrent use.
//
// Invariant: once state.Verdict != VerdictNone no further turns execute.
type Engine struct {
	id       uuid.UUID
	human    *party.Human
	computer *party.Computer
	observer Observer
	logger   *zap.Logger
	state    State
}

// New generates both parties from opts.Source and returns an engine at turn 0.
//
// Precondition: opts.Source must be non-nil.
// Postcondition: Returns an engine in progress at turn 0, or an error when a
// roster is invalid.
func New(opts Options) (*Engine, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("match: Options.Source must be non-nil")
	}
	humans, err := party.Generate(party.SideHuman, opts.HumanNames, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("generating human party: %w", err)
	}
	computers, err := party.Generate(party.SideComputer, opts.ComputerNames, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("generating computer party: %w", err)
	}
	return NewWithParties(humans, computers, opts), nil
}

// NewWithParties returns an engine at turn 0 over already-built parties.
// opts.HumanNames and opts.ComputerNames are ignored.
//
// Precondition: human and computer are distinct parties on their own sides;
// opts.Source must be non-nil.
func NewWithParties(human, computer *party.Party, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	observer := opts.Observer
	if observer == nil {
		observer = NopObserver{}
	}
	id := uuid.New()
	logger = logger.With(zap.String("match_id", id.String()))

	e := &Engine{
		id:       id,
		human:    party.NewHuman(human, opts.Source, logger),
		computer: party.NewComputer(computer, opts.Source, logger),
		observer: observer,
		logger:   logger,
	}
	e.logger.Info("match started",
		zap.Any("human", unitFields(human)),
		zap.Any("computer", unitFields(computer)),
	)
	return e
}

func unitFields(p *party.Party) []string {
	out := make([]string, 0, party.Size)
	for _, s := range p.Snapshots() {
		out = append(out, fmt.Sprintf("%s L%d %s %dHP", s.Name, s.Level, s.Job, s.HP))
	}
	return out
}

// ID returns the match's unique identifier.
func (e *Engine) ID() uuid.UUID { return e.id }

// State returns the current turn and verdict.
func (e *Engine) State() State { return e.state }

// Turn returns the current 0-based turn number.
func (e *Engine) Turn() int { return e.state.Turn }

// Verdict returns the verdict reached so far, or VerdictNone.
func (e *Engine) Verdict() Verdict { return e.state.Verdict }

// HumanUnits returns read-only views of the human party.
func (e *Engine) HumanUnits() []combat.Snapshot { return e.human.Party().Snapshots() }

// ComputerUnits returns read-only views of the computer party.
func (e *Engine) ComputerUnits() []combat.Snapshot { return e.computer.Party().Snapshots() }

// Evaluate returns the verdict the match would have at turn without changing state.
func (e *Engine) Evaluate(turn int) Verdict {
	return Evaluate(turn, e.human.Party(), e.computer.Party())
}

// ResolveTarget checks that name is a living computer unit, letting the
// presentation layer re-prompt before committing a move.
//
// Postcondition: Returns nil, or an error wrapping party.ErrInvalidTarget.
func (e *Engine) ResolveTarget(name string) error {
	_, err := e.computer.Party().FindTarget(name)
	return err
}

// RunHumanTurn asks p for each living human unit's move, in party order, and
// carries it out. The match is re-evaluated after every move and ends the
// moment a side is knocked out, leaving later units idle. A move that cannot
// be carried out is reported to the Observer and the unit does nothing. When
// the turn completes the computer's block buffs expire.
//
// Postcondition: Returns the verdict if the match concluded, VerdictNone
// otherwise. A provider error stops the turn and is returned wrapped with
// the unit name.
func (e *Engine) RunHumanTurn(p ActionProvider) (Verdict, error) {
	if e.state.Concluded() {
		return e.state.Verdict, nil
	}
	e.observer.TurnStarted(e.state.Turn, party.SideHuman)
	e.logger.Info("turn started", zap.Int("turn", e.state.Turn), zap.String("side", party.SideHuman.String()))

	enemy := e.computer.Party()
	for _, unit := range e.human.Party().Units() {
		if unit.IsKnockedOut() {
			continue
		}
		action, err := p.ChooseAction(unit.Snapshot(), enemy.Snapshots())
		if err != nil {
			return VerdictNone, fmt.Errorf("choosing action for %s: %w", unit.Name(), err)
		}
		ev, err := e.human.ExecuteUnitMove(unit, action, enemy)
		switch {
		case err != nil:
			e.observer.MoveRejected(unit.Snapshot(), err)
		case ev != nil:
			e.observer.ActionResolved(party.SideHuman, *ev)
		}
		if v := e.Evaluate(e.state.Turn); v != VerdictNone {
			e.conclude(v)
			return v, nil
		}
	}

	enemy.ResetTemporaryDefense()
	return VerdictNone, nil
}

// RunComputerTurn lets the computer party act, expires the human's block
// buffs, re-evaluates the match and advances the turn. Reaching TurnLimit
// concludes the match on total HP.
//
// Postcondition: Returns the verdict if the match concluded, VerdictNone otherwise.
func (e *Engine) RunComputerTurn() Verdict {
	if e.state.Concluded() {
		return e.state.Verdict
	}
	e.observer.TurnStarted(e.state.Turn, party.SideComputer)
	e.logger.Info("turn started", zap.Int("turn", e.state.Turn), zap.String("side", party.SideComputer.String()))

	report := e.computer.ExecuteTurn(e.human.Party())
	for _, ev := range report.Events {
		e.observer.ActionResolved(party.SideComputer, ev)
	}
	if report.Aborted {
		e.observer.TurnAborted(party.SideComputer)
	}
	e.human.Party().ResetTemporaryDefense()

	if v := e.Evaluate(e.state.Turn); v != VerdictNone {
		e.conclude(v)
		return v
	}
	e.state.Turn++
	if e.state.Turn >= TurnLimit {
		v := e.Evaluate(TurnLimit)
		e.conclude(v)
		return v
	}
	return VerdictNone
}

// Run plays turns until a verdict is reached.
//
// Postcondition: Returns a verdict other than VerdictNone, or the provider's error.
func (e *Engine) Run(p ActionProvider) (Verdict, error) {
	for !e.state.Concluded() {
		if _, err := e.RunHumanTurn(p); err != nil {
			return VerdictNone, err
		}
		e.RunComputerTurn()
	}
	return e.state.Verdict, nil
}

func (e *Engine) conclude(v Verdict) {
	e.state.Verdict = v
	e.logger.Info("match concluded",
		zap.String("verdict", v.String()),
		zap.Int("turn", e.state.Turn),
		zap.Int("human_hp", e.human.Party().TotalHP()),
		zap.Int("computer_hp", e.computer.Party().TotalHP()),
	)
	e.observer.Concluded(e.state)
}
