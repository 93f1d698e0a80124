// Package main provides the skirmish binary: one interactive match of three
// human-controlled units against three computer-controlled units.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/config"
	"github.com/cory-johannsen/skirmish/internal/frontend/console"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/match"
	"github.com/cory-johannsen/skirmish/internal/game/roster"
	"github.com/cory-johannsen/skirmish/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = defaults and SKIRMISH_ environment")
	seed := flag.Int64("seed", 0, "non-zero seed for a reproducible match; overrides match.seed")
	rosterPath := flag.String("roster", "", "path to roster YAML; overrides match.roster_file")
	noColor := flag.Bool("no-color", false, "disable ANSI color")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *seed != 0 {
		cfg.Match.Seed = *seed
	}
	if *rosterPath != "" {
		cfg.Match.RosterFile = *rosterPath
	}
	if *noColor {
		cfg.Display.Color = false
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	code := run(cfg, os.Stdin, os.Stdout, logger)
	_ = logger.Sync()
	os.Exit(code)
}

// run plays one match and returns the process exit code: 0 once a verdict
// is shown, 2 when input ends first and 1 on any other failure.
func run(cfg config.Config, in io.Reader, out io.Writer, logger *zap.Logger) int {
	r, err := roster.Load(cfg.Match.RosterFile)
	if err != nil {
		logger.Error("loading roster", zap.Error(err))
		return 1
	}

	var src dice.Source
	if cfg.Match.Seeded() {
		src = dice.NewSeededSource(cfg.Match.Seed)
		logger.Info("using seeded dice", zap.Int64("seed", cfg.Match.Seed))
	} else {
		src = dice.NewCryptoSource()
	}
	roller := dice.NewLoggedRoller(src, logger)

	con := console.New(in, out, console.NewRenderer(cfg.Display.Color), logger)
	engine, err := match.New(match.Options{
		Source:        roller,
		Logger:        logger,
		Observer:      con,
		HumanNames:    r.HumanNames(),
		ComputerNames: r.ComputerNames(),
	})
	if err != nil {
		logger.Error("creating match", zap.Error(err))
		return 1
	}
	con.Bind(engine)

	if err := con.Instructions(); err != nil {
		logger.Error("writing instructions", zap.Error(err))
		return 1
	}
	verdict, err := engine.Run(con)
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "\nInput closed; the battle is abandoned.")
			logger.Info("match abandoned", zap.String("match_id", engine.ID().String()), zap.Int("turn", engine.Turn()))
			return 2
		}
		logger.Error("running match", zap.Error(err))
		return 1
	}
	if err := con.Err(); err != nil {
		return 1
	}
	logger.Debug("exiting", zap.String("verdict", verdict.String()))
	return 0
}
