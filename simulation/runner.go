// Package simulation runs both Combat variants over one set of starting decks.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/signalnine/crabcombat/deckfile"
	"github.com/signalnine/crabcombat/engine"
	"github.com/signalnine/crabcombat/game"
)

// ErrInvalidDecks is returned when the starting decks fail validation.
var ErrInvalidDecks = errors.New("invalid decks")

// Variant names a Combat rule set.
type Variant string

const (
	VariantCombat    Variant = "combat"
	VariantRecursive Variant = "recursive"
)

// Options configures a run.
type Options struct {
	Logger   *logrus.Logger // nil discards logs
	MaxDepth int            // passed to the recursive engine; 0 = unbounded
}

// GameReport holds the outcome of one variant
type GameReport struct {
	Variant  Variant
	Result   game.Result
	Duration time.Duration
	Err      error // set when the variant could not finish; Result is zero then
}

// Report summarizes a run of both variants
type Report struct {
	RunID     uuid.UUID
	Combat    GameReport
	Recursive GameReport
}

// Run validates decks, then plays Combat and Recursive Combat on separate
// copies. decks is not modified.
//
// A plain Combat game that cycles forever does not stop the run: it is
// recorded in report.Combat.Err and Recursive Combat is still played. Any
// other engine failure aborts the run.
func Run(ctx context.Context, decks engine.Decks, opts Options) (Report, error) {
	runID, err := uuid.NewRandom()
	if err != nil {
		return Report{}, fmt.Errorf("run id: %w", err)
	}
	log := runLogger(opts.Logger).WithField("run", runID.String())

	if errs := deckfile.Validate(decks); len(errs) > 0 {
		return Report{}, fmt.Errorf("%w: %s", ErrInvalidDecks, deckfile.Join(errs))
	}
	log.WithFields(logrus.Fields{
		"one": decks[engine.PlayerOne].Len(),
		"two": decks[engine.PlayerTwo].Len(),
	}).Info("starting run")

	report := Report{RunID: runID}

	report.Combat, err = runVariant(VariantCombat, log, func() (game.Result, error) {
		return game.PlayCombat(decks.Clone())
	})
	if err != nil {
		if !errors.Is(err, game.ErrCombatCycle) {
			return Report{}, err
		}
		log.WithError(err).Warn("combat has no result")
		report.Combat = GameReport{Variant: VariantCombat, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	recLog := log.WithField("variant", VariantRecursive)
	report.Recursive, err = runVariant(VariantRecursive, log, func() (game.Result, error) {
		return game.PlayRecursiveCombat(decks.Clone(),
			game.WithLogger(recLog),
			game.WithMaxDepth(opts.MaxDepth),
		)
	})
	if err != nil {
		return Report{}, err
	}

	return report, nil
}

func runVariant(v Variant, log *logrus.Entry, play func() (game.Result, error)) (GameReport, error) {
	start := time.Now()
	res, err := play()
	if err != nil {
		return GameReport{}, fmt.Errorf("%s: %w", v, err)
	}
	report := GameReport{Variant: v, Result: res, Duration: time.Since(start)}

	log.WithFields(logrus.Fields{
		"variant":  v,
		"winner":   res.Winner.String(),
		"score":    res.Score,
		"rounds":   res.Rounds,
		"games":    res.Games,
		"depth":    res.MaxDepth,
		"repeated": res.Repeated,
		"elapsed":  report.Duration,
	}).Info("game finished")
	return report, nil
}

func runLogger(l *logrus.Logger) *logrus.Logger {
	if l != nil {
		return l
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}
