package game

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/signalnine/crabcombat/engine"
)

// ErrDepthExceeded is returned when sub-games nest deeper than WithMaxDepth allows.
var ErrDepthExceeded = errors.New("sub-game nesting limit exceeded")

// Option configures a RecursiveGame.
type Option func(*RecursiveGame)

// WithLogger routes game progress to l. Game boundaries log at debug,
// individual rounds at trace.
func WithLogger(l *logrus.Entry) Option {
	return func(g *RecursiveGame) {
		if l != nil {
			g.log = l
		}
	}
}

// WithMaxDepth bounds sub-game nesting. 0 (the default) means unbounded;
// nesting is already limited by the card total shrinking at every level.
func WithMaxDepth(n int) Option {
	return func(g *RecursiveGame) {
		g.maxDepth = n
	}
}

// frame is one game on the work stack. Sub-games get their own frame with
// their own decks and their own seen states.
type frame struct {
	id       int
	depth    int
	decks    engine.Decks
	seen     *engine.StateSet
	rounds   int
	drawn    [engine.NumPlayers]engine.Card
	repeated bool
}

func (f *frame) outcome() (engine.Player, bool) {
	if f.repeated {
		return engine.PlayerOne, true
	}
	return terminal(f.decks)
}

// RecursiveGame plays Recursive Combat. Sub-games are kept on an explicit
// stack instead of the call stack, so deep nesting cannot overflow it.
type RecursiveGame struct {
	decks    engine.Decks
	log      *logrus.Entry
	maxDepth int

	games   int
	deepest int
	tension *engine.TensionMetrics // top-level game only
}

// NewRecursiveGame creates a game over a copy of decks.
func NewRecursiveGame(decks engine.Decks, opts ...Option) *RecursiveGame {
	g := &RecursiveGame{
		decks: decks.Clone(),
		log:   discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Play runs the game to completion. Each call starts over from the
// initial decks.
func (g *RecursiveGame) Play() (Result, error) {
	g.games, g.deepest = 0, 0
	g.tension = engine.NewTensionMetrics()
	stack := []*frame{g.newFrame(g.decks.Clone(), 1)}

	for {
		f := stack[len(stack)-1]

		if winner, over := f.outcome(); over {
			g.logGameEnd(f, winner)
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				res := newResult(f.decks, winner, g.tension)
				res.Games = g.games
				res.MaxDepth = g.deepest
				res.Repeated = f.repeated
				return res, nil
			}
			g.settle(stack[len(stack)-1], winner)
			continue
		}

		sub, err := g.step(f)
		if err != nil {
			return Result{}, err
		}
		if sub != nil {
			stack = append(stack, sub)
		}
	}
}

func (g *RecursiveGame) newFrame(decks engine.Decks, depth int) *frame {
	g.games++
	if depth > g.deepest {
		g.deepest = depth
	}
	f := &frame{
		id:    g.games,
		depth: depth,
		decks: decks,
		seen:  engine.NewStateSet(),
	}
	g.log.WithFields(logrus.Fields{"game": f.id, "depth": depth}).
		Debugf("game %d started with %d cards", f.id, decks.Total())
	return f
}

// step starts one round of f. It returns a sub-game frame when the round
// must be settled by one; otherwise the round is settled before returning.
func (g *RecursiveGame) step(f *frame) (*frame, error) {
	if f.seen.Observe(engine.FingerprintOf(f.decks)) {
		f.repeated = true
		return nil, nil
	}

	g.logRound(f)

	drawn, err := drawBoth(f.decks)
	if err != nil {
		return nil, fmt.Errorf("game %d round %d: %w", f.id, f.rounds+1, err)
	}
	f.rounds++
	f.drawn = drawn

	r, err := resolveRound(drawn, f.decks, true)
	if err != nil {
		return nil, fmt.Errorf("game %d round %d: %w", f.id, f.rounds, err)
	}
	if !r.subGame {
		g.settle(f, r.winner)
		return nil, nil
	}

	if g.maxDepth > 0 && f.depth >= g.maxDepth {
		return nil, fmt.Errorf("%w: depth %d", ErrDepthExceeded, g.maxDepth)
	}
	decks, err := subGameDecks(drawn, f.decks)
	if err != nil {
		return nil, fmt.Errorf("game %d round %d: %w", f.id, f.rounds, err)
	}
	return g.newFrame(decks, f.depth+1), nil
}

// settle finishes the round f is waiting on.
func (g *RecursiveGame) settle(f *frame, winner engine.Player) {
	collect(f.decks, winner, f.drawn)
	if f.depth == 1 {
		g.tension.Update(f.decks)
	}
	if g.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		g.log.WithFields(logrus.Fields{"game": f.id, "round": f.rounds}).
			Tracef("%s wins round %d of game %d", winner, f.rounds, f.id)
	}
}

func (g *RecursiveGame) logRound(f *frame) {
	if !g.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	g.log.WithFields(logrus.Fields{
		"game":  f.id,
		"round": f.rounds + 1,
		"one":   f.decks[engine.PlayerOne].String(),
		"two":   f.decks[engine.PlayerTwo].String(),
	}).Trace("round start")
}

func (g *RecursiveGame) logGameEnd(f *frame, winner engine.Player) {
	entry := g.log.WithFields(logrus.Fields{
		"game":   f.id,
		"depth":  f.depth,
		"rounds": f.rounds,
		"states": f.seen.Len(),
		"winner": winner.String(),
	})
	if f.repeated {
		entry.Debugf("game %d repeated a state; %s wins", f.id, winner)
		return
	}
	entry.Debugf("game %d won by %s", f.id, winner)
}

// PlayRecursiveCombat plays a complete game of Recursive Combat. decks is
// not modified.
func PlayRecursiveCombat(decks engine.Decks, opts ...Option) (Result, error) {
	return NewRecursiveGame(decks, opts...).Play()
}
