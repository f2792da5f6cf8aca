package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"renate-frame/board"
	"renate-frame/engine/strategy"
	"renate-frame/rules"
	"renate-frame/types"
)

// Game is a single game session. All methods are safe for concurrent use;
// callbacks run outside the lock and receive snapshots.
type Game struct {
	id     uuid.UUID
	config GameConfig
	log    *slog.Logger

	board   *board.Board
	active  types.Player
	round   int
	state   State
	history []MoveRecord

	// Indexed by types.Player; nil for human sides.
	strategies [3]strategy.Strategy

	moveCallback   func(move MoveRecord, snapshot *board.Board)
	rejectCallback func(turn Turn, err error)
	endCallback    func(result Result)

	mu sync.Mutex
}

// NewGame creates a game with an empty frame and First to move.
// A nil logger discards all records.
func NewGame(cfg GameConfig, logger *slog.Logger) (*Game, error) {
	if !cfg.Mode.Valid() {
		return nil, fmt.Errorf("unknown mode %d", cfg.Mode)
	}
	b, err := board.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	g := &Game{
		id:     uuid.New(),
		config: cfg,
		board:  b,
		active: types.First,
		state:  InProgress,
	}
	for _, p := range []types.Player{types.First, types.Second} {
		c := cfg.Mode.Controller(p)
		if c == types.Human {
			continue
		}
		if g.strategies[p], err = strategy.New(c, rng); err != nil {
			return nil, err
		}
	}
	g.log = logger.With("game", g.id.String())
	g.log.Info("game started",
		"mode", cfg.Mode.Slug(),
		"width", cfg.Width,
		"height", cfg.Height,
		"seed", seed,
		"cells", b.TotalCellCount())
	return g, nil
}

// ID identifies the game in log records.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Config returns the configuration the game was created with.
func (g *Game) Config() GameConfig {
	return g.config
}

// Mode returns the game mode.
func (g *Game) Mode() types.Mode {
	return g.config.Mode
}

// Snapshot returns a copy of the board.
func (g *Game) Snapshot() *board.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone()
}

// ActivePlayer returns the player to move, or after the game the winner.
func (g *Game) ActivePlayer() types.Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Round returns the number of moves applied so far.
func (g *Game) Round() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round
}

// State returns whether the game is still running.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Finished returns true once the whole frame is claimed.
func (g *Game) Finished() bool {
	return g.State() == Finished
}

// Controller returns who moves for p.
func (g *Game) Controller(p types.Player) types.Controller {
	return g.config.Mode.Controller(p)
}

// StrategyName returns the name of the strategy playing p, or "" for humans.
func (g *Game) StrategyName(p types.Player) string {
	if s := g.strategies[p]; s != nil {
		return s.Name()
	}
	return ""
}

// History returns the moves applied so far, oldest first.
func (g *Game) History() []MoveRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]MoveRecord, len(g.history))
	copy(out, g.history)
	return out
}

// Turn returns the position the active player has to move in.
func (g *Game) Turn() Turn {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turnLocked()
}

func (g *Game) turnLocked() Turn {
	t := Turn{
		Board:  g.board.Clone(),
		Player: g.active,
		Round:  g.round,
		Mode:   g.config.Mode,
	}
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		t.LastMove = &last
	}
	return t
}

// Result returns the outcome once the game is finished.
func (g *Game) Result() (Result, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Finished {
		return Result{}, false
	}
	return g.resultLocked(), true
}

func (g *Game) resultLocked() Result {
	return Result{
		Winner: g.active,
		Mode:   g.config.Mode,
		Rounds: g.round,
		Board:  g.board.Clone(),
	}
}

// OnMove registers a callback for every applied move.
func (g *Game) OnMove(callback func(move MoveRecord, snapshot *board.Board)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.moveCallback = callback
}

// OnReject registers a callback for human moves rejected during Play.
func (g *Game) OnReject(callback func(turn Turn, err error)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rejectCallback = callback
}

// OnGameEnd registers a callback for when the frame is full.
func (g *Game) OnGameEnd(callback func(result Result)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.endCallback = callback
}

// Submit plays r for the active human player. A rejected move leaves the
// game unchanged and returns one of the rules errors.
func (g *Game) Submit(r types.Rect) error {
	g.mu.Lock()

	if g.state == Finished {
		g.mu.Unlock()
		return ErrGameOver
	}
	if g.config.Mode.Controller(g.active) != types.Human {
		g.mu.Unlock()
		return ErrNotHumanTurn
	}
	if err := rules.Validate(g.board, r, g.round == 0); err != nil {
		g.log.Debug("move rejected",
			"round", g.round,
			"player", g.active.String(),
			"rect", r.Normalize().String(),
			"reason", err.Error())
		g.mu.Unlock()
		return err
	}

	g.applyAndUnlock(r, types.Human)
	return nil
}

// PlayComputer lets the strategy of the active player make its move.
func (g *Game) PlayComputer() error {
	g.mu.Lock()

	if g.state == Finished {
		g.mu.Unlock()
		return ErrGameOver
	}
	s := g.strategies[g.active]
	if s == nil {
		g.mu.Unlock()
		return ErrNotComputerTurn
	}

	r := s.NextMove(g.board, g.round)
	if err := rules.Validate(g.board, r, g.round == 0); err != nil {
		g.log.Error("strategy move rejected",
			"strategy", s.Name(),
			"round", g.round,
			"rect", r.String(),
			"reason", err.Error(),
			"board", g.board.String())
		round := g.round
		g.mu.Unlock()
		return fmt.Errorf("%w: %s played %v in round %d: %w", ErrStrategyDefect, s.Name(), r, round, err)
	}

	g.applyAndUnlock(r, g.config.Mode.Controller(g.active))
	return nil
}

// applyAndUnlock colors r for the active player, advances the game and
// releases the lock before notifying callbacks. r must be valid.
func (g *Game) applyAndUnlock(r types.Rect, c types.Controller) {
	r = r.Normalize()
	g.board.TakeNewlyColored()
	for _, p := range r.Cells() {
		g.board.Colorize(p.X, p.Y, g.active)
	}

	move := MoveRecord{Round: g.round, Player: g.active, Controller: c, Rect: r}
	g.history = append(g.history, move)
	g.round++

	g.log.Info("move applied",
		"round", move.Round,
		"player", move.Player.String(),
		"controller", c.String(),
		"rect", r.String(),
		"claimed", g.board.ClaimedCount(),
		"total", g.board.TotalCellCount())

	var result *Result
	if g.board.Finished() {
		g.state = Finished
		res := g.resultLocked()
		result = &res
		g.log.Info("game finished", "winner", g.active.String(), "rounds", g.round)
	} else {
		g.active = g.active.Opponent()
	}

	snapshot := g.board.Clone()
	moveCallback, endCallback := g.moveCallback, g.endCallback
	g.mu.Unlock()

	// Notify callbacks (outside lock to prevent deadlock)
	if moveCallback != nil {
		moveCallback(move, snapshot)
	}
	if result != nil && endCallback != nil {
		endCallback(*result)
	}
}

// Play runs the game to the end. Strategies move on their own; human moves
// come from src and are asked for again after every rejection.
func (g *Game) Play(ctx context.Context, src MoveSource) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if res, ok := g.Result(); ok {
			return res, nil
		}

		turn := g.Turn()
		if turn.Controller() != types.Human {
			if err := g.PlayComputer(); err != nil {
				return Result{}, err
			}
			continue
		}

		if src == nil {
			return Result{}, fmt.Errorf("no move source for %s player", turn.Player)
		}
		r, err := src.NextMove(ctx, turn)
		if err == nil {
			err = g.Submit(r)
		}
		switch {
		case err == nil:
		case rules.IsRejection(err):
			g.reject(turn, err)
		default:
			return Result{}, err
		}
	}
}

func (g *Game) reject(turn Turn, err error) {
	g.mu.Lock()
	callback := g.rejectCallback
	g.mu.Unlock()
	if callback != nil {
		callback(turn, err)
	}
}
