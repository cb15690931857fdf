// Requirements: 3.1, 3.2, 3.3, 3.4 - Click state machine
package numbers

import (
	"sync"
	"time"
)

const (
	// DefaultPenaltyDelay is how long a wrong tap stays highlighted
	// before the board resets.
	DefaultPenaltyDelay = 2 * time.Second
)

// Outcome classifies the result of a click.
type Outcome int

const (
	// OutcomeNone means the click changed nothing: no session, session
	// already complete, or an undecodable slot. Nothing is rendered.
	OutcomeNone Outcome = iota
	// OutcomeAdvance means the right value was found and the game continues.
	OutcomeAdvance
	// OutcomeComplete means the final value was found.
	OutcomeComplete
	// OutcomeMistake means a wrong value was tapped; the caller must keep
	// the user's guard held, deliver the interim render, and invoke
	// ResolvePenalty after the penalty delay.
	OutcomeMistake
)

// ClickResult is what a single click produces.
type ClickResult struct {
	Outcome Outcome
	Render  RenderModel
	Elapsed time.Duration // set only on OutcomeComplete
}

// Config holds game tuning parameters.
type Config struct {
	PenaltyDelay time.Duration
}

// Game is the engine for the number hunt game. Callers must hold the
// user's single-flight guard around HandleClick and, on a mistake, keep
// it held through ResolvePenalty.
//
// Stored sessions are never mutated after publication: every transition
// clones the current session, mutates the clone, and Replaces it. A
// concurrent /play is therefore free to swap in a fresh session at any
// time without racing the click path or the penalty timer.
type Game struct {
	store   *SessionStore
	penalty time.Duration

	// penalized remembers, per user, the exact session a pending penalty
	// timer was armed for. ResolvePenalty no-ops when the stored session
	// is no longer that one (a new game replaced it mid-penalty).
	penalized   map[int64]*Session
	penalizedMu sync.Mutex
}

// New creates a new Game instance.
func New(cfg *Config) *Game {
	penalty := DefaultPenaltyDelay
	if cfg != nil && cfg.PenaltyDelay > 0 {
		penalty = cfg.PenaltyDelay
	}
	return &Game{
		store:     NewSessionStore(),
		penalty:   penalty,
		penalized: make(map[int64]*Session),
	}
}

// Name returns the game's display name.
func (g *Game) Name() string {
	return "数字寻宝"
}

// Command returns the command that starts this game.
func (g *Game) Command() string {
	return "play"
}

// Description returns a brief description of the game.
func (g *Game) Description() string {
	return "按顺序点出隐藏的数字 1-9，点错清零重来，比谁更快！"
}

// CallbackPrefix returns the prefix all of this game's callback data carries.
func (g *Game) CallbackPrefix() string {
	return CallbackPrefix
}

// PenaltyDelay returns the configured wrong-tap penalty duration.
func (g *Game) PenaltyDelay() time.Duration {
	return g.penalty
}

// Store exposes the session store for lookups.
func (g *Game) Store() *SessionStore {
	return g.store
}

// StartSession creates a fresh session for the user, replacing any
// existing one, and returns the initial board render.
// Requirements: 2.1, 3.1
func (g *Game) StartSession(userID int64) RenderModel {
	s := g.store.Create(userID)
	return renderBoard(s)
}

// HandleClick validates a click against the user's session and advances
// the state machine. The clicked value is always compared against
// NextTarget, so tapping an already-revealed number counts as a mistake.
// Requirements: 3.1, 3.2, 3.3
func (g *Game) HandleClick(userID int64, slot int) ClickResult {
	s, ok := g.store.Get(userID)
	if !ok || s.Completed() {
		return ClickResult{Outcome: OutcomeNone}
	}

	if slot < 0 || slot >= BoardSize {
		return ClickResult{Outcome: OutcomeNone}
	}

	value := s.Board.Value(slot)

	if value != s.NextTarget {
		next := s.clone()
		next.MistakeHighlight = value
		g.store.Replace(userID, next)
		g.armPenalty(userID, next)
		return ClickResult{
			Outcome: OutcomeMistake,
			Render:  renderBoard(next),
		}
	}

	next := s.clone()
	next.Revealed[value] = true
	next.NextTarget++
	g.store.Replace(userID, next)

	if next.Completed() {
		elapsed := time.Since(next.StartTime)
		return ClickResult{
			Outcome: OutcomeComplete,
			Render:  renderComplete(elapsed),
			Elapsed: elapsed,
		}
	}

	return ClickResult{
		Outcome: OutcomeAdvance,
		Render:  renderBoard(next),
	}
}

// armPenalty records which session the pending penalty belongs to.
func (g *Game) armPenalty(userID int64, s *Session) {
	g.penalizedMu.Lock()
	g.penalized[userID] = s
	g.penalizedMu.Unlock()
}

// takePenalized removes and returns the session the user's pending
// penalty was armed for, if any.
func (g *Game) takePenalized(userID int64) (*Session, bool) {
	g.penalizedMu.Lock()
	defer g.penalizedMu.Unlock()
	s, ok := g.penalized[userID]
	if ok {
		delete(g.penalized, userID)
	}
	return s, ok
}

// ResolvePenalty restores the session to its initial state after the
// penalty delay and returns the reset board render. Returns false if the
// penalized session is no longer the stored one - it disappeared or a
// new game replaced it mid-penalty, and the fresh session must not be
// touched. The board and start time survive the reset.
// Requirements: 3.4
func (g *Game) ResolvePenalty(userID int64) (RenderModel, bool) {
	armed, ok := g.takePenalized(userID)
	if !ok {
		return RenderModel{}, false
	}

	s, ok := g.store.Get(userID)
	if !ok || s != armed {
		return RenderModel{}, false
	}

	reset := &Session{
		UserID:     s.UserID,
		NextTarget: 1,
		Revealed:   make(map[int]bool),
		Board:      s.Board,
		StartTime:  s.StartTime,
	}
	g.store.Replace(userID, reset)

	return renderBoard(reset), true
}
