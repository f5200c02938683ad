package isocoins

import (
	"time"

	"github.com/vovakirdan/tile-arcade/internal/games/isocoins/tilemap"
)

// Outcome is the state of a session.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}

// Position is a grid cell.
type Position struct {
	Row, Col int
}

// TileKinds assigns meaning to tile indices.
type TileKinds struct {
	Hazard int // stepping here loses the game
	Wall   int // cannot be entered
	Spawn  int // written onto the spawn cell at reset
}

// DefaultTileKinds returns the standard tileset layout: lava 3, wall 5, spawn 6.
func DefaultTileKinds() TileKinds {
	return TileKinds{Hazard: 3, Wall: 5, Spawn: 6}
}

// DefaultMoveCooldown is the minimum time between two accepted moves.
const DefaultMoveCooldown = 200 * time.Millisecond

// cooldownSlack absorbs the rounding of tick durations such as time.Second/60
// so a cooldown that is a whole number of ticks ends on that tick.
const cooldownSlack = time.Microsecond

// Rules holds the tunable parts of a session.
type Rules struct {
	Kinds        TileKinds
	MoveCooldown time.Duration
	Coin         Animation
	Player       AnimationSet
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{
		Kinds:        DefaultTileKinds(),
		MoveCooldown: DefaultMoveCooldown,
		Coin:         DefaultCoinAnimation(),
		Player:       DefaultPlayerAnimations(),
	}
}

// MoveStatus says what happened to a move request.
type MoveStatus int

const (
	MoveApplied  MoveStatus = iota // the player moved
	MoveIdle                       // no direction given
	MoveTerminal                   // the session already ended
	MoveCooldown                   // too soon after the previous move
	MoveBlocked                    // out of bounds or into a wall
)

func (s MoveStatus) String() string {
	switch s {
	case MoveApplied:
		return "applied"
	case MoveIdle:
		return "idle"
	case MoveTerminal:
		return "terminal"
	case MoveCooldown:
		return "cooldown"
	case MoveBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// MoveResult reports the effect of one move request.
type MoveResult struct {
	Status  MoveStatus
	Coin    bool    // a coin was picked up
	Outcome Outcome // outcome after the request
}

// Ended reports whether this move finished the session.
func (r MoveResult) Ended() bool {
	return r.Status == MoveApplied && r.Outcome.Terminal()
}

// Session is one play-through of a map. It owns a private copy of the grid;
// the map it was created from is never modified.
type Session struct {
	rules    Rules
	pristine *tilemap.Map
	grid     *tilemap.Map

	player    Position
	outcome   Outcome
	collected int
	total     int

	elapsed   time.Duration
	winTime   time.Duration
	sinceMove time.Duration

	coinAnim   *Animator
	playerAnim *Animator
}

// NewSession starts a session on m.
func NewSession(m *tilemap.Map, rules Rules) *Session {
	s := &Session{
		rules:      rules,
		pristine:   m.Clone(),
		coinAnim:   NewAnimator(rules.Coin),
		playerAnim: NewAnimator(rules.Player.Idle),
	}
	s.Reset()
	return s
}

// Reset reloads the grid, spawns the player and starts the clock again.
func (s *Session) Reset() {
	s.grid = s.pristine.Clone()

	s.player = Position{Row: s.grid.Rows() / 2, Col: s.grid.Cols() / 2}
	if s.grid.InBounds(s.player.Row, s.player.Col) {
		s.grid.Set(s.player.Row, s.player.Col, tilemap.Tile{Index: s.rules.Kinds.Spawn})
	}

	s.collected = 0
	s.total = s.grid.CoinCount()
	s.outcome = OutcomeRunning
	s.elapsed = 0
	s.winTime = 0
	s.sinceMove = s.rules.MoveCooldown

	s.coinAnim.Rewind()
	s.playerAnim.Switch(s.rules.Player.Idle)
	s.playerAnim.Rewind()
}

// Advance moves the session clock forward by dt.
// The clock stops once the session has ended; animations keep playing.
func (s *Session) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if s.outcome == OutcomeRunning {
		s.elapsed += dt
	}
	if s.sinceMove < s.rules.MoveCooldown {
		s.sinceMove += dt
	}
	s.coinAnim.Advance(dt)
	s.playerAnim.Advance(dt)
}

// Move tries to step the player by (dRow, dCol). Both deltas are clamped
// to -1..1; two non-zero deltas make one diagonal step.
func (s *Session) Move(dRow, dCol int) MoveResult {
	res := MoveResult{Outcome: s.outcome}

	if s.outcome.Terminal() {
		res.Status = MoveTerminal
		return res
	}
	dRow, dCol = sign(dRow), sign(dCol)
	if dRow == 0 && dCol == 0 {
		res.Status = MoveIdle
		return res
	}
	if s.sinceMove+cooldownSlack < s.rules.MoveCooldown {
		res.Status = MoveCooldown
		return res
	}

	target := Position{Row: s.player.Row + dRow, Col: s.player.Col + dCol}
	if !s.grid.InBounds(target.Row, target.Col) || s.grid.At(target.Row, target.Col).Index == s.rules.Kinds.Wall {
		res.Status = MoveBlocked
		return res
	}

	s.player = target
	s.sinceMove = 0
	res.Status = MoveApplied

	if s.grid.ClearCoin(target.Row, target.Col) {
		s.collected++
		res.Coin = true
	}

	// A move that collects the last coin wins even if it lands on lava.
	switch {
	case s.collected == s.total:
		s.outcome = OutcomeWon
		s.winTime = s.elapsed
	case s.grid.At(target.Row, target.Col).Index == s.rules.Kinds.Hazard:
		s.outcome = OutcomeLost
	}

	if s.outcome.Terminal() {
		s.playerAnim.Switch(s.rules.Player.For(s.outcome))
	}
	res.Outcome = s.outcome
	return res
}

// Restart resets the session if it has ended and reports whether it did.
func (s *Session) Restart() bool {
	if !s.outcome.Terminal() {
		return false
	}
	s.Reset()
	return true
}

// Outcome returns the session state.
func (s *Session) Outcome() Outcome { return s.outcome }

// Player returns the player's cell.
func (s *Session) Player() Position { return s.player }

// Coins returns the collected and total coin counts.
func (s *Session) Coins() (collected, total int) { return s.collected, s.total }

// Elapsed returns the session time. It stops advancing when the session ends.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// WinTime returns the elapsed time at which the session was won.
func (s *Session) WinTime() (time.Duration, bool) {
	return s.winTime, s.outcome == OutcomeWon
}

// Grid returns the live grid. Callers must not modify it.
func (s *Session) Grid() *tilemap.Map { return s.grid }

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules { return s.rules }

// CoinFrame returns the current coin animation frame.
func (s *Session) CoinFrame() int { return s.coinAnim.Frame() }

// PlayerAnimation returns the player animation selected by the outcome.
func (s *Session) PlayerAnimation() Animation { return s.playerAnim.Animation() }

// PlayerFrame returns the current frame of the player animation.
func (s *Session) PlayerFrame() int { return s.playerAnim.Frame() }

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
